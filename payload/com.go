package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
)

// DecodeCenterOfMass decodes a type-24 payload: a single position, 12
// bytes total regardless of item_count.
func DecodeCenterOfMass(buf []byte) (CenterOfMass, error) {
	if len(buf) != sizeCenterOfMass {
		return CenterOfMass{}, mvnerr.ErrMisalignedPayload
	}

	c := wire.NewCursor(buf)
	pos, err := readVec3(c)
	if err != nil {
		return CenterOfMass{}, err
	}

	return CenterOfMass{Position: pos}, nil
}

// Encode serializes m back to its wire form.
func (m CenterOfMass) Encode() []byte {
	w := wire.NewWriter(sizeCenterOfMass)
	writeVec3(w, m.Position)

	return w.Bytes()
}
