// Package config holds the tunable knobs from spec §6.4, expressed as
// functional options over two small config structs, built on the
// teacher's internal/options generic Option[T] pattern.
package config

import (
	"errors"

	"github.com/jiminghe/mvn-parser/internal/options"
)

// DecodeConfig controls header and payload decoding behavior.
type DecodeConfig struct {
	// LenientLength clamps a header payload_size/buffer-length mismatch to
	// the smaller of the two instead of rejecting the datagram with
	// ErrLengthMismatch. Default true.
	LenientLength bool

	// StrictMagic rejects a datagram whose first four bytes are not "MXTP"
	// instead of skipping it. Default true (spec default).
	StrictMagic bool

	// PointIDMultiplier resolves the §3.4 point-ID ambiguity: wire point
	// IDs for message type 03 are segment_id*Multiplier + local_point_id.
	// Must be 100 or 256; default 256 (matches the worked example in spec
	// §3.4/§9).
	PointIDMultiplier int
}

// DefaultDecodeConfig returns the spec §6.4 defaults.
func DefaultDecodeConfig() DecodeConfig {
	return DecodeConfig{
		LenientLength:     true,
		StrictMagic:       true,
		PointIDMultiplier: 256,
	}
}

// DecodeOption configures a DecodeConfig.
type DecodeOption = options.Option[*DecodeConfig]

// WithLenientLength sets LenientLength.
func WithLenientLength(lenient bool) DecodeOption {
	return options.NoError(func(c *DecodeConfig) { c.LenientLength = lenient })
}

// WithStrictMagic sets StrictMagic.
func WithStrictMagic(strict bool) DecodeOption {
	return options.NoError(func(c *DecodeConfig) { c.StrictMagic = strict })
}

// WithPointIDMultiplier sets PointIDMultiplier. Applying the returned
// option fails if mult is not 100 or 256, since any other value silently
// produces wire-incompatible point IDs.
func WithPointIDMultiplier(mult int) DecodeOption {
	return options.New(func(c *DecodeConfig) error {
		if mult != 100 && mult != 256 {
			return errors.New("config: point ID multiplier must be 100 or 256")
		}
		c.PointIDMultiplier = mult

		return nil
	})
}

// NewDecodeConfig builds a DecodeConfig from the spec defaults plus opts.
// It panics if an option fails to apply, since every call site here
// constructs its options from compile-time-known constants; callers that
// need to handle a bad runtime value (e.g. a CLI flag) should validate it
// before calling this.
func NewDecodeConfig(opts ...DecodeOption) DecodeConfig {
	c := DefaultDecodeConfig()
	if err := options.Apply(&c, opts...); err != nil {
		panic(err)
	}

	return c
}

// ReassemblerConfig controls the reassembler's bounded-memory eviction
// policy (spec §4.4).
type ReassemblerConfig struct {
	// WindowSamples is W: on receiving sample counter s for a character,
	// any partial with counter < s-W for that character is evicted.
	WindowSamples uint32

	// CapacityPerCharacter is K: the max number of in-flight sample
	// counters retained per character before the oldest incomplete partial
	// is evicted.
	CapacityPerCharacter int

	// TimeoutMs is T: partials older than T milliseconds are evicted by Tick.
	TimeoutMs int64

	Decode DecodeConfig
}

// DefaultReassemblerConfig returns the spec §6.4 defaults (W=64, K=8, T=500).
func DefaultReassemblerConfig() ReassemblerConfig {
	return ReassemblerConfig{
		WindowSamples:        64,
		CapacityPerCharacter: 8,
		TimeoutMs:            500,
		Decode:               DefaultDecodeConfig(),
	}
}

// ReassemblerOption configures a ReassemblerConfig.
type ReassemblerOption = options.Option[*ReassemblerConfig]

// WithWindowSamples sets WindowSamples.
func WithWindowSamples(w uint32) ReassemblerOption {
	return options.NoError(func(c *ReassemblerConfig) { c.WindowSamples = w })
}

// WithCapacityPerCharacter sets CapacityPerCharacter.
func WithCapacityPerCharacter(k int) ReassemblerOption {
	return options.NoError(func(c *ReassemblerConfig) { c.CapacityPerCharacter = k })
}

// WithTimeoutMs sets TimeoutMs.
func WithTimeoutMs(t int64) ReassemblerOption {
	return options.NoError(func(c *ReassemblerConfig) { c.TimeoutMs = t })
}

// WithDecodeConfig sets the embedded DecodeConfig wholesale.
func WithDecodeConfig(d DecodeConfig) ReassemblerOption {
	return options.NoError(func(c *ReassemblerConfig) { c.Decode = d })
}

// NewReassemblerConfig builds a ReassemblerConfig from the spec defaults
// plus opts. It panics if an option fails to apply; see NewDecodeConfig.
func NewReassemblerConfig(opts ...ReassemblerOption) ReassemblerConfig {
	c := DefaultReassemblerConfig()
	if err := options.Apply(&c, opts...); err != nil {
		panic(err)
	}

	return c
}
