package payload

import (
	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// Decode dispatches to the decoder registered for h.MessageType, returning
// the typed payload as `any` (one of the concrete types in types.go),
// any non-fatal per-item errors, and a fatal error if the frame itself
// could not be decoded at all.
//
// Decode never reinterprets bytes past len(buf); the reassembler hands it
// exactly the concatenated, in-order fragment payloads for one completed
// frame (spec §4.4).
func Decode(h mvntp.Header, buf []byte, cfg config.DecodeConfig) (any, []mvnerr.ItemError, error) {
	switch h.MessageType {
	case mvntp.MsgEulerPose:
		return DecodeEulerPose(h, buf)
	case mvntp.MsgQuaternionPose:
		return DecodeQuaternionPose(h, buf)
	case mvntp.MsgPoints:
		return DecodePoints(h, buf, cfg)
	case mvntp.MsgUnity3DPose:
		return DecodeUnity3DPose(h, buf)
	case mvntp.MsgMeta:
		return DecodeMeta(buf), nil, nil
	case mvntp.MsgScale:
		v, err := DecodeScale(buf)

		return v, nil, err
	case mvntp.MsgJointAngles:
		v, err := DecodeJointAngles(buf)

		return v, nil, err
	case mvntp.MsgLinearKinematics:
		return DecodeLinearKinematics(h, buf)
	case mvntp.MsgAngularKinematics:
		return DecodeAngularKinematics(h, buf)
	case mvntp.MsgTrackerKinematics:
		return DecodeTrackerKinematics(h, buf)
	case mvntp.MsgCenterOfMass:
		v, err := DecodeCenterOfMass(buf)

		return v, nil, err
	case mvntp.MsgTimeCode:
		v, err := DecodeTimeCode(buf)

		return v, nil, err
	default:
		return nil, nil, mvnerr.ErrUnsupportedMessageType
	}
}
