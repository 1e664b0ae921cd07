// Package mvntp implements the datagram codec for the MVN motion-capture
// streaming protocol (wire identifier "MXTP"): decoding and encoding the
// fixed 24-byte datagram header and classifying its message type.
//
// The payload decoders live in the sibling payload package, segment ID
// tables in segment, and fragment reassembly in reassemble — this package
// only owns the header, since every other component needs it.
package mvntp
