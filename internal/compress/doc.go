// Package compress provides compression codecs for recorded MVN streaming
// session files, grounded on the teacher's compress package: the same
// Codec interface and the same four algorithms (none, zstd, s2, lz4),
// re-homed from per-payload time-series compression to whole-frame
// session-recording compression (sink/record writes one length-prefixed
// compressed JSON block per completed frame).
//
// Frame JSON is small (tens to a few hundred bytes per frame) and highly
// repetitive across a session — field names, segment orderings, and
// near-identical successive poses all compress well. Zstd gives the best
// ratio for archived sessions; LZ4 favors a recorder that also wants to
// tail its own output while it grows.
package compress
