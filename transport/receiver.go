// Package transport owns the UDP I/O loop that feeds the reassembler
// (spec §5: "the transport owns the I/O loop and calls on_datagram(bytes)
// synchronously"). It is built on net.PacketConn directly: no pack example
// offers a reusable UDP receive-loop library for this shape of traffic
// (pion-webrtc's UDP usage is ICE/RTP-specific and pulls in its whole
// media-transport stack), so this is the one ambient layer that stays on
// the standard library — see DESIGN.md.
package transport

import (
	"context"
	"net"
	"time"

	"github.com/jiminghe/mvn-parser/reassemble"
)

// DefaultPort is the informational default from spec §6.1.
const DefaultPort = 9763

// FrameHandler receives each completed frame as the reassembler emits it,
// from within Receiver.Run's goroutine (spec §5: sink calls are
// synchronous with the datagram that triggers them).
type FrameHandler func(reassemble.CompletedFrame)

// Receiver reads MXTP datagrams off a UDP socket and drives a Reassembler.
type Receiver struct {
	conn  net.PacketConn
	ra    *reassemble.Reassembler
	tick  int64 // ms between Reassembler.Tick calls
	onErr func(error)
}

// NewReceiver wraps conn (already bound, e.g. via net.ListenPacket("udp",
// addr)). tickIntervalMs controls how often Tick drives wall-clock
// eviction; pass 0 to disable periodic ticking (an external caller can
// still invoke Reassembler.Tick directly).
func NewReceiver(conn net.PacketConn, ra *reassemble.Reassembler, tickIntervalMs int64, onErr func(error)) *Receiver {
	if onErr == nil {
		onErr = func(error) {}
	}

	return &Receiver{conn: conn, ra: ra, tick: tickIntervalMs, onErr: onErr}
}

// Run reads datagrams until ctx is cancelled or the socket errors, calling
// handle for every completed frame. It blocks the calling goroutine.
//
// Tick is driven from this same goroutine rather than a second one: the
// reassembler documents itself as not safe for concurrent use (spec §5,
// "single-threaded cooperative"), so periodic eviction is interleaved with
// Push by bounding each ReadFrom with a read deadline and calling Tick
// whenever that deadline elapses, instead of a separate ticker goroutine
// that would race Push over the same maps.
func (r *Receiver) Run(ctx context.Context, nowMs func() int64, handle FrameHandler) error {
	buf := make([]byte, 65535) // max UDP datagram payload

	var nextTick int64
	if r.tick > 0 {
		nextTick = nowMs() + r.tick
		r.conn.SetReadDeadline(time.Now().Add(time.Duration(r.tick) * time.Millisecond))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, _, err := r.conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				r.maybeTick(nowMs, &nextTick)

				continue
			}

			r.onErr(err)

			return err
		}

		for _, frame := range r.ra.Push(buf[:n], nowMs()) {
			handle(frame)
		}

		r.maybeTick(nowMs, &nextTick)
	}
}

// maybeTick calls Reassembler.Tick once nextTick has elapsed and arms the
// read deadline for the following interval. No-op when periodic ticking is
// disabled (r.tick == 0).
func (r *Receiver) maybeTick(nowMs func() int64, nextTick *int64) {
	if r.tick <= 0 {
		return
	}

	now := nowMs()
	if now >= *nextTick {
		r.ra.Tick(now)
		*nextTick = now + r.tick
	}

	r.conn.SetReadDeadline(time.Now().Add(time.Duration(r.tick) * time.Millisecond))
}

// Close releases the underlying socket.
func (r *Receiver) Close() error { return r.conn.Close() }
