package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/mvntp"
	"github.com/jiminghe/mvn-parser/reassemble"
	"github.com/stretchr/testify/require"
)

func TestReceiver_RunDeliversCompletedFrame(t *testing.T) {
	serverConn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer serverConn.Close()

	clientConn, err := net.Dial("udp", serverConn.LocalAddr().String())
	require.NoError(t, err)
	defer clientConn.Close()

	ra := reassemble.New(config.DefaultReassemblerConfig(), nil)
	recv := NewReceiver(serverConn, ra, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan reassemble.CompletedFrame, 1)
	go func() {
		_ = recv.Run(ctx, func() int64 { return 0 }, func(f reassemble.CompletedFrame) {
			got <- f
		})
	}()

	h := mvntp.Header{
		MessageType: mvntp.MsgEulerPose, SampleCounter: 1, FragmentIndex: 0, IsLast: true,
		ItemCount: 1, CharacterID: 0, BodySegmentCount: 23, PayloadSize: 4,
	}
	dg := append(h.Encode(), []byte{1, 2, 3, 4}...)
	_, err = clientConn.Write(dg)
	require.NoError(t, err)

	select {
	case f := <-got:
		require.Equal(t, uint32(1), f.Header.SampleCounter)
		require.Equal(t, []byte{1, 2, 3, 4}, f.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completed frame")
	}
}
