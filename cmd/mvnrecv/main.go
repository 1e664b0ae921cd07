// Command mvnrecv listens for an MXTP motion-capture stream on UDP and
// records each completed frame to a compressed JSONL session file,
// wiring transport, reassemble, payload, and sink/record together per
// SPEC_FULL.md's [MODULE cmd].
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/internal/compress"
	"github.com/jiminghe/mvn-parser/payload"
	"github.com/jiminghe/mvn-parser/reassemble"
	"github.com/jiminghe/mvn-parser/sink/record"
	"github.com/jiminghe/mvn-parser/telemetry"
	"github.com/jiminghe/mvn-parser/transport"
	"github.com/pion/logging"
)

func main() {
	listen := flag.String("listen", "", "address to listen on (empty binds all interfaces)")
	port := flag.Int("port", transport.DefaultPort, "UDP port to listen on")
	out := flag.String("record", "session.jsonl", "output session recording path")
	codecName := flag.String("compression", "zstd", "recording codec: none, zstd, s2, lz4")
	lenient := flag.Bool("lenient", true, "clamp header/buffer length mismatches instead of rejecting the datagram")
	strictMagic := flag.Bool("strict-magic", true, "reject datagrams whose magic bytes are not \"MXTP\"")
	pointIDMult := flag.Int("point-id-multiplier", 256, "point ID multiplier (100 or 256)")
	logLevel := flag.String("log-level", "warn", "log level: disabled, error, warn, info, debug, trace")
	flag.Parse()

	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.DefaultLogLevel = parseLogLevel(*logLevel)
	logger := loggerFactory.NewLogger("mvnrecv")

	addr := fmt.Sprintf("%s:%d", *listen, *port)

	if err := run(addr, *out, *codecName, *pointIDMult, *lenient, *strictMagic, logger); err != nil {
		logger.Errorf("mvnrecv: %v", err)
		os.Exit(1)
	}
}

func run(addr, outPath, codecName string, pointIDMult int, lenient, strictMagic bool, logger logging.LeveledLogger) error {
	if pointIDMult != 100 && pointIDMult != 256 {
		return fmt.Errorf("-point-id-multiplier must be 100 or 256, got %d", pointIDMult)
	}

	kind, err := parseCodecKind(codecName)
	if err != nil {
		return err
	}
	codec, err := compress.New(kind)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	writer := record.NewWriter(f, codec)
	defer writer.Flush()

	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer conn.Close()

	decodeCfg := config.NewDecodeConfig(
		config.WithPointIDMultiplier(pointIDMult),
		config.WithLenientLength(lenient),
		config.WithStrictMagic(strictMagic),
	)
	reassemblerCfg := config.NewReassemblerConfig(config.WithDecodeConfig(decodeCfg))

	sink := telemetry.NewLogSink(logger)
	ra := reassemble.New(reassemblerCfg, sink)
	recv := transport.NewReceiver(conn, ra, reassemblerCfg.TimeoutMs, func(err error) {
		logger.Warnf("read error: %v", err)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("listening on %s, recording to %s (%s)", addr, outPath, kind)

	err = recv.Run(ctx, nowMs, func(frame reassemble.CompletedFrame) {
		typed, itemErrs, decodeErr := payload.Decode(frame.Header, frame.Payload, decodeCfg)
		for _, ie := range itemErrs {
			logger.Warnf("item error: %v", ie)
		}
		if decodeErr != nil {
			logger.Warnf("payload decode: %v", decodeErr)

			return
		}

		rec := record.Record{
			CharacterID:   frame.Header.CharacterID,
			SampleCounter: frame.Header.SampleCounter,
			TimeCodeMs:    frame.Header.TimeCodeMs,
			MessageType:   uint8(frame.Header.MessageType),
			Payload:       typed,
		}
		if _, err := writer.WriteFrame(rec); err != nil {
			logger.Warnf("write frame: %v", err)
		}
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}

func nowMs() int64 { return time.Now().UnixMilli() }

func parseCodecKind(s string) (compress.Kind, error) {
	switch s {
	case "none":
		return compress.KindNone, nil
	case "zstd":
		return compress.KindZstd, nil
	case "s2":
		return compress.KindS2, nil
	case "lz4":
		return compress.KindLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", s)
	}
}

func parseLogLevel(s string) logging.LogLevel {
	switch s {
	case "disabled":
		return logging.LogLevelDisabled
	case "error":
		return logging.LogLevelError
	case "info":
		return logging.LogLevelInfo
	case "debug":
		return logging.LogLevelDebug
	case "trace":
		return logging.LogLevelTrace
	default:
		return logging.LogLevelWarn
	}
}
