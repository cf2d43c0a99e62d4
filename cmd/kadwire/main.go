// kadwire inspects captured Kademlia2 datagrams. Packets arrive as hex
// strings, either as arguments or one per line on stdin; each gets
// classified, decoded, and logged. The exit code is nonzero if any packet
// failed to decode.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danmuck/kadwire/internal/inspect"
	"github.com/danmuck/kadwire/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a kadwire config file")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kadwire: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := logging.New("kadwire", cfg.Logging)

	packets, err := collectPackets(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kadwire: %v\n", err)
		os.Exit(1)
	}
	if len(packets) == 0 {
		fmt.Fprintln(os.Stderr, "kadwire: no packets to inspect")
		os.Exit(1)
	}

	failed := 0
	for i, raw := range packets {
		report, err := inspect.Packet(raw)
		if err != nil {
			logger.Error().Err(err).Int("packet", i).Int("bytes", len(raw)).Msg("decode failed")
			failed++
			continue
		}
		logReport(logger, i, report, cfg.PeerLimit)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func collectPackets(args []string, stdin *os.File) ([][]byte, error) {
	if len(args) > 0 {
		packets := make([][]byte, 0, len(args))
		for _, arg := range args {
			raw, err := parseHexPacket(arg)
			if err != nil {
				return nil, err
			}
			packets = append(packets, raw)
		}
		return packets, nil
	}

	var packets [][]byte
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw, err := parseHexPacket(line)
		if err != nil {
			return nil, err
		}
		packets = append(packets, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return packets, nil
}

func parseHexPacket(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex packet: %w", err)
	}
	return raw, nil
}

func logReport(logger zerolog.Logger, idx int, rep inspect.Report, peerLimit int) {
	ev := logger.Info().
		Int("packet", idx).
		Str("kind", string(rep.Kind)).
		Uint8("opcode", rep.Opcode).
		Int("payload_bytes", rep.PayloadLen)

	switch rep.Kind {
	case inspect.KindPong:
		ev.Uint16("port", rep.Port)
	case inspect.KindBootstrapRes:
		ev.Str("peer_id", rep.Bootstrap.ID.Padded()).
			Uint16("tcp_port", rep.Bootstrap.TCPPort).
			Uint8("version", rep.Bootstrap.Version).
			Int("peers", len(rep.Bootstrap.Peers))
	}
	ev.Msg("packet decoded")

	if rep.Kind != inspect.KindBootstrapRes {
		return
	}
	for i, peer := range rep.Bootstrap.Peers {
		if peerLimit > 0 && i >= peerLimit {
			logger.Debug().Int("packet", idx).Int("omitted", len(rep.Bootstrap.Peers)-peerLimit).Msg("peer list truncated by peer_limit")
			break
		}
		logger.Info().
			Int("packet", idx).
			Int("peer", i).
			Str("id", peer.ID.Padded()).
			Str("addr", peer.Addr.String()).
			Uint16("udp_port", peer.UDPPort).
			Uint16("tcp_port", peer.TCPPort).
			Uint8("version", peer.Version).
			Msg("bootstrap peer")
	}
}
