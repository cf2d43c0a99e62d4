// Package inspect classifies raw Kademlia2 datagrams and drives the
// matching payload decoder. It sits between the codec and anything that
// wants a typed view of a captured packet.
package inspect

import (
	"errors"

	"github.com/danmuck/kadwire/internal/kad"
	"github.com/danmuck/kadwire/internal/observability"
)

// Kind identifies the message type of an inspected packet.
type Kind string

const (
	KindBootstrapReq Kind = "bootstrap_req"
	KindBootstrapRes Kind = "bootstrap_res"
	KindPing         Kind = "ping"
	KindPong         Kind = "pong"
	KindUnknown      Kind = "unknown"
)

// Report is the decoded view of one packet.
type Report struct {
	Kind       Kind
	Opcode     byte
	PayloadLen int
	Port       uint16                 // KindPong only
	Bootstrap  *kad.BootstrapResponse // KindBootstrapRes only
}

// Packet classifies one raw datagram and decodes the payloads this codec
// understands. Opcodes outside the contract yield a KindUnknown report,
// not an error; the frame itself still has to be well formed.
func Packet(raw []byte) (Report, error) {
	opcode, payload, err := kad.DecodeFrame(raw)
	if err != nil {
		observability.RecordDecodeFailure(failureReason(err))
		return Report{}, err
	}

	rep := Report{Opcode: opcode, PayloadLen: len(payload)}
	switch opcode {
	case kad.OpBootstrapReq:
		rep.Kind = KindBootstrapReq
	case kad.OpPing:
		rep.Kind = KindPing
	case kad.OpPong:
		port, err := kad.DecodePong(raw)
		if err != nil {
			observability.RecordDecodeFailure(failureReason(err))
			return Report{}, err
		}
		rep.Kind = KindPong
		rep.Port = port
	case kad.OpBootstrapRes:
		res, err := kad.DecodeBootstrapResponse(raw)
		if err != nil {
			observability.RecordDecodeFailure(failureReason(err))
			return Report{}, err
		}
		rep.Kind = KindBootstrapRes
		rep.Bootstrap = res
	default:
		rep.Kind = KindUnknown
	}

	observability.RecordPacket(string(rep.Kind))
	return rep, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, kad.ErrTruncated):
		return "truncated"
	case errors.Is(err, kad.ErrCompressedUnsupported):
		return "compressed"
	case errors.Is(err, kad.ErrUnrecognizedFormat):
		return "bad_marker"
	case errors.Is(err, kad.ErrOpcodeMismatch):
		return "opcode_mismatch"
	case errors.Is(err, kad.ErrMalformedPayload):
		return "malformed"
	default:
		return "other"
	}
}
