package kad

import "encoding/binary"

// DecodePong parses a raw datagram as a KADEMLIA2_PONG. The payload is the
// source port the original ping was received on, and nothing else.
func DecodePong(pkt []byte) (uint16, error) {
	opcode, payload, err := DecodeFrame(pkt)
	if err != nil {
		return 0, err
	}
	if opcode != OpPong {
		return 0, ErrOpcodeMismatch
	}
	if len(payload) != 2 {
		return 0, ErrMalformedPayload
	}
	return binary.LittleEndian.Uint16(payload), nil
}
