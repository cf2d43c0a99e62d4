package kad

// Format markers from the Kademlia2 wire contract. Every datagram starts
// with one of these, followed by a single opcode byte.
const (
	FormatStandard   byte = 0xE4
	FormatCompressed byte = 0xE5
)

// Opcodes handled by this codec.
const (
	OpBootstrapReq byte = 0x01
	OpBootstrapRes byte = 0x09
	OpPing         byte = 0x60
	OpPong         byte = 0x61
)

// DecodeFrame splits a raw datagram into opcode and payload. The returned
// payload aliases pkt; the input is never mutated.
func DecodeFrame(pkt []byte) (byte, []byte, error) {
	if len(pkt) < 2 {
		return 0, nil, ErrTruncated
	}
	switch pkt[0] {
	case FormatStandard:
		return pkt[1], pkt[2:], nil
	case FormatCompressed:
		return 0, nil, ErrCompressedUnsupported
	default:
		return 0, nil, ErrUnrecognizedFormat
	}
}

// EncodeFrame prefixes payload with the standard marker and opcode.
func EncodeFrame(opcode byte, payload []byte) []byte {
	buf := make([]byte, 2+len(payload))
	buf[0] = FormatStandard
	buf[1] = opcode
	copy(buf[2:], payload)
	return buf
}

// BootstrapRequest builds a KADEMLIA2_BOOTSTRAP_REQ datagram. The request
// carries no payload.
func BootstrapRequest() []byte {
	return EncodeFrame(OpBootstrapReq, nil)
}

// PingRequest builds a KADEMLIA2_PING datagram.
func PingRequest() []byte {
	return EncodeFrame(OpPing, nil)
}
