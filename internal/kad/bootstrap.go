package kad

import "encoding/binary"

// bootstrapFixedLen covers the fixed prefix of a BOOTSTRAP_RES payload:
// id(16) | tcp port(2) | version(1) | peer count(2).
const bootstrapFixedLen = IDSize + 2 + 1 + 2

// BootstrapResponse is the decoded KADEMLIA2_BOOTSTRAP_RES payload.
type BootstrapResponse struct {
	ID      ID
	TCPPort uint16
	Version uint8
	Peers   []Peer
}

// DecodeBootstrapResponse parses a raw datagram as a bootstrap response.
// A frame-level error propagates as-is; a well-formed frame with a
// different opcode reports ErrOpcodeMismatch so callers can tell "not this
// message type" from corruption.
func DecodeBootstrapResponse(pkt []byte) (*BootstrapResponse, error) {
	opcode, payload, err := DecodeFrame(pkt)
	if err != nil {
		return nil, err
	}
	if opcode != OpBootstrapRes {
		return nil, ErrOpcodeMismatch
	}
	if len(payload) < bootstrapFixedLen {
		return nil, ErrTruncated
	}

	id, err := DecodeID(payload[:IDSize])
	if err != nil {
		return nil, err
	}
	tcpPort := binary.LittleEndian.Uint16(payload[16:18])
	version := payload[18]
	count := binary.LittleEndian.Uint16(payload[19:21])

	peers, err := DecodePeerList(payload[bootstrapFixedLen:])
	if err != nil {
		return nil, err
	}
	if int(count) != len(peers) {
		return nil, ErrMalformedPayload
	}

	return &BootstrapResponse{
		ID:      id,
		TCPPort: tcpPort,
		Version: version,
		Peers:   peers,
	}, nil
}
