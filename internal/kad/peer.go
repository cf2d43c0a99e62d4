package kad

import (
	"encoding/binary"
	"net/netip"
)

// PeerSize is the fixed on-wire size of one peer record:
// id(16) | ipv4(4) | udp port(2) | tcp port(2) | version(1).
const PeerSize = 25

// Peer is one peer record from a bootstrap response.
type Peer struct {
	ID      ID
	Addr    netip.Addr
	UDPPort uint16
	TCPPort uint16
	Version uint8
}

// DecodePeer reads a single peer record from exactly 25 bytes.
func DecodePeer(rec []byte) (Peer, error) {
	if len(rec) != PeerSize {
		return Peer{}, ErrMalformedPayload
	}
	id, err := DecodeID(rec[:IDSize])
	if err != nil {
		return Peer{}, err
	}
	// The address travels as a little-endian uint32; the dotted quad reads
	// most-significant octet first.
	ip := binary.LittleEndian.Uint32(rec[16:20])
	addr := netip.AddrFrom4([4]byte{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)})
	return Peer{
		ID:      id,
		Addr:    addr,
		UDPPort: binary.LittleEndian.Uint16(rec[20:22]),
		TCPPort: binary.LittleEndian.Uint16(rec[22:24]),
		Version: rec[24],
	}, nil
}

// DecodePeerList splits data into consecutive 25-byte records and decodes
// each in wire order. A length that is not a multiple of 25, or any bad
// record, fails the whole list; there are no partial results.
func DecodePeerList(data []byte) ([]Peer, error) {
	if len(data)%PeerSize != 0 {
		return nil, ErrMalformedPayload
	}
	peers := make([]Peer, 0, len(data)/PeerSize)
	for off := 0; off < len(data); off += PeerSize {
		p, err := DecodePeer(data[off : off+PeerSize])
		if err != nil {
			return nil, err
		}
		peers = append(peers, p)
	}
	return peers, nil
}
