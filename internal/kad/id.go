package kad

import (
	"encoding/binary"
	"fmt"
)

// IDSize is the on-wire size of a peer identifier.
const IDSize = 16

// ID is a 128-bit Kademlia node identifier. On the wire it is carried as
// four little-endian 32-bit words; folding them back together is the same
// as reading the 16 bytes as one little-endian unsigned integer.
type ID struct {
	hi, lo uint64
}

// DecodeID reads a peer identifier from exactly 16 bytes.
func DecodeID(b []byte) (ID, error) {
	if len(b) != IDSize {
		return ID{}, ErrMalformedPayload
	}
	return ID{
		hi: binary.LittleEndian.Uint64(b[8:16]),
		lo: binary.LittleEndian.Uint64(b[0:8]),
	}, nil
}

// String renders the identifier as uppercase hex without leading zeros,
// matching a plain base-16 integer conversion.
func (id ID) String() string {
	if id.hi == 0 {
		return fmt.Sprintf("%X", id.lo)
	}
	return fmt.Sprintf("%X%016X", id.hi, id.lo)
}

// Padded renders the identifier as fixed-width 32-char uppercase hex for
// consumers that index or compare identifiers textually.
func (id ID) Padded() string {
	return fmt.Sprintf("%016X%016X", id.hi, id.lo)
}
