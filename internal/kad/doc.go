// Package kad owns the Kademlia2 wire contract and parsing primitives.
//
// Ownership boundary:
// - frame header (format marker + opcode)
// - bootstrap and ping/pong payloads
// - peer identifier and peer record decoding
package kad
