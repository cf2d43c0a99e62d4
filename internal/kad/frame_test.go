package kad

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	cases := []struct {
		opcode  byte
		payload []byte
	}{
		{OpBootstrapReq, nil},
		{OpPing, []byte{}},
		{OpPong, []byte{0x39, 0x30}},
		{OpBootstrapRes, bytes.Repeat([]byte{0xab}, 21)},
	}
	for _, c := range cases {
		pkt := EncodeFrame(c.opcode, c.payload)
		opcode, payload, err := DecodeFrame(pkt)
		if err != nil {
			t.Fatalf("decode frame opcode=0x%02x: %v", c.opcode, err)
		}
		if opcode != c.opcode {
			t.Fatalf("opcode mismatch: got 0x%02x want 0x%02x", opcode, c.opcode)
		}
		if !bytes.Equal(payload, c.payload) {
			t.Fatalf("payload mismatch: got %x want %x", payload, c.payload)
		}
	}
}

func TestDecodeFrameTruncated(t *testing.T) {
	for _, pkt := range [][]byte{nil, {}, {FormatStandard}} {
		if _, _, err := DecodeFrame(pkt); !errors.Is(err, ErrTruncated) {
			t.Fatalf("len=%d: expected ErrTruncated, got %v", len(pkt), err)
		}
	}
}

func TestDecodeFrameCompressed(t *testing.T) {
	_, _, err := DecodeFrame([]byte{FormatCompressed, OpBootstrapRes, 0x00})
	if !errors.Is(err, ErrCompressedUnsupported) {
		t.Fatalf("expected ErrCompressedUnsupported, got %v", err)
	}
}

func TestDecodeFrameUnrecognizedMarker(t *testing.T) {
	_, _, err := DecodeFrame([]byte{0xC5, OpPing})
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
}

func TestRequestBuilders(t *testing.T) {
	if got := BootstrapRequest(); !bytes.Equal(got, []byte{FormatStandard, OpBootstrapReq}) {
		t.Fatalf("bootstrap request: got %x", got)
	}
	if got := PingRequest(); !bytes.Equal(got, []byte{FormatStandard, OpPing}) {
		t.Fatalf("ping request: got %x", got)
	}
}
