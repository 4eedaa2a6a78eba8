package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	data := []byte{0x04, 0xff, 0x00, 0x7f, 0x80, 0x01}

	encoded := ToBase64URL(data)
	decoded, err := FromBase64URL(encoded)
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}

	if !bytes.Equal(decoded, data) {
		t.Errorf("round trip = %x, want %x", decoded, data)
	}
}

func TestFromBase64URL_RejectsPadding(t *testing.T) {
	if _, err := FromBase64URL("aGVsbG8="); err == nil {
		t.Error("expected error for padded input")
	}
}

func TestDecodeBase64_Variants(t *testing.T) {
	// Bytes chosen so URL-safe and standard alphabets differ.
	data := []byte{0xfb, 0xff, 0xbf, 0x04, 0x05}

	tests := []struct {
		name  string
		input string
	}{
		{"url unpadded", base64.RawURLEncoding.EncodeToString(data)},
		{"url padded", base64.URLEncoding.EncodeToString(data)},
		{"std unpadded", base64.RawStdEncoding.EncodeToString(data)},
		{"std padded", base64.StdEncoding.EncodeToString(data)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64(tt.input)
			if err != nil {
				t.Fatalf("DecodeBase64(%q) error = %v", tt.input, err)
			}
			if !bytes.Equal(decoded, data) {
				t.Errorf("DecodeBase64(%q) = %x, want %x", tt.input, decoded, data)
			}
		})
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	if _, err := DecodeBase64("not*base64!"); err == nil {
		t.Error("expected error for invalid input")
	}
}
