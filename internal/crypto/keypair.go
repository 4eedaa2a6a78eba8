package crypto

import (
	"crypto/ecdh"
	"fmt"
	"io"
)

// KeyPair is a P-256 key pair for ECDH agreement. The sender generates a
// fresh one per message and discards it once the message is built.
type KeyPair struct {
	// PublicKey is the raw uncompressed point (0x04 || x || y).
	PublicKey []byte

	private *ecdh.PrivateKey
}

func generateKeyPair(r io.Reader) (*KeyPair, error) {
	priv, err := ecdh.P256().GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	return &KeyPair{
		PublicKey: priv.PublicKey().Bytes(),
		private:   priv,
	}, nil
}

// ImportPublicKey parses a raw uncompressed P-256 point into an
// ECDH-capable key handle. The point is validated to be on the curve.
func ImportPublicKey(raw []byte) (*ecdh.PublicKey, error) {
	if len(raw) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(raw), PublicKeySize)
	}

	if raw[0] != 0x04 {
		return nil, ErrInvalidPublicKeyFormat
	}

	pub, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("import public key: %w", err)
	}

	return pub, nil
}
