package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randOverride replaces the random source for tests. Nil means crypto/rand.
var randOverride io.Reader

func randReader() io.Reader {
	if randOverride != nil {
		return randOverride
	}
	return rand.Reader
}

// Provider supplies the primitive operations the encryption scheme
// consumes. [Default] returns the standard-library-backed implementation;
// hosts with hardware-backed or platform crypto supply their own.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	// GenerateKeyPair creates a fresh P-256 key pair for ECDH.
	GenerateKeyPair() (*KeyPair, error)

	// SharedSecret runs ECDH between the pair's private key and a raw
	// uncompressed peer point, returning the 32-byte shared secret.
	SharedSecret(kp *KeyPair, peerPublicKey []byte) ([]byte, error)

	// DeriveKey derives length bytes via HKDF-SHA-256.
	DeriveKey(secret, salt, info []byte, length int) ([]byte, error)

	// Encrypt seals a plaintext record with AES-128-GCM, appending the
	// 16-byte authentication tag.
	Encrypt(key, nonce, plaintext []byte) ([]byte, error)

	// Rand returns the secure random source.
	Rand() io.Reader
}

type stdProvider struct{}

// Default returns the standard-library-backed provider.
func Default() Provider {
	return stdProvider{}
}

func (stdProvider) GenerateKeyPair() (*KeyPair, error) {
	return generateKeyPair(randReader())
}

func (stdProvider) SharedSecret(kp *KeyPair, peerPublicKey []byte) ([]byte, error) {
	pub, err := ImportPublicKey(peerPublicKey)
	if err != nil {
		return nil, err
	}

	secret, err := kp.private.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("ecdh: %w", err)
	}

	return secret, nil
}

func (stdProvider) DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	return DeriveKey(secret, salt, info, length)
}

func (stdProvider) Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	return EncryptAESGCM(key, nonce, plaintext)
}

func (stdProvider) Rand() io.Reader {
	return randReader()
}
