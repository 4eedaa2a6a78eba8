package crypto

import "errors"

var (
	// ErrInvalidPublicKeySize is returned when a subscriber public key is
	// not a 65-byte uncompressed point.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPublicKeyFormat is returned when a subscriber public key
	// does not start with the uncompressed-point marker 0x04.
	ErrInvalidPublicKeyFormat = errors.New("public key is not an uncompressed point")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrRecordTooLarge is returned when a payload cannot fit in a single
	// plaintext record even with zero padding.
	ErrRecordTooLarge = errors.New("payload exceeds record size")
)
