package crypto

const (
	// PublicKeySize is the size of an uncompressed P-256 point
	// (0x04 || x || y) in bytes.
	PublicKeySize = 65
	// CoordinateSize is the size of a P-256 field element or scalar in bytes.
	CoordinateSize = 32
	// SharedSecretSize is the size of a P-256 ECDH shared secret in bytes.
	SharedSecretSize = 32

	// AuthSecretSize is the size of the subscriber's auth secret in bytes.
	AuthSecretSize = 16
	// SaltSize is the size of the per-message salt in bytes.
	SaltSize = 16
	// PRKSize is the size of the HKDF pseudo-random key in bytes.
	PRKSize = 32

	// AESKeySize is the size of an AES-128 key in bytes.
	AESKeySize = 16
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// PaddingLengthSize is the size of the big-endian padding-length
	// prefix at the start of every plaintext record.
	PaddingLengthSize = 2
	// MaxRecordSize is the plaintext record ceiling: prefix + padding + payload.
	MaxRecordSize = 4078
	// MaxPayloadSize is the largest serialized payload that fits in a
	// record, before any padding is added.
	MaxPayloadSize = MaxRecordSize - PaddingLengthSize

	// DefaultMaxPadding caps the random padding drawn per message.
	DefaultMaxPadding = 100
)

// Info strings for the derivation chain. The trailing NUL byte is part of
// the scheme.
var (
	infoAuth  = []byte("Content-Encoding: auth\x00")
	infoNonce = []byte("Content-Encoding: nonce\x00")
	infoCEK   = []byte("Content-Encoding: aesgcm\x00")

	curveLabel = []byte("P-256\x00")
)
