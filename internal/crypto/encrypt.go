package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// EncryptionKeys is the per-message key material derived from one ECDH
// agreement. Never logged, never returned to callers of the library.
type EncryptionKeys struct {
	// Nonce is the 96-bit AES-GCM IV.
	Nonce []byte
	// CEK is the 128-bit content-encryption key.
	CEK []byte
}

// DeriveEncryptionKeys runs the aesgcm derivation chain:
//
//  1. PRK = HKDF(salt=authSecret, ikm=sharedSecret, info="Content-Encoding: auth\x00")
//  2. nonce = HKDF(salt=salt, ikm=PRK, info="Content-Encoding: nonce\x00" || context)
//  3. CEK = HKDF(salt=salt, ikm=PRK, info="Content-Encoding: aesgcm\x00" || context)
//
// where context binds the curve label and both public points. The chain
// is deterministic: both parties derive identical keys from the same
// inputs, which is also what the receiving side does to decrypt.
func DeriveEncryptionKeys(p Provider, sharedSecret, authSecret, salt, subscriberKey, senderKey []byte) (*EncryptionKeys, error) {
	prk, err := p.DeriveKey(sharedSecret, authSecret, infoAuth, PRKSize)
	if err != nil {
		return nil, fmt.Errorf("derive prk: %w", err)
	}

	context := keyContext(subscriberKey, senderKey)

	nonce, err := p.DeriveKey(prk, salt, withContext(infoNonce, context), AESNonceSize)
	if err != nil {
		return nil, fmt.Errorf("derive nonce: %w", err)
	}

	cek, err := p.DeriveKey(prk, salt, withContext(infoCEK, context), AESKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive content-encryption key: %w", err)
	}

	return &EncryptionKeys{Nonce: nonce, CEK: cek}, nil
}

// keyContext builds the derivation context: the curve label followed by
// both public points, each prefixed with its big-endian 16-bit length.
// The subscriber's point always comes first.
func keyContext(subscriberKey, senderKey []byte) []byte {
	context := make([]byte, 0, len(curveLabel)+4+len(subscriberKey)+len(senderKey))
	context = append(context, curveLabel...)
	context = binary.BigEndian.AppendUint16(context, uint16(len(subscriberKey)))
	context = append(context, subscriberKey...)
	context = binary.BigEndian.AppendUint16(context, uint16(len(senderKey)))
	context = append(context, senderKey...)
	return context
}

func withContext(info, context []byte) []byte {
	out := make([]byte, 0, len(info)+len(context))
	out = append(out, info...)
	out = append(out, context...)
	return out
}

// PadPayload frames a serialized payload as a plaintext record: a 2-byte
// big-endian padding length, that many random bytes, then the payload.
//
// The padding length is drawn uniformly from [0, min(maxPadding, budget)]
// where budget is the room left under the record ceiling. Randomized
// padding blurs payload sizes against traffic analysis; it does not
// affect correctness, and the receiver strips it by reading the prefix.
func PadPayload(r io.Reader, payload []byte, maxPadding int) ([]byte, error) {
	budget := MaxPayloadSize - len(payload)
	if budget < 0 {
		return nil, fmt.Errorf("%w: got %d, want at most %d", ErrRecordTooLarge, len(payload), MaxPayloadSize)
	}

	limit := maxPadding
	if limit < 0 {
		limit = 0
	}
	if limit > budget {
		limit = budget
	}

	padLen, err := randomInt(r, limit+1)
	if err != nil {
		return nil, fmt.Errorf("draw padding length: %w", err)
	}

	record := make([]byte, PaddingLengthSize+padLen+len(payload))
	binary.BigEndian.PutUint16(record, uint16(padLen))
	if _, err := io.ReadFull(r, record[PaddingLengthSize:PaddingLengthSize+padLen]); err != nil {
		return nil, fmt.Errorf("fill padding: %w", err)
	}
	copy(record[PaddingLengthSize+padLen:], payload)

	return record, nil
}

// randomInt returns a uniform value in [0, n).
func randomInt(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
