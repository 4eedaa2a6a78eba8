package pushforge

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/draphy/pushforge/internal/crypto"
)

// VapidIdentity is the sender's long-term P-256 signing key in JWK form.
// The x, y, and d fields are base64url-encoded 32-byte coordinates.
//
// Construct one with [ParseVapidIdentity] or [NewVapidIdentity]; both
// validate the key shape up front. A literal struct is validated on
// every [Build] call instead. The type holds no derived state, so a
// single identity may be shared across concurrent builds.
type VapidIdentity struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
	D   string `json:"d"`
}

// ParseVapidIdentity parses a serialized EC JWK into a validated identity.
func ParseVapidIdentity(data []byte) (*VapidIdentity, error) {
	var id VapidIdentity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, &IdentityKeyError{Field: "jwk", Message: fmt.Sprintf("parse JWK: %v", err)}
	}

	if err := id.validate(); err != nil {
		return nil, err
	}

	return &id, nil
}

// NewVapidIdentity builds an identity from base64url raw coordinates.
func NewVapidIdentity(x, y, d string) (*VapidIdentity, error) {
	id := &VapidIdentity{Kty: "EC", Crv: "P-256", X: x, Y: y, D: d}
	if err := id.validate(); err != nil {
		return nil, err
	}
	return id, nil
}

// vapidKey is the decoded key material for one identity.
type vapidKey struct {
	x, y, d []byte
}

// keyMaterial validates the identity shape and decodes its coordinates.
func (id *VapidIdentity) keyMaterial() (*vapidKey, error) {
	if id.Kty != "EC" {
		return nil, &IdentityKeyError{Field: "kty", Message: fmt.Sprintf("got %q, want %q", id.Kty, "EC")}
	}
	if id.Crv != "P-256" {
		return nil, &IdentityKeyError{Field: "crv", Message: fmt.Sprintf("got %q, want %q", id.Crv, "P-256")}
	}

	var key vapidKey
	coords := []struct {
		name  string
		value string
		dst   *[]byte
	}{
		{"x", id.X, &key.x},
		{"y", id.Y, &key.y},
		{"d", id.D, &key.d},
	}

	for _, c := range coords {
		if c.value == "" {
			return nil, &IdentityKeyError{Field: c.name, Message: "missing coordinate"}
		}
		raw, err := crypto.FromBase64URL(c.value)
		if err != nil {
			return nil, &IdentityKeyError{Field: c.name, Message: fmt.Sprintf("decode: %v", err)}
		}
		if len(raw) != crypto.CoordinateSize {
			return nil, &IdentityKeyError{
				Field:   c.name,
				Message: fmt.Sprintf("got %d bytes, want %d", len(raw), crypto.CoordinateSize),
			}
		}
		*c.dst = raw
	}

	return &key, nil
}

func (id *VapidIdentity) validate() error {
	_, err := id.keyMaterial()
	return err
}

// PublicKeyBytes returns the uncompressed public point (0x04 || x || y),
// or nil if the key material is invalid.
func (id *VapidIdentity) PublicKeyBytes() []byte {
	key, err := id.keyMaterial()
	if err != nil {
		return nil
	}
	return key.publicPoint()
}

// PublicKey returns the base64url public point, the form browsers expect
// as applicationServerKey and the Authorization header carries as k.
func (id *VapidIdentity) PublicKey() string {
	return crypto.ToBase64URL(id.PublicKeyBytes())
}

func (k *vapidKey) publicPoint() []byte {
	point := make([]byte, 0, crypto.PublicKeySize)
	point = append(point, 0x04)
	point = append(point, k.x...)
	point = append(point, k.y...)
	return point
}

// signingKey reconstructs the ECDSA private key for ES256 signing.
func (k *vapidKey) signingKey() *ecdsa.PrivateKey {
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(k.x),
			Y:     new(big.Int).SetBytes(k.y),
		},
		D: new(big.Int).SetBytes(k.d),
	}
}
