package pushforge

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidIdentityKey is returned when the VAPID identity key has the
	// wrong type or curve, is missing a coordinate, or cannot be parsed.
	ErrInvalidIdentityKey = errors.New("invalid VAPID identity key")

	// ErrInvalidEndpoint is returned when the subscription endpoint is not
	// an absolute HTTPS URL.
	ErrInvalidEndpoint = errors.New("invalid subscription endpoint")

	// ErrInvalidSubscriberKey is returned when the subscriber's auth secret
	// or public key has the wrong length or format.
	ErrInvalidSubscriberKey = errors.New("invalid subscriber key material")

	// ErrInvalidTTL is returned when the requested TTL exceeds the 24-hour
	// ceiling on VAPID assertions.
	ErrInvalidTTL = errors.New("TTL exceeds maximum assertion lifetime")

	// ErrPayloadTooLarge is returned when the serialized payload does not
	// fit in a single encrypted record.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrDerivationFailed is returned when the key derivation pipeline fails.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrEncryptionFailed is returned when payload encryption fails.
	ErrEncryptionFailed = errors.New("payload encryption failed")

	// ErrSigningFailed is returned when signing the VAPID assertion fails.
	ErrSigningFailed = errors.New("VAPID signing failed")
)

// PushForgeError is implemented by all library errors.
type PushForgeError interface {
	error
	PushForgeError() // marker method
}

// IdentityKeyError describes an invalid VAPID identity key.
type IdentityKeyError struct {
	Field   string // "kty", "crv", "x", "y", "d", or "jwk"
	Message string
}

func (e *IdentityKeyError) Error() string {
	return fmt.Sprintf("invalid VAPID identity key: %s: %s", e.Field, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *IdentityKeyError) Is(target error) bool {
	return target == ErrInvalidIdentityKey
}

// PushForgeError implements the PushForgeError interface.
func (e *IdentityKeyError) PushForgeError() {}

// EndpointError describes an unusable subscription endpoint.
type EndpointError struct {
	URL     string
	Message string
	Err     error
}

func (e *EndpointError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid subscription endpoint %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid subscription endpoint %q: %s", e.URL, e.Message)
}

// Unwrap returns the underlying error.
func (e *EndpointError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EndpointError) Is(target error) bool {
	return target == ErrInvalidEndpoint
}

// PushForgeError implements the PushForgeError interface.
func (e *EndpointError) PushForgeError() {}

// SubscriberKeyError describes invalid subscriber key material.
type SubscriberKeyError struct {
	Field   string // "auth" or "p256dh"
	Message string
}

func (e *SubscriberKeyError) Error() string {
	return fmt.Sprintf("invalid subscriber key material: %s: %s", e.Field, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *SubscriberKeyError) Is(target error) bool {
	return target == ErrInvalidSubscriberKey
}

// PushForgeError implements the PushForgeError interface.
func (e *SubscriberKeyError) PushForgeError() {}

// TTLError describes a TTL beyond the assertion lifetime ceiling.
type TTLError struct {
	TTL int
}

func (e *TTLError) Error() string {
	return fmt.Sprintf("TTL %d exceeds maximum of %d seconds", e.TTL, MaxTTL)
}

// Is implements errors.Is for sentinel error matching.
func (e *TTLError) Is(target error) bool {
	return target == ErrInvalidTTL
}

// PushForgeError implements the PushForgeError interface.
func (e *TTLError) PushForgeError() {}

// PayloadSizeError describes a payload that cannot fit in one record.
type PayloadSizeError struct {
	Size  int
	Limit int
}

func (e *PayloadSizeError) Error() string {
	return fmt.Sprintf("payload too large: %d bytes, limit %d", e.Size, e.Limit)
}

// Is implements errors.Is for sentinel error matching.
func (e *PayloadSizeError) Is(target error) bool {
	return target == ErrPayloadTooLarge
}

// PushForgeError implements the PushForgeError interface.
func (e *PayloadSizeError) PushForgeError() {}

// DerivationError represents a failure in the key derivation pipeline.
type DerivationError struct {
	Stage string // "salt", "keygen", "ecdh", "hkdf"
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("key derivation failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DerivationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DerivationError) Is(target error) bool {
	return target == ErrDerivationFailed
}

// PushForgeError implements the PushForgeError interface.
func (e *DerivationError) PushForgeError() {}

// EncryptionError represents a failure while framing or encrypting the payload.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("payload encryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// PushForgeError implements the PushForgeError interface.
func (e *EncryptionError) PushForgeError() {}

// SigningError represents a failure while signing the VAPID assertion.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("VAPID signing failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SigningError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SigningError) Is(target error) bool {
	return target == ErrSigningFailed
}

// PushForgeError implements the PushForgeError interface.
func (e *SigningError) PushForgeError() {}
