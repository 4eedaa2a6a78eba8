package pushforge

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidIdentityKey", ErrInvalidIdentityKey},
		{"ErrInvalidEndpoint", ErrInvalidEndpoint},
		{"ErrInvalidSubscriberKey", ErrInvalidSubscriberKey},
		{"ErrInvalidTTL", ErrInvalidTTL},
		{"ErrPayloadTooLarge", ErrPayloadTooLarge},
		{"ErrDerivationFailed", ErrDerivationFailed},
		{"ErrEncryptionFailed", ErrEncryptionFailed},
		{"ErrSigningFailed", ErrSigningFailed},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestStructuredErrors_Is(t *testing.T) {
	cause := errors.New("provider failure")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"IdentityKeyError", &IdentityKeyError{Field: "d", Message: "missing coordinate"}, ErrInvalidIdentityKey},
		{"EndpointError", &EndpointError{URL: "http://x", Message: "scheme"}, ErrInvalidEndpoint},
		{"SubscriberKeyError", &SubscriberKeyError{Field: "auth", Message: "got 15 bytes, want 16"}, ErrInvalidSubscriberKey},
		{"TTLError", &TTLError{TTL: 86401}, ErrInvalidTTL},
		{"PayloadSizeError", &PayloadSizeError{Size: 4077, Limit: 4076}, ErrPayloadTooLarge},
		{"DerivationError", &DerivationError{Stage: "ecdh", Err: cause}, ErrDerivationFailed},
		{"EncryptionError", &EncryptionError{Err: cause}, ErrEncryptionFailed},
		{"SigningError", &SigningError{Err: cause}, ErrSigningFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}

			var marked PushForgeError
			if !errors.As(tt.err, &marked) {
				t.Error("error does not implement PushForgeError")
			}
		})
	}
}

func TestStructuredErrors_Unwrap(t *testing.T) {
	cause := errors.New("provider failure")

	for _, err := range []error{
		&DerivationError{Stage: "hkdf", Err: cause},
		&EncryptionError{Err: cause},
		&SigningError{Err: cause},
		&EndpointError{URL: "x", Err: cause},
	} {
		if !errors.Is(err, cause) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}

func TestStructuredErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "identity",
			err:      &IdentityKeyError{Field: "crv", Message: `got "P-384", want "P-256"`},
			expected: `invalid VAPID identity key: crv: got "P-384", want "P-256"`,
		},
		{
			name:     "ttl",
			err:      &TTLError{TTL: 86401},
			expected: "TTL 86401 exceeds maximum of 86400 seconds",
		},
		{
			name:     "payload",
			err:      &PayloadSizeError{Size: 4077, Limit: 4076},
			expected: "payload too large: 4077 bytes, limit 4076",
		},
		{
			name:     "derivation",
			err:      &DerivationError{Stage: "ecdh", Err: errors.New("bad point")},
			expected: "key derivation failed at ecdh: bad point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %s, want %s", got, tt.expected)
			}
		})
	}
}
