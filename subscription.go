package pushforge

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/draphy/pushforge/internal/crypto"
)

// Subscription is a push subscription record: where the push service
// accepts messages for the subscriber, and the subscriber's static key
// material. The JSON shape matches PushSubscription.toJSON() from the
// browser Push API.
type Subscription struct {
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}

// SubscriptionKeys carries the subscriber's base64url key material.
type SubscriptionKeys struct {
	// P256dh is the subscriber's public key, an uncompressed P-256 point.
	P256dh string `json:"p256dh"`
	// Auth is the 16-byte auth secret.
	Auth string `json:"auth"`
}

// ParseSubscription parses a subscription JSON document and validates it.
func ParseSubscription(data []byte) (*Subscription, error) {
	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, &EndpointError{URL: "", Message: fmt.Sprintf("parse subscription: %v", err)}
	}

	if _, err := sub.validate(); err != nil {
		return nil, err
	}

	return &sub, nil
}

// subscriberInfo is the normalized bundle validation produces: decoded
// key material plus the endpoint origin used as the JWT audience.
type subscriberInfo struct {
	publicKey  []byte
	authSecret []byte
	origin     string
}

func (s *Subscription) validate() (*subscriberInfo, error) {
	u, err := url.Parse(s.Endpoint)
	if err != nil {
		return nil, &EndpointError{URL: s.Endpoint, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &EndpointError{URL: s.Endpoint, Message: "not an absolute URL"}
	}
	if u.Scheme != "https" {
		return nil, &EndpointError{URL: s.Endpoint, Message: fmt.Sprintf("scheme %q, want https", u.Scheme)}
	}

	authSecret, err := crypto.DecodeBase64(s.Keys.Auth)
	if err != nil {
		return nil, &SubscriberKeyError{Field: "auth", Message: fmt.Sprintf("decode: %v", err)}
	}
	if len(authSecret) != crypto.AuthSecretSize {
		return nil, &SubscriberKeyError{
			Field:   "auth",
			Message: fmt.Sprintf("got %d bytes, want %d", len(authSecret), crypto.AuthSecretSize),
		}
	}

	publicKey, err := crypto.DecodeBase64(s.Keys.P256dh)
	if err != nil {
		return nil, &SubscriberKeyError{Field: "p256dh", Message: fmt.Sprintf("decode: %v", err)}
	}
	if len(publicKey) != crypto.PublicKeySize {
		return nil, &SubscriberKeyError{
			Field:   "p256dh",
			Message: fmt.Sprintf("got %d bytes, want %d", len(publicKey), crypto.PublicKeySize),
		}
	}
	if publicKey[0] != 0x04 {
		return nil, &SubscriberKeyError{
			Field:   "p256dh",
			Message: fmt.Sprintf("leading byte 0x%02x, want uncompressed point marker 0x04", publicKey[0]),
		}
	}

	return &subscriberInfo{
		publicKey:  publicKey,
		authSecret: authSecret,
		origin:     u.Scheme + "://" + u.Host,
	}, nil
}
