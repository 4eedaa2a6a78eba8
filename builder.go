package pushforge

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/draphy/pushforge/internal/crypto"
)

// Build runs the full pipeline for one notification: input validation,
// key derivation, payload framing and encryption, VAPID signing, and
// header assembly. It is side-effect-free apart from consuming
// randomness, and safe to call concurrently.
//
// Every failure aborts the build; no partial artifact exists. The caller
// owns retry policy, and a retry must go through Build again so that the
// salt, ephemeral key, and padding are fresh.
func Build(identity *VapidIdentity, sub *Subscription, msg *Message, opts ...BuildOption) (*Request, error) {
	cfg := newBuildConfig(opts)

	if identity == nil {
		return nil, &IdentityKeyError{Field: "jwk", Message: "identity is required"}
	}
	senderKey, err := identity.keyMaterial()
	if err != nil {
		return nil, err
	}

	if sub == nil {
		return nil, &EndpointError{URL: "", Message: "subscription is required"}
	}
	subscriber, err := sub.validate()
	if err != nil {
		return nil, err
	}

	if msg == nil {
		return nil, fmt.Errorf("pushforge: message is required")
	}
	ttl, err := resolveTTL(msg.TTL)
	if err != nil {
		return nil, err
	}

	payload, err := msg.serializePayload()
	if err != nil {
		return nil, fmt.Errorf("pushforge: %w", err)
	}
	if len(payload) > MaxPayloadSize {
		return nil, &PayloadSizeError{Size: len(payload), Limit: MaxPayloadSize}
	}

	// Key derivation: fresh salt and ephemeral key, ECDH against the
	// subscriber's static key, then the HKDF chain.
	salt := make([]byte, crypto.SaltSize)
	if _, err := io.ReadFull(cfg.provider.Rand(), salt); err != nil {
		return nil, &DerivationError{Stage: "salt", Err: err}
	}

	ephemeral, err := cfg.provider.GenerateKeyPair()
	if err != nil {
		return nil, &DerivationError{Stage: "keygen", Err: err}
	}

	sharedSecret, err := cfg.provider.SharedSecret(ephemeral, subscriber.publicKey)
	if err != nil {
		return nil, &DerivationError{Stage: "ecdh", Err: err}
	}

	keys, err := crypto.DeriveEncryptionKeys(cfg.provider, sharedSecret, subscriber.authSecret, salt, subscriber.publicKey, ephemeral.PublicKey)
	if err != nil {
		return nil, &DerivationError{Stage: "hkdf", Err: err}
	}

	// Framing and encryption.
	record, err := crypto.PadPayload(cfg.provider.Rand(), payload, cfg.maxPadding)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	body, err := cfg.provider.Encrypt(keys.CEK, keys.Nonce, record)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	// VAPID assertion for the endpoint's origin.
	expiry := cfg.now().Add(time.Duration(ttl) * time.Second)
	assertion, err := signAssertion(senderKey.signingKey(), subscriber.origin, msg.Contact, expiry)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type":     "application/octet-stream",
		"Content-Encoding": "aesgcm",
		"Content-Length":   strconv.Itoa(len(body)),
		"Encryption":       "salt=" + crypto.ToBase64URL(salt),
		"Crypto-Key":       "dh=" + crypto.ToBase64URL(ephemeral.PublicKey),
		"Authorization":    authorizationHeader(assertion, crypto.ToBase64URL(senderKey.publicPoint())),
		"TTL":              strconv.Itoa(ttl),
	}
	if msg.Topic != "" {
		headers["Topic"] = msg.Topic
	}
	if msg.Urgency != "" {
		headers["Urgency"] = string(msg.Urgency)
	}

	return &Request{
		Endpoint: sub.Endpoint,
		Headers:  headers,
		Body:     body,
	}, nil
}

// resolveTTL applies the VAPID lifetime ceiling and the default.
func resolveTTL(ttl int) (int, error) {
	if ttl > MaxTTL {
		return 0, &TTLError{TTL: ttl}
	}
	if ttl <= 0 {
		return MaxTTL, nil
	}
	return ttl, nil
}
