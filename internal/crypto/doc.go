// Package crypto provides the primitive cryptographic operations for the
// Web Push message encryption scheme (the "aesgcm" content coding).
//
// # Algorithm Suite
//
//   - ECDH over NIST P-256: key agreement between a per-message ephemeral
//     sender key and the subscriber's static key.
//
//   - HKDF-SHA-256 (RFC 5869): derivation of the pseudo-random key, the
//     96-bit nonce, and the 128-bit content-encryption key.
//
//   - AES-128-GCM: authenticated encryption of the padded payload. The
//     16-byte authentication tag is appended to the ciphertext and is
//     part of the HTTP body.
//
// All primitives are reached through the [Provider] interface; [Default]
// returns the standard-library-backed implementation. Alternative
// providers (hardware-backed keys, FIPS builds) satisfy the same
// interface.
//
// AES-GCM nonces MUST be unique per key. The scheme guarantees this by
// deriving both the key and the nonce from a fresh salt and a fresh
// ephemeral key pair on every encryption; neither may ever be reused.
//
// # Base64 Encoding
//
// Protocol values (keys, salts) travel as URL-safe base64 without padding
// (RFC 4648 §5); [ToBase64URL] and [FromBase64URL] implement that form.
// [DecodeBase64] accepts the padded and standard-alphabet variants as
// well, since browser subscription objects are not consistent about
// which form they emit.
package crypto
