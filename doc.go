// Package pushforge builds the wire-ready components of a Web Push
// notification: the destination URL, the header set, and the encrypted
// body. It implements the Web Push message encryption scheme (the
// "aesgcm" content coding: ECDH over P-256, HKDF-SHA-256, AES-128-GCM)
// and VAPID sender authentication (ES256 JWT).
//
// The library performs no network I/O and keeps no state between calls.
// Each call to [Build] runs one linear pipeline — validation, key
// derivation, payload encryption, VAPID signing, header assembly — and
// returns a [Request] the caller hands to any HTTP client. Concurrent
// calls are safe; every call draws its own salt, ephemeral key, and
// padding.
//
// Basic usage:
//
//	identity, err := pushforge.ParseVapidIdentity(jwkJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req, err := pushforge.Build(identity, sub, &pushforge.Message{
//	    Payload: map[string]string{"title": "hi"},
//	    Contact: "mailto:ops@example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	httpReq, err := req.NewHTTPRequest(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := http.DefaultClient.Do(httpReq)
//
// Subscription storage, delivery retries, and receiver-side decryption
// are the caller's concern. A retry must call [Build] again: salts,
// ephemeral keys, and padding are single-use.
package pushforge
