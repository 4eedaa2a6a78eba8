package pushforge

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestSubscription_Validate(t *testing.T) {
	sub, _, _ := newTestSubscription(t)

	info, err := sub.validate()
	if err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if len(info.publicKey) != 65 {
		t.Errorf("public key length = %d, want 65", len(info.publicKey))
	}
	if len(info.authSecret) != 16 {
		t.Errorf("auth secret length = %d, want 16", len(info.authSecret))
	}
	if info.origin != "https://push.example.com" {
		t.Errorf("origin = %q, want %q", info.origin, "https://push.example.com")
	}
}

func TestSubscription_ValidateEndpoint(t *testing.T) {
	base, _, _ := newTestSubscription(t)

	tests := []struct {
		name     string
		endpoint string
	}{
		{"http scheme", "http://push.example.com/send/abc"},
		{"relative", "/send/abc"},
		{"empty", ""},
		{"garbage", "://push.example.com"},
		{"no host", "https:///send/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{Endpoint: tt.endpoint, Keys: base.Keys}
			if _, err := sub.validate(); !errors.Is(err, ErrInvalidEndpoint) {
				t.Errorf("validate() error = %v, want ErrInvalidEndpoint", err)
			}
		})
	}
}

func TestSubscription_ValidateKeys(t *testing.T) {
	base, _, _ := newTestSubscription(t)
	b64 := func(n int) string { return base64.RawURLEncoding.EncodeToString(make([]byte, n)) }

	point, err := base64.RawURLEncoding.DecodeString(base.Keys.P256dh)
	if err != nil {
		t.Fatal(err)
	}
	compressed := append([]byte{0x02}, point[1:]...)

	tests := []struct {
		name string
		keys SubscriptionKeys
	}{
		{"auth 15 bytes", SubscriptionKeys{P256dh: base.Keys.P256dh, Auth: b64(15)}},
		{"auth 17 bytes", SubscriptionKeys{P256dh: base.Keys.P256dh, Auth: b64(17)}},
		{"auth undecodable", SubscriptionKeys{P256dh: base.Keys.P256dh, Auth: "***"}},
		{"p256dh 64 bytes", SubscriptionKeys{P256dh: base64.RawURLEncoding.EncodeToString(point[:64]), Auth: base.Keys.Auth}},
		{"p256dh 66 bytes", SubscriptionKeys{P256dh: base64.RawURLEncoding.EncodeToString(append(point, 0)), Auth: base.Keys.Auth}},
		{"p256dh compressed marker", SubscriptionKeys{P256dh: base64.RawURLEncoding.EncodeToString(compressed), Auth: base.Keys.Auth}},
		{"p256dh undecodable", SubscriptionKeys{P256dh: "***", Auth: base.Keys.Auth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{Endpoint: base.Endpoint, Keys: tt.keys}
			if _, err := sub.validate(); !errors.Is(err, ErrInvalidSubscriberKey) {
				t.Errorf("validate() error = %v, want ErrInvalidSubscriberKey", err)
			}
		})
	}
}

func TestSubscription_LenientKeyEncoding(t *testing.T) {
	sub, _, _ := newTestSubscription(t)

	// Re-encode the keys with padding; browsers emit both forms.
	auth, err := base64.RawURLEncoding.DecodeString(sub.Keys.Auth)
	if err != nil {
		t.Fatal(err)
	}
	point, err := base64.RawURLEncoding.DecodeString(sub.Keys.P256dh)
	if err != nil {
		t.Fatal(err)
	}
	sub.Keys.Auth = base64.URLEncoding.EncodeToString(auth)
	sub.Keys.P256dh = base64.URLEncoding.EncodeToString(point)

	if _, err := sub.validate(); err != nil {
		t.Errorf("validate() with padded keys error = %v", err)
	}
}

func TestParseSubscription(t *testing.T) {
	data := []byte(`{
		"endpoint": "https://fcm.googleapis.com/fcm/send/dQw4",
		"keys": {"p256dh": "` + newTestP256dh(t) + `", "auth": "` + newTestAuth(t) + `"}
	}`)

	sub, err := ParseSubscription(data)
	if err != nil {
		t.Fatalf("ParseSubscription() error = %v", err)
	}
	if sub.Endpoint != "https://fcm.googleapis.com/fcm/send/dQw4" {
		t.Errorf("endpoint = %q", sub.Endpoint)
	}

	if _, err := ParseSubscription([]byte(`{"endpoint":`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func newTestP256dh(t *testing.T) string {
	t.Helper()
	sub, _, _ := newTestSubscription(t)
	return sub.Keys.P256dh
}

func newTestAuth(t *testing.T) string {
	t.Helper()
	sub, _, _ := newTestSubscription(t)
	return sub.Keys.Auth
}
