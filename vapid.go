package pushforge

import (
	"crypto/ecdsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signAssertion issues the VAPID JWT authorizing this sender to the push
// service at audience. The token header is {typ: "JWT", alg: "ES256"};
// claims carry the endpoint origin, the expiry, and the contact URI.
func signAssertion(key *ecdsa.PrivateKey, audience, subject string, expiry time.Time) (string, error) {
	claims := jwt.MapClaims{
		"aud": audience,
		"exp": expiry.Unix(),
		"sub": subject,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", &SigningError{Err: err}
	}

	return signed, nil
}

// authorizationHeader renders the vapid scheme value. Push services parse
// this literally: t is the signed assertion, k the sender's public point.
func authorizationHeader(assertion, publicKey string) string {
	return "vapid t=" + assertion + ", k=" + publicKey
}
