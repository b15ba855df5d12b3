package services

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Credentials are the four static OAuth 1.0a secrets issued by Discogs.
type Credentials struct {
	ConsumerKey      string
	ConsumerSecret   string
	OAuthToken       string
	OAuthTokenSecret string
}

// Signer builds the catalog Authorization header at call time so the nonce and timestamp are never stale.
type Signer struct {
	creds     Credentials
	userAgent string
	now       func() time.Time
}

// NewSigner creates a [Signer]. An empty userAgent falls back to "SoundsOfCanada/1.0".
func NewSigner(creds Credentials, userAgent string) *Signer {
	if userAgent == "" {
		userAgent = "SoundsOfCanada/1.0"
	}
	return &Signer{creds: creds, userAgent: userAgent, now: time.Now}
}

// Header returns the PLAINTEXT OAuth header for the current instant.
//
// The nonce is the time in milliseconds and the timestamp the time in seconds.
func (s *Signer) Header() string {
	t := s.now()
	return fmt.Sprintf(
		`OAuth oauth_consumer_key="%s", oauth_nonce="%s", oauth_signature="%s&%s", oauth_signature_method="PLAINTEXT", oauth_timestamp="%s", oauth_token="%s"`,
		s.creds.ConsumerKey,
		strconv.FormatInt(t.UnixMilli(), 10),
		s.creds.ConsumerSecret,
		s.creds.OAuthTokenSecret,
		strconv.FormatInt(t.Unix(), 10),
		s.creds.OAuthToken,
	)
}

// Sign sets the authentication and identification headers on req.
func (s *Signer) Sign(req *http.Request) {
	req.Header.Set("Authorization", s.Header())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", s.userAgent)
}
