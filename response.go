package tmdb

import (
	"time"
)

// A Response holds the decoded JSON payload of an endpoint exactly as the
// API returned it. The API embeds its own success and error fields in the
// payload; the client does not interpret them.
type Response map[string]interface{}

// An AuthToken represents the payload of the "authentication/token/new"
// endpoint. The token must be exchanged for a session id before its expiry
// to act on behalf of a user.
type AuthToken struct {
	Success      bool   `json:"success"`
	ExpiresAt    string `json:"expires_at"`
	RequestToken string `json:"request_token"`
}

// tokenExpiryLayout matches expiry strings such as
// "2024-01-04 17:04:39 UTC".
const tokenExpiryLayout = "2006-01-02 15:04:05 MST"

// expired reports whether now is strictly past the token's expiry. Tokens
// whose expiry cannot be parsed count as expired so they get replaced on
// the next acquisition.
func (t *AuthToken) expired(now time.Time) bool {
	expiresAt, err := time.Parse(tokenExpiryLayout, t.ExpiresAt)
	if err != nil {
		return true
	}

	return now.After(expiresAt)
}

// A Session represents the payload of the "authentication/session/new"
// endpoint.
type Session struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// A GuestSession represents the payload of the
// "authentication/guest_session/new" endpoint. Guest sessions allow rating
// content without a full user session and are not remembered by the
// client.
type GuestSession struct {
	Success        bool   `json:"success"`
	GuestSessionID string `json:"guest_session_id"`
	ExpiresAt      string `json:"expires_at"`
}
