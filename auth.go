package tmdb

import (
	"context"
	"sync"
	"time"
)

// authState is the credential material owned by one Client: the cached
// request token and the session id merged into subsequent requests. It is
// only ever mutated through RequestToken and RetrieveSession.
type authState struct {
	mu        sync.Mutex
	refreshMu sync.Mutex
	token     *AuthToken
	sessionID string
}

func (a *authState) currentToken() *AuthToken {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *authState) setToken(token *AuthToken) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
}

func (a *authState) session() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionID
}

func (a *authState) setSession(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessionID = sessionID
}

// RequestToken returns the client's request token, acquiring a fresh one
// from the API only when none is cached or the cached one has expired.
// The cached token is replaced wholesale on refresh; repeated calls inside
// the validity window perform no network call. Refreshes are single
// flight: concurrent callers wait for the one in progress.
func (c *Client) RequestToken(ctx context.Context, options ...RequestOption) (*AuthToken, error) {
	c.auth.refreshMu.Lock()
	defer c.auth.refreshMu.Unlock()

	if token := c.auth.currentToken(); token != nil && !token.expired(time.Now()) {
		return token, nil
	}

	token := &AuthToken{}
	if err := c.Call(ctx, EndpointAuthTokenNew, nil, token, options...); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("expires_at", token.ExpiresAt).
		Msg("acquired request token")

	c.auth.setToken(token)
	return token, nil
}

// RetrieveSession exchanges the client's request token for a session id,
// remembers it, and returns it. The token is refreshed first if needed,
// but the session exchange itself happens on every call; each call yields
// a brand new session.
func (c *Client) RetrieveSession(ctx context.Context, options ...RequestOption) (string, error) {
	token, err := c.RequestToken(ctx, options...)
	if err != nil {
		return "", err
	}

	session := &Session{}
	params := Params{"request_token": token.RequestToken}
	if err := c.Call(ctx, EndpointAuthSessionNew, params, session, options...); err != nil {
		return "", err
	}

	c.auth.setSession(session.SessionID)
	return session.SessionID, nil
}

// RetrieveGuestSession issues a guest session. Guest sessions are returned
// to the caller but not stored; they do not participate in the implicit
// session_id merging.
func (c *Client) RetrieveGuestSession(ctx context.Context, options ...RequestOption) (*GuestSession, error) {
	session := &GuestSession{}
	if err := c.Call(ctx, EndpointAuthGuestSessionNew, nil, session, options...); err != nil {
		return nil, err
	}

	return session, nil
}

// SessionID returns the session id stored by the most recent
// RetrieveSession call, or the empty string when none is set.
func (c *Client) SessionID() string {
	return c.auth.session()
}
