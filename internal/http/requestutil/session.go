package requestutil

import (
	"net/http"
	"time"
)

// SessionCookieName identifies a visitor's excuse session.
const SessionCookieName = "rivalry_sid"

// SessionID returns the session cookie value, or "" when absent.
func SessionID(r *http.Request) string {
	if r == nil {
		return ""
	}
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetSessionCookie persists id for ttl.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, id string, ttl time.Duration) {
	if id == "" {
		return
	}
	http.SetCookie(w, SessionCookie(r, id, ttl))
}

// SessionCookie builds the HttpOnly, SameSite=Lax session cookie for id.
func SessionCookie(r *http.Request, id string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   IsSecure(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// IsSecure reports whether the request arrived over TLS directly or behind a TLS-terminating proxy.
func IsSecure(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
