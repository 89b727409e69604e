package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	csrfSessionKey = "csrf_token"
	// CSRFHeader carries the token in both directions
	CSRFHeader = "X-CSRF-Token"
)

// CSRFMiddleware provides CSRF protection functionality
type CSRFMiddleware struct {
	store       sessions.Store
	sessionName string
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(store sessions.Store, sessionName string) *CSRFMiddleware {
	return &CSRFMiddleware{
		store:       store,
		sessionName: sessionName,
	}
}

// Protect makes sure the session has a token, echoes it in the X-CSRF-Token
// response header and rejects state-changing requests that do not send it back
func (m *CSRFMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, m.sessionName)
		if err != nil {
			log.Printf("failed to get session for CSRF token: %v", err)
			WriteAlert(w, http.StatusInternalServerError, "Session error. Please refresh the page and try again.")
			return
		}

		sessionToken, ok := session.Values[csrfSessionKey].(string)
		if !ok || sessionToken == "" {
			sessionToken = generateCSRFToken()
			session.Values[csrfSessionKey] = sessionToken
			if err := session.Save(r, w); err != nil {
				log.Printf("failed to save CSRF token: %v", err)
			}
		}
		w.Header().Set(CSRFHeader, sessionToken)

		// Skip CSRF check for safe methods
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		requestToken := r.Header.Get(CSRFHeader)
		if subtle.ConstantTimeCompare([]byte(requestToken), []byte(sessionToken)) != 1 {
			WriteAlert(w, http.StatusForbidden, "Security token mismatch. Please refresh the page and try again.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func generateCSRFToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
