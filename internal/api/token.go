package api

import (
	"net/http"

	"github.com/quizdrill/backend/internal/id"
)

const tokenCookie = "quiz_token"

// quizToken returns the visitor's opaque token, issuing a new cookie
// when the request carries none. The token is the only client-side
// identity; no account is involved.
func quizToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(tokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	token := id.NewToken()
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
