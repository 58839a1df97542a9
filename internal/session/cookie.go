package session

import (
	"net/http"

	"github.com/google/uuid"
)

const CookieName = "user_session"

// FromRequest - the session id carried by the request cookie, if any.
func FromRequest(req *http.Request) (string, bool) {
	cookie, err := req.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	if _, err = uuid.Parse(cookie.Value); err != nil {
		return "", false
	}

	return cookie.Value, true
}

// Ensure - returns the request's session id, issuing a new cookie when it has none.
// The second value reports whether the id was just created.
func Ensure(writer http.ResponseWriter, req *http.Request) (string, bool) {
	if id, ok := FromRequest(req); ok {
		return id, false
	}

	id := uuid.NewString()
	http.SetCookie(writer, NewCookie(id))

	return id, true
}

// NewCookie - a browser-session cookie: no Expires or Max-Age, so closing the browser ends the game.
func NewCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
