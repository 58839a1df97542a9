package rest

import (
	"context"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-web/internal/session"
)

type sessionKey struct{}

// withSession - makes sure every request carries a session, issuing the cookie on first visit.
func withSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			id, _ := session.Ensure(writer, req)
			next.ServeHTTP(writer, req.WithContext(context.WithValue(req.Context(), sessionKey{}, id)))
		})
	}
}

func sessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
