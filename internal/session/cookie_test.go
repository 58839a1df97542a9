package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	t.Run("Issues a cookie when there is none", func(t *testing.T) {
		// Given: a request without a session
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		// When: Ensure is called
		id, created := Ensure(rec, req)

		// Then: a new uuid is issued as a cookie
		assert.True(t, created)
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.Equal(t, id, cookies[0].Value)
		assert.Equal(t, "/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.Zero(t, cookies[0].MaxAge)
		assert.True(t, cookies[0].Expires.IsZero())
	})

	t.Run("Keeps an existing session", func(t *testing.T) {
		// Given: a request with a valid session
		existing := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: existing})
		rec := httptest.NewRecorder()

		// When: Ensure is called
		id, created := Ensure(rec, req)

		// Then: the same id is used and no cookie is written
		assert.False(t, created)
		assert.Equal(t, existing, id)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Replaces a malformed session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "game:../../etc"})
		rec := httptest.NewRecorder()

		id, created := Ensure(rec, req)

		assert.True(t, created)
		assert.NotEqual(t, "game:../../etc", id)
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Zero(t, rec.Result().Cookies()[0].MaxAge)
	})
}
