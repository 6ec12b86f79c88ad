package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/flash"
)

// carryCookies copies the cookies set on rec onto a new request, as a browser would.
func carryCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestStore(t *testing.T) {
	t.Run("delivers queued messages to the next request", func(t *testing.T) {
		store := flash.NewStore("test-secret")

		rec := httptest.NewRecorder()
		require.NoError(t, store.Add(rec, httptest.NewRequest(http.MethodPost, "/get_ticker", nil), "first", "second"))

		next := httptest.NewRecorder()
		messages := store.Pop(next, carryCookies(rec))
		assert.Equal(t, []string{"first", "second"}, messages)

		cleared := next.Result().Cookies()
		require.Len(t, cleared, 1)
		assert.Equal(t, flash.CookieName, cleared[0].Name)
		assert.Negative(t, cleared[0].MaxAge)
	})

	t.Run("keeps messages already queued by the request", func(t *testing.T) {
		store := flash.NewStore("test-secret")

		first := httptest.NewRecorder()
		require.NoError(t, store.Add(first, httptest.NewRequest(http.MethodGet, "/", nil), "first"))

		second := httptest.NewRecorder()
		require.NoError(t, store.Add(second, carryCookies(first), "second"))

		assert.Equal(t, []string{"first", "second"}, store.Pop(httptest.NewRecorder(), carryCookies(second)))
	})

	t.Run("does not store messages in clear text", func(t *testing.T) {
		store := flash.NewStore("test-secret")
		rec := httptest.NewRecorder()
		require.NoError(t, store.Add(rec, httptest.NewRequest(http.MethodGet, "/", nil), "Please provide a year"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.NotContains(t, cookies[0].Value, "year")
	})

	t.Run("ignores cookies signed with another key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, flash.NewStore("other-secret").Add(rec, httptest.NewRequest(http.MethodGet, "/", nil), "forged"))

		assert.Empty(t, flash.NewStore("test-secret").Pop(httptest.NewRecorder(), carryCookies(rec)))
	})

	t.Run("accepts an encoded fernet key as secret", func(t *testing.T) {
		var k fernet.Key
		require.NoError(t, k.Generate())
		store := flash.NewStore(k.Encode())

		rec := httptest.NewRecorder()
		require.NoError(t, store.Add(rec, httptest.NewRequest(http.MethodGet, "/", nil), "hello"))
		assert.Equal(t, []string{"hello"}, store.Pop(httptest.NewRecorder(), carryCookies(rec)))
	})

	t.Run("returns nothing without a cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		assert.Nil(t, flash.NewStore("test-secret").Pop(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Empty(t, rec.Result().Cookies())
	})
}
