package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func adminRouter() *ginext.Engine {
	router := ginext.New("test")
	router.GET("/admin", AdminAuth(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"token": AdminToken(c)})
	})
	return router
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing bearer token", body["error"])
}

func TestAdminAuth_MalformedHeader(t *testing.T) {
	router := adminRouter()

	for _, header := range []string{"s3cret", "Basic s3cret", "Bearer ", "Bearer   "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAdminAuth_ValidToken(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "s3cret", body["token"])
}

func sessionRouter() *ginext.Engine {
	router := ginext.New("test")
	router.GET("/", SessionToken("convidado_sessao", time.Hour, false), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"token": Token(c)})
	})
	return router
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "convidado_sessao" {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionToken_IssuesNewToken(t *testing.T) {
	router := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	ck := sessionCookie(t, w)
	_, err := uuid.Parse(ck.Value)
	require.NoError(t, err)
	assert.True(t, ck.HttpOnly)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ck.Value, body["token"])
}

func TestSessionToken_ReusesExistingCookie(t *testing.T) {
	router := sessionRouter()
	token := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "convidado_sessao", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, token, sessionCookie(t, w).Value)
}

func TestSessionToken_ReplacesMalformedCookie(t *testing.T) {
	router := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "convidado_sessao", Value: "not-a-uuid"})
	router.ServeHTTP(w, req)

	ck := sessionCookie(t, w)
	assert.NotEqual(t, "not-a-uuid", ck.Value)
	_, err := uuid.Parse(ck.Value)
	require.NoError(t, err)
}
