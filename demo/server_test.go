package demo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/cruddals/cruddals"
	"github.com/cruddals/cruddals/logging"
)

func newTestServer(t *testing.T, jwtSecret string) http.Handler {
	t.Helper()
	store := newStore(t)
	ms, err := NewTaskSchema(store, cruddals.SchemaOptions{})
	require.NoError(t, err)
	return NewServer(ServerConfig{
		Schema:    ms.Schema,
		Logger:    logging.ProdLogger,
		JWTSecret: jwtSecret,
	})
}

func postQuery(t *testing.T, server http.Handler, query string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body := strings.NewReader(`{"query": ` + strconvQuote(query) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/graphql", body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func strconvQuote(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + replacer.Replace(s) + `"`
}

func TestServerHealth(t *testing.T) {
	server := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestServerServesGraphQL(t *testing.T) {
	server := newTestServer(t, "")
	rr := postQuery(t, server, `{ listTasks { id } }`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "listTasks")
}

func TestServerJWTAuth(t *testing.T) {
	const secret = "test-secret"
	server := newTestServer(t, secret)

	// No token: anonymous access passes through.
	rr := postQuery(t, server, `{ listTasks { id } }`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// Garbage token is rejected.
	rr = postQuery(t, server, `{ listTasks { id } }`, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Malformed header is rejected.
	rr = postQuery(t, server, `{ listTasks { id } }`, map[string]string{
		"Authorization": "Basic abc",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// A properly signed token passes.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	rr = postQuery(t, server, `{ listTasks { id } }`, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	// A token signed with another key is rejected.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rr = postQuery(t, server, `{ listTasks { id } }`, map[string]string{
		"Authorization": "Bearer " + forged,
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
