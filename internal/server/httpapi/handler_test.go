package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcruzdev/ipnavigator/internal/logging"
	"github.com/jcruzdev/ipnavigator/internal/server/accounts"
	"github.com/jcruzdev/ipnavigator/internal/server/auth"
	"github.com/jcruzdev/ipnavigator/internal/server/identity"
)

func newTestServer(t *testing.T, codec auth.Codec, verify bool) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := identity.NewMemoryRepository(identity.DefaultSeeds(), bcrypt.MinCost)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", logger, accounts.NewService(repo, codec), codec, verify)
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLogin_Success(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	w := postJSON(t, r, "/api/login", gin.H{"email": "test@email.com", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, int64(1), resp.User.ID)
	require.Equal(t, "test@email.com", resp.User.Email)
	require.Equal(t, "Juan Cruz", resp.User.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	w := postJSON(t, r, "/api/login", gin.H{"email": "test@email.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
}

func TestLogin_UnknownEmail_SameBodyAsWrongPassword(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	wrongPw := postJSON(t, r, "/api/login", gin.H{"email": "test@email.com", "password": "wrong"})
	unknown := postJSON(t, r, "/api/login", gin.H{"email": "nobody@email.com", "password": "password123"})

	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestLogin_MissingFieldsIsUnauthorizedNotBadRequest(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	w := postJSON(t, r, "/api/login", gin.H{})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MalformedJSON(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe_NotRoutedInLegacyMode(t *testing.T) {
	r := newTestServer(t, auth.NewLegacyCodec(), false).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMe_SignedMode(t *testing.T) {
	codec := auth.NewSignedCodec([]byte("k"))
	r := newTestServer(t, codec, true).Router()

	login := postJSON(t, r, "/api/login", gin.H{"email": "test@email.com", "password": "password123"})
	require.Equal(t, http.StatusOK, login.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var user struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "Juan Cruz", user.Name)
}

func TestMe_SignedMode_RejectsBadToken(t *testing.T) {
	codec := auth.NewSignedCodec([]byte("k"))
	r := newTestServer(t, codec, true).Router()

	for _, header := range []string{"", "Bearer ", "Bearer garbage", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}
