package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Oppro-net-Development/ManagerX/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(cfg))
	router.POST("/probe", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.JSON(http.StatusOK, gin.H{
			"authType": c.GetString("authType"),
			"token":    c.GetString("token"),
			"body":     string(body),
		})
	})
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"authType": c.GetString("authType"),
			"token":    c.GetString("token"),
		})
	})
	return router
}

func probe(router *gin.Engine, method, authHeader, body string) (*httptest.ResponseRecorder, map[string]string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/probe", reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	router := newAuthRouter(&config.Config{InternalAPIKey: "bot-key"})

	w, out := probe(router, http.MethodGet, "Bearer user-token", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", out["authType"])
	assert.Equal(t, "user-token", out["token"])
}

func TestAuthMiddlewareBotKey(t *testing.T) {
	router := newAuthRouter(&config.Config{InternalAPIKey: "bot-key"})

	w, out := probe(router, http.MethodGet, "Bot bot-key", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bot", out["authType"])
	assert.Empty(t, out["token"])
}

func TestAuthMiddlewareInvalidBotKey(t *testing.T) {
	router := newAuthRouter(&config.Config{InternalAPIKey: "bot-key"})

	w, _ := probe(router, http.MethodGet, "Bot wrong-key", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBodyTokenFallback(t *testing.T) {
	router := newAuthRouter(&config.Config{InternalAPIKey: "bot-key"})

	body := `{"token":"legacy-token","min_xp":5}`
	w, out := probe(router, http.MethodPost, "", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", out["authType"])
	assert.Equal(t, "legacy-token", out["token"])
	// the body is still readable by the handler after the peek
	assert.Equal(t, body, out["body"])
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newAuthRouter(&config.Config{InternalAPIKey: "bot-key"})

	w, _ := probe(router, http.MethodGet, "", "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "missing Authorization header", resp["detail"])
}

func TestAuthMiddlewareEmptyBearerFallsThrough(t *testing.T) {
	router := newAuthRouter(&config.Config{InternalAPIKey: "bot-key"})

	w, _ := probe(router, http.MethodGet, "Bearer ", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPeekBodyTokenIgnoresInvalidJSON(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not json")))

	assert.Empty(t, peekBodyToken(c))
}
