package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"VidHub/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw, func(c *gin.Context) {
		id, ok := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
	})
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(AuthMiddleware("secret"))
	good, err := token.Sign("secret", 7, "JohnDoe", time.Hour)
	require.NoError(t, err)
	forged, err := token.Sign("other", 7, "JohnDoe", time.Hour)
	require.NoError(t, err)

	w := do(r, "Bearer "+good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"ok":true}`, w.Body.String())

	for _, header := range []string{"", "Bearer", "Token " + good, "Bearer " + forged, "Bearer garbage"} {
		w := do(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), `"message"`)
	}
}

func TestOptionalAuth(t *testing.T) {
	r := newEngine(OptionalAuth("secret"))
	good, err := token.Sign("secret", 7, "JohnDoe", time.Hour)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":7,"ok":true}`, do(r, "Bearer "+good).Body.String())

	w := do(r, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"ok":false}`, w.Body.String())
}
