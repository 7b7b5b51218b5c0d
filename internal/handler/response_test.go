package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"VidHub/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSendError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperr.Validation("Title is required"), http.StatusBadRequest, `{"message":"Title is required"}`},
		{"unauthenticated", apperr.Unauthenticated("Invalid email or password"), http.StatusUnauthorized, `{"message":"Invalid email or password"}`},
		{"forbidden", apperr.Forbidden("You do not own this video"), http.StatusForbidden, `{"message":"You do not own this video"}`},
		{"not found", apperr.NotFound("Video not found"), http.StatusNotFound, `{"message":"Video not found"}`},
		{"internal", apperr.Internal(errors.New("disk full")), http.StatusInternalServerError, `{"message":"Server error","error":"disk full"}`},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, `{"message":"Server error","error":"boom"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			sendError(c, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, raw := range []string{"abc", "0", "-1", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := parseID(c, "id", "Invalid video ID")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(c, "id", "Invalid video ID")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)
}
