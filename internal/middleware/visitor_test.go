package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newVisitorRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(VisitorMiddleware())
	r.GET("/", func(c *gin.Context) {
		*seen = VisitorID(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestVisitorMiddleware(t *testing.T) {
	t.Run("should issue a new visitor id when the cookie is missing", func(t *testing.T) {
		req := require.New(t)
		var seen string
		r := newVisitorRouter(&seen)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		req.NoError(uuid.Validate(seen))
		cookies := w.Result().Cookies()
		req.Len(cookies, 1)
		req.Equal(VisitorCookie, cookies[0].Name)
		req.Equal(seen, cookies[0].Value)
		req.True(cookies[0].HttpOnly)
	})

	t.Run("should keep an existing visitor id", func(t *testing.T) {
		req := require.New(t)
		var seen string
		r := newVisitorRouter(&seen)
		id := uuid.NewString()

		httpReq := httptest.NewRequest(http.MethodGet, "/", nil)
		httpReq.AddCookie(&http.Cookie{Name: VisitorCookie, Value: id})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httpReq)

		req.Equal(id, seen)
		req.Empty(w.Result().Cookies())
	})

	t.Run("should replace a malformed visitor id", func(t *testing.T) {
		req := require.New(t)
		var seen string
		r := newVisitorRouter(&seen)

		httpReq := httptest.NewRequest(http.MethodGet, "/", nil)
		httpReq.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "../../etc"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httpReq)

		req.NotEqual("../../etc", seen)
		req.NoError(uuid.Validate(seen))
	})
}
