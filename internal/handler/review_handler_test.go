package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"amassah-lodge-go/internal/catalog"
	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newReviewRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc := service.NewReviewService(repository.NewMemoryReviewRepository(), func() time.Time {
		return time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	})
	require.NoError(t, svc.Seed(context.Background(), catalog.Reviews()))

	h := NewReviewHandler(svc)
	r := gin.New()
	r.GET("/api/v1/reviews", h.List)
	r.GET("/api/v1/reviews/summary", h.Summary)
	r.POST("/api/v1/reviews", h.Create)
	return r
}

func TestReviewHandler(t *testing.T) {
	t.Run("should create a review dated today and list it first", func(t *testing.T) {
		req := require.New(t)
		r := newReviewRouter(t)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/reviews", CreateReviewRequest{Name: "Leila", Rating: 4, Comment: "Great breakfast."})
		req.Equal(http.StatusCreated, w.Code)
		var created model.Review
		decodeData(t, env, &created)
		req.Equal(model.Date("2026-10-19"), created.Date)

		_, env = doRequest(t, r, http.MethodGet, "/api/v1/reviews", nil)
		var reviews []model.Review
		decodeData(t, env, &reviews)
		req.Len(reviews, len(catalog.Reviews())+1)
		req.Equal("Leila", reviews[0].Name)
	})

	t.Run("should reject out-of-range ratings", func(t *testing.T) {
		r := newReviewRouter(t)
		w, _ := doRequest(t, r, http.MethodPost, "/api/v1/reviews", CreateReviewRequest{Name: "Leila", Rating: 6, Comment: "x"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		w, _ = doRequest(t, r, http.MethodGet, "/api/v1/reviews?rating=9", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should summarise every rating bucket", func(t *testing.T) {
		req := require.New(t)
		r := newReviewRouter(t)
		_, env := doRequest(t, r, http.MethodGet, "/api/v1/reviews/summary", nil)
		var summary model.ReviewSummary
		decodeData(t, env, &summary)
		req.Equal(len(catalog.Reviews()), summary.Total)
		req.Len(summary.Distribution, 5)
		req.Equal(5, summary.Distribution[0].Rating)
	})
}
