package handler

import (
	"net/http"

	"amassah-lodge-go/internal/service"
	"amassah-lodge-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// ReviewHandler 处理住客评论。
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler 创建一个新的 ReviewHandler 实例。
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest 定义了提交评论的请求体结构。
type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// List 返回评论，rating 为 all 或 1..5。
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context(), c.DefaultQuery("rating", "all"))
	if err != nil {
		log.Warnf("[ReviewHandler] 获取评论失败: %v", err)
		respondError(c, err, "获取评论失败")
		return
	}
	respondOK(c, reviews)
}

// Summary 返回评分分布与平均分。
func (h *ReviewHandler) Summary(c *gin.Context) {
	summary, err := h.reviewService.Summary(c.Request.Context())
	if err != nil {
		log.Errorf("[ReviewHandler] 统计评论失败: %v", err)
		respondError(c, err, "统计评论失败")
		return
	}
	respondOK(c, summary)
}

// Create 保存一条新评论。
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateReview: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "无效的请求负载：姓名、评分(1-5)和评论不能为空", "data": nil})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), service.NewReview{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		log.Warnf("[ReviewHandler] 保存评论失败: %v", err)
		respondError(c, err, "保存评论失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "success", "data": review})
}
