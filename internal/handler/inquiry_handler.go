package handler

import (
	"net/http"

	"amassah-lodge-go/internal/service"
	"amassah-lodge-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// InquiryHandler 处理预订咨询和住客反馈两类表单。
type InquiryHandler struct {
	reservationService service.ReservationService
	feedbackService    service.FeedbackService
}

// NewInquiryHandler 创建一个新的 InquiryHandler 实例。
func NewInquiryHandler(reservationService service.ReservationService, feedbackService service.FeedbackService) *InquiryHandler {
	return &InquiryHandler{
		reservationService: reservationService,
		feedbackService:    feedbackService,
	}
}

// ReservationRequest 定义了预订表单的请求体结构。字段级校验由服务层完成，以便返回具体的错误信息。
type ReservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          string `json:"guests"`
	RoomType        string `json:"roomType"`
	SpecialRequests string `json:"specialRequests"`
}

// FeedbackRequest 定义了反馈表单的请求体结构。
type FeedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Quote 根据入住日期和房型估算价格。
func (h *InquiryHandler) Quote(c *gin.Context) {
	quote, err := h.reservationService.Quote(c.Query("checkIn"), c.Query("checkOut"), c.Query("roomType"))
	if err != nil {
		respondError(c, err, "估价失败")
		return
	}
	respondOK(c, quote)
}

// SubmitReservation 保存一次预订咨询。
func (h *InquiryHandler) SubmitReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SubmitReservation: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "无效的请求负载", "data": nil})
		return
	}

	reservation, err := h.reservationService.Submit(c.Request.Context(), service.ReservationRequest(req))
	if err != nil {
		log.Warnf("[InquiryHandler] 预订提交失败: %v", err)
		respondError(c, err, "预订提交失败，请稍后重试")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": service.ReservationConfirmation, "data": reservation})
}

// SubmitFeedback 保存一条住客反馈。
func (h *InquiryHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SubmitFeedback: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "无效的请求负载", "data": nil})
		return
	}

	feedback, err := h.feedbackService.Submit(c.Request.Context(), service.FeedbackRequest(req))
	if err != nil {
		log.Warnf("[InquiryHandler] 反馈提交失败: %v", err)
		respondError(c, err, "反馈提交失败，请稍后重试")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": service.FeedbackConfirmation, "data": feedback})
}

// ListReservations 返回全部预订咨询，供管理员查看。
func (h *InquiryHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		log.Errorf("[InquiryHandler] 获取预订列表失败: %v", err)
		respondError(c, err, "获取预订列表失败")
		return
	}
	respondOK(c, reservations)
}

// ListFeedback 返回全部住客反馈，供管理员查看。
func (h *InquiryHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		log.Errorf("[InquiryHandler] 获取反馈列表失败: %v", err)
		respondError(c, err, "获取反馈列表失败")
		return
	}
	respondOK(c, feedback)
}
