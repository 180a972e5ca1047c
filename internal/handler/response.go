package handler

import (
	"errors"
	"net/http"

	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/internal/service"

	"github.com/gin-gonic/gin"
)

// badRequestErrors 是可以直接把错误信息返回给调用方的校验错误。
var badRequestErrors = []error{
	service.ErrInvalidFilter,
	service.ErrTooManyRooms,
	service.ErrNoRoomsSelected,
	service.ErrInvalidReview,
	service.ErrInvalidRating,
	service.ErrInvalidEmail,
	service.ErrInvalidPhone,
	service.ErrInvalidDate,
	service.ErrCheckInPast,
	service.ErrCheckOutBeforeCheckIn,
	service.ErrInvalidGuests,
	service.ErrInvalidRoomType,
	service.ErrMissingField,
	service.ErrInvalidCategory,
}

var notFoundErrors = []error{
	service.ErrRoomNotFound,
	service.ErrContentNotFound,
	repository.ErrInquiryNotFound,
}

// statusFor 把业务错误映射为 HTTP 状态码。
func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	if errors.Is(err, service.ErrExportUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError 写出统一的错误响应。未识别的错误不向调用方暴露细节。
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = fallback
	}
	c.JSON(status, gin.H{"code": status, "message": message, "data": nil})
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success", "data": data})
}
