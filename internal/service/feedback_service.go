package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/log"
	"amassah-lodge-go/pkg/tasks"

	"github.com/samber/lo"
)

// ErrInvalidCategory 表示反馈类别不在可选范围内。
var ErrInvalidCategory = errors.New("invalid feedback category")

// FeedbackCategories 是反馈表单的可选类别。
var FeedbackCategories = []string{"general", "booking", "complaint", "compliment", "suggestion", "event"}

// FeedbackConfirmation 是反馈提交成功后的提示。
const FeedbackConfirmation = "Thank you for your feedback! We will get back to you soon."

// FeedbackRequest 是反馈表单的内容。
type FeedbackRequest struct {
	Name     string
	Email    string
	Subject  string
	Category string
	Message  string
}

// FeedbackService 接口定义了住客反馈的业务操作。
type FeedbackService interface {
	Submit(ctx context.Context, req FeedbackRequest) (*model.Feedback, error)
	List(ctx context.Context) ([]model.Feedback, error)
}

type feedbackService struct {
	inquiryRepo repository.InquiryRepository
	publisher   InquiryPublisher
	now         func() time.Time
}

// NewFeedbackService 创建一个新的 FeedbackService 实例。
func NewFeedbackService(inquiryRepo repository.InquiryRepository, publisher InquiryPublisher, now func() time.Time) FeedbackService {
	if now == nil {
		now = time.Now
	}
	return &feedbackService{inquiryRepo: inquiryRepo, publisher: publisher, now: now}
}

// Submit 校验并保存反馈，然后通知前台。
func (s *feedbackService) Submit(ctx context.Context, req FeedbackRequest) (*model.Feedback, error) {
	required := []struct{ field, value string }{
		{"name", req.Name},
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%s: %w", r.field, ErrMissingField)
		}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !lo.Contains(FeedbackCategories, req.Category) {
		return nil, ErrInvalidCategory
	}

	feedback := &model.Feedback{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Subject:  strings.TrimSpace(req.Subject),
		Category: req.Category,
		Message:  req.Message,
		Status:   model.InquiryStatusPending,
	}
	if err := s.inquiryRepo.CreateFeedback(ctx, feedback); err != nil {
		log.Errorf("[FeedbackService] 保存反馈失败: %v", err)
		return nil, err
	}

	task := tasks.InquiryTask{
		Kind:        tasks.KindFeedback,
		ID:          feedback.ID,
		Name:        feedback.Name,
		Email:       feedback.Email,
		Summary:     fmt.Sprintf("[%s] %s", feedback.Category, feedback.Subject),
		SubmittedAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, task); err != nil {
		log.Warnf("[FeedbackService] 通知前台失败, Key: %s, Error: %v", task.Key(), err)
	}
	return feedback, nil
}

// List 返回所有反馈，新的在前。
func (s *feedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	return s.inquiryRepo.FindFeedback(ctx)
}
