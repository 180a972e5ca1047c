//go:generate go run go.uber.org/mock/mockgen -source=inquiry_repository.go -destination=../mocks/mock_inquiry_repository.go -package=mocks
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"amassah-lodge-go/internal/model"

	"gorm.io/gorm"
)

// ErrInquiryNotFound 表示预订或反馈记录不存在。
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository 定义了预订咨询与反馈的持久化操作。列表按创建时间倒序返回。
type InquiryRepository interface {
	CreateReservation(ctx context.Context, reservation *model.Reservation) error
	FindReservations(ctx context.Context) ([]model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id uint, status string) error
	CreateFeedback(ctx context.Context, feedback *model.Feedback) error
	FindFeedback(ctx context.Context) ([]model.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, id uint, status string) error
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository 创建一个新的 InquiryRepository 实例。
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) CreateReservation(ctx context.Context, reservation *model.Reservation) error {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *inquiryRepository) FindReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.WithContext(ctx).Order("id desc").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (r *inquiryRepository) UpdateReservationStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Reservation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update reservation %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reservation %d: %w", id, ErrInquiryNotFound)
	}
	return nil
}

func (r *inquiryRepository) CreateFeedback(ctx context.Context, feedback *model.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *inquiryRepository) FindFeedback(ctx context.Context) ([]model.Feedback, error) {
	var feedback []model.Feedback
	if err := r.db.WithContext(ctx).Order("id desc").Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}

func (r *inquiryRepository) UpdateFeedbackStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Feedback{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update feedback %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("feedback %d: %w", id, ErrInquiryNotFound)
	}
	return nil
}

type memoryInquiryRepository struct {
	mu           sync.RWMutex
	reservations []model.Reservation
	feedback     []model.Feedback
}

// NewMemoryInquiryRepository 创建进程内的 InquiryRepository，MySQL 未启用时使用。
func NewMemoryInquiryRepository() InquiryRepository {
	return &memoryInquiryRepository{}
}

func (r *memoryInquiryRepository) CreateReservation(_ context.Context, reservation *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation.ID = uint(len(r.reservations) + 1)
	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = time.Now()
	}
	r.reservations = append(r.reservations, *reservation)
	return nil
}

func (r *memoryInquiryRepository) FindReservations(_ context.Context) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Reservation, 0, len(r.reservations))
	for i := len(r.reservations) - 1; i >= 0; i-- {
		out = append(out, r.reservations[i])
	}
	return out, nil
}

func (r *memoryInquiryRepository) UpdateReservationStatus(_ context.Context, id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == 0 || int(id) > len(r.reservations) {
		return fmt.Errorf("reservation %d: %w", id, ErrInquiryNotFound)
	}
	r.reservations[id-1].Status = status
	return nil
}

func (r *memoryInquiryRepository) CreateFeedback(_ context.Context, feedback *model.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	feedback.ID = uint(len(r.feedback) + 1)
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}
	r.feedback = append(r.feedback, *feedback)
	return nil
}

func (r *memoryInquiryRepository) FindFeedback(_ context.Context) ([]model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Feedback, 0, len(r.feedback))
	for i := len(r.feedback) - 1; i >= 0; i-- {
		out = append(out, r.feedback[i])
	}
	return out, nil
}

func (r *memoryInquiryRepository) UpdateFeedbackStatus(_ context.Context, id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == 0 || int(id) > len(r.feedback) {
		return fmt.Errorf("feedback %d: %w", id, ErrInquiryNotFound)
	}
	r.feedback[id-1].Status = status
	return nil
}
