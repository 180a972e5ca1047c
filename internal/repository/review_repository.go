//go:generate go run go.uber.org/mock/mockgen -source=review_repository.go -destination=../mocks/mock_review_repository.go -package=mocks
package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"amassah-lodge-go/internal/model"

	"gorm.io/gorm"
)

// ReviewRepository 定义了住客评论的持久化操作。查询结果按日期倒序排列，同一天内新评论在前。
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindAll(ctx context.Context) ([]model.Review, error)
	FindByRating(ctx context.Context, rating int) ([]model.Review, error)
	Count(ctx context.Context) (int64, error)
}

// reviewRepository 是 ReviewRepository 接口的 GORM 实现。
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建一个新的 ReviewRepository 实例。
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).Order("date desc").Order("id desc").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) FindByRating(ctx context.Context, rating int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).Where("rating = ?", rating).Order("date desc").Order("id desc").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews with rating %d: %w", rating, err)
	}
	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return total, nil
}

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []model.Review
	nextID  uint
}

// NewMemoryReviewRepository 创建进程内的 ReviewRepository，MySQL 未启用时使用。
func NewMemoryReviewRepository() ReviewRepository {
	return &memoryReviewRepository{nextID: 1}
}

func (r *memoryReviewRepository) Create(_ context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == 0 {
		review.ID = r.nextID
	}
	if review.ID >= r.nextID {
		r.nextID = review.ID + 1
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memoryReviewRepository) FindAll(_ context.Context) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return newestFirst(r.reviews), nil
}

func (r *memoryReviewRepository) FindByRating(_ context.Context, rating int) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]model.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if review.Rating == rating {
			matched = append(matched, review)
		}
	}
	return newestFirst(matched), nil
}

func (r *memoryReviewRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.reviews)), nil
}

// newestFirst 返回按日期倒序、ID 倒序排列的副本。
func newestFirst(reviews []model.Review) []model.Review {
	sorted := make([]model.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}
