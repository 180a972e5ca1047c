package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/log"

	"github.com/samber/lo"
)

var (
	// ErrInvalidReview 表示评论缺少姓名、内容或评分越界。
	ErrInvalidReview = errors.New("invalid review")
	// ErrInvalidRating 表示评分过滤值无法识别。
	ErrInvalidRating = errors.New("invalid rating filter")
)

// NewReview 是住客提交的评论。
type NewReview struct {
	Name    string
	Rating  int
	Comment string
}

// ReviewService 接口定义了住客评论的业务操作。
type ReviewService interface {
	Seed(ctx context.Context, seed []model.Review) error
	List(ctx context.Context, rating string) ([]model.Review, error)
	Summary(ctx context.Context) (*model.ReviewSummary, error)
	Create(ctx context.Context, in NewReview) (*model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	now        func() time.Time
}

// NewReviewService 创建一个新的 ReviewService 实例。
func NewReviewService(reviewRepo repository.ReviewRepository, now func() time.Time) ReviewService {
	if now == nil {
		now = time.Now
	}
	return &reviewService{reviewRepo: reviewRepo, now: now}
}

// Seed 在仓库为空时写入初始评论。
func (s *reviewService) Seed(ctx context.Context, seed []model.Review) error {
	total, err := s.reviewRepo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	for i := range seed {
		if err := s.reviewRepo.Create(ctx, &seed[i]); err != nil {
			return err
		}
	}
	log.Infof("[ReviewService] 已写入 %d 条初始评论", len(seed))
	return nil
}

// List 返回全部评论或指定评分的评论，新评论在前。rating 为空或 "all" 表示不过滤。
func (s *reviewService) List(ctx context.Context, rating string) ([]model.Review, error) {
	rating = strings.TrimSpace(rating)
	if rating == "" || rating == "all" {
		return s.reviewRepo.FindAll(ctx)
	}
	value, err := strconv.Atoi(rating)
	if err != nil || value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}
	return s.reviewRepo.FindByRating(ctx, value)
}

// Summary 统计评论数量、平均分和 5 到 1 分的分布。
func (s *reviewService) Summary(ctx context.Context) (*model.ReviewSummary, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &model.ReviewSummary{Total: len(reviews), Distribution: make([]model.RatingBucket, 0, 5)}
	if len(reviews) > 0 {
		sum := lo.SumBy(reviews, func(r model.Review) int { return r.Rating })
		summary.AverageRating = roundTenth(float64(sum) / float64(len(reviews)))
	}
	for rating := 5; rating >= 1; rating-- {
		count := lo.CountBy(reviews, func(r model.Review) bool { return r.Rating == rating })
		bucket := model.RatingBucket{Rating: rating, Count: count}
		if len(reviews) > 0 {
			bucket.Percentage = roundTenth(float64(count) / float64(len(reviews)) * 100)
		}
		summary.Distribution = append(summary.Distribution, bucket)
	}
	return summary, nil
}

// Create 保存一条新评论，日期为今天，头像随机生成。
func (s *reviewService) Create(ctx context.Context, in NewReview) (*model.Review, error) {
	name := strings.TrimSpace(in.Name)
	comment := strings.TrimSpace(in.Comment)
	if name == "" || comment == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidReview
	}

	review := &model.Review{
		Name:    name,
		Rating:  in.Rating,
		Date:    model.DateOf(s.now()),
		Comment: comment,
		Avatar:  fmt.Sprintf("https://images.unsplash.com/photo-1%d?w=150&h=150&fit=crop&crop=face", rand.IntN(999999999)),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		log.Errorf("[ReviewService] 保存评论失败: %v", err)
		return nil, err
	}
	return review, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
