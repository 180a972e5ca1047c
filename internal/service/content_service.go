package service

import (
	"errors"
	"sort"

	"amassah-lodge-go/internal/model"

	"github.com/samber/lo"
)

// ErrContentNotFound 表示优惠或博客文章不存在。
var ErrContentNotFound = errors.New("content not found")

// ContentService 提供特别优惠和博客文章。
type ContentService interface {
	ListOffers() []model.SpecialOffer
	GetOffer(id int) (model.SpecialOffer, error)
	ListPosts() []model.BlogPost
	GetPost(id int) (model.BlogPost, error)
}

type contentService struct {
	offers []model.SpecialOffer
	posts  []model.BlogPost
}

// NewContentService 创建一个新的 ContentService 实例。博客文章按日期倒序保存。
func NewContentService(offers []model.SpecialOffer, posts []model.BlogPost) ContentService {
	sorted := append([]model.BlogPost(nil), posts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })
	return &contentService{offers: offers, posts: sorted}
}

func (s *contentService) ListOffers() []model.SpecialOffer {
	return s.offers
}

func (s *contentService) GetOffer(id int) (model.SpecialOffer, error) {
	offer, ok := lo.Find(s.offers, func(o model.SpecialOffer) bool { return o.ID == id })
	if !ok {
		return model.SpecialOffer{}, ErrContentNotFound
	}
	return offer, nil
}

func (s *contentService) ListPosts() []model.BlogPost {
	return s.posts
}

func (s *contentService) GetPost(id int) (model.BlogPost, error) {
	post, ok := lo.Find(s.posts, func(p model.BlogPost) bool { return p.ID == id })
	if !ok {
		return model.BlogPost{}, ErrContentNotFound
	}
	return post, nil
}
