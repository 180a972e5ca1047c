package handler

import (
	"fmt"
	"strconv"

	"amassah-lodge-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler 提供特别优惠与博客文章。
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler 创建一个新的 ContentHandler 实例。
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListOffers 返回全部特别优惠。
func (h *ContentHandler) ListOffers(c *gin.Context) {
	respondOK(c, h.contentService.ListOffers())
}

// GetOffer 返回单个特别优惠。
func (h *ContentHandler) GetOffer(c *gin.Context) {
	id, err := contentID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	offer, err := h.contentService.GetOffer(id)
	if err != nil {
		respondError(c, err, "获取优惠失败")
		return
	}
	respondOK(c, offer)
}

// ListPosts 返回博客文章，最新的在前。
func (h *ContentHandler) ListPosts(c *gin.Context) {
	respondOK(c, h.contentService.ListPosts())
}

// GetPost 返回单篇博客文章。
func (h *ContentHandler) GetPost(c *gin.Context) {
	id, err := contentID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	post, err := h.contentService.GetPost(id)
	if err != nil {
		respondError(c, err, "获取文章失败")
		return
	}
	respondOK(c, post)
}

func contentID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", service.ErrContentNotFound, c.Param("id"))
	}
	return id, nil
}
