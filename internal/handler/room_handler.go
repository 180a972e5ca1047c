package handler

import (
	"fmt"
	"strconv"
	"strings"

	"amassah-lodge-go/internal/service"
	"amassah-lodge-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// RoomHandler 处理客房目录、详情与对比。
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler 创建一个新的 RoomHandler 实例。
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// List 按价格区间和房型过滤客房。
func (h *RoomHandler) List(c *gin.Context) {
	filter := service.RoomFilter{
		PriceRange: c.Query("priceRange"),
		RoomType:   c.Query("roomType"),
	}
	rooms, err := h.roomService.List(filter)
	if err != nil {
		log.Warnf("[RoomHandler] 过滤条件无效: %v", err)
		respondError(c, err, "获取客房列表失败")
		return
	}
	respondOK(c, rooms)
}

// Get 返回单个客房。
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: id %q", service.ErrRoomNotFound, c.Param("id")), "")
		return
	}
	room, err := h.roomService.Get(id)
	if err != nil {
		respondError(c, err, "获取客房失败")
		return
	}
	respondOK(c, room)
}

// Compare 并排对比至多三个客房，ids 以逗号分隔。
func (h *RoomHandler) Compare(c *gin.Context) {
	ids, err := parseIDs(c.Query("ids"))
	if err != nil {
		log.Warnf("[RoomHandler] 对比参数无效: %v", err)
		respondError(c, err, "")
		return
	}
	comparison, err := h.roomService.Compare(ids)
	if err != nil {
		log.Warnf("[RoomHandler] 客房对比失败, ids: %v, error: %v", ids, err)
		respondError(c, err, "客房对比失败")
		return
	}
	respondOK(c, comparison)
}

func parseIDs(raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", service.ErrInvalidFilter, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
