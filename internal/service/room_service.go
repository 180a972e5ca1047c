// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"
	"strings"

	"amassah-lodge-go/internal/model"

	"github.com/samber/lo"
)

var (
	// ErrInvalidFilter 表示价格区间或房型过滤值无法识别。
	ErrInvalidFilter = errors.New("invalid room filter")
	// ErrRoomNotFound 表示客房不存在。
	ErrRoomNotFound = errors.New("room not found")
	// ErrTooManyRooms 表示一次对比的客房超过上限。
	ErrTooManyRooms = errors.New("too many rooms to compare")
	// ErrNoRoomsSelected 表示对比请求中没有客房。
	ErrNoRoomsSelected = errors.New("no rooms selected")
)

// MaxCompareRooms 是一次最多对比的客房数量。
const MaxCompareRooms = 3

// 价格区间过滤值。under* 为严格小于，over300 为大于等于。
const (
	PriceAll      = "all"
	PriceUnder100 = "under100"
	PriceUnder200 = "under200"
	PriceUnder300 = "under300"
	PriceOver300  = "over300"
)

// RoomFilter 是客房列表的过滤条件，空值等同于 all。
type RoomFilter struct {
	PriceRange string
	RoomType   string
}

// RoomService 接口定义了客房目录的查询操作。
type RoomService interface {
	List(filter RoomFilter) ([]model.Room, error)
	Get(id int) (model.Room, error)
	Compare(ids []int) (*model.RoomComparison, error)
	PriceForType(roomType string) (int, bool)
}

type roomService struct {
	rooms []model.Room
}

// NewRoomService 创建一个新的 RoomService 实例。
func NewRoomService(rooms []model.Room) RoomService {
	return &roomService{rooms: rooms}
}

// List 按价格区间和房型过滤客房，保持目录顺序。
func (s *roomService) List(filter RoomFilter) ([]model.Room, error) {
	priceOK, err := priceMatcher(filter.PriceRange)
	if err != nil {
		return nil, err
	}
	roomType := strings.ToLower(strings.TrimSpace(filter.RoomType))
	switch roomType {
	case "", "all", "luxury", "standard", "family":
	default:
		return nil, ErrInvalidFilter
	}

	return lo.Filter(s.rooms, func(r model.Room, _ int) bool {
		if !priceOK(r.Price) {
			return false
		}
		return roomType == "" || roomType == "all" || strings.ToLower(r.Type) == roomType
	}), nil
}

func priceMatcher(priceRange string) (func(price int) bool, error) {
	switch strings.TrimSpace(priceRange) {
	case "", PriceAll:
		return func(int) bool { return true }, nil
	case PriceUnder100:
		return func(p int) bool { return p < 100 }, nil
	case PriceUnder200:
		return func(p int) bool { return p < 200 }, nil
	case PriceUnder300:
		return func(p int) bool { return p < 300 }, nil
	case PriceOver300:
		return func(p int) bool { return p >= 300 }, nil
	default:
		return nil, ErrInvalidFilter
	}
}

// Get 根据 ID 返回客房。
func (s *roomService) Get(id int) (model.Room, error) {
	room, ok := lo.Find(s.rooms, func(r model.Room) bool { return r.ID == id })
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	return room, nil
}

// Compare 按请求顺序返回客房，并列出所有客房设施的并集（按首次出现的顺序）。
func (s *roomService) Compare(ids []int) (*model.RoomComparison, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, ErrNoRoomsSelected
	}
	if len(ids) > MaxCompareRooms {
		return nil, ErrTooManyRooms
	}

	rooms := make([]model.Room, 0, len(ids))
	for _, id := range ids {
		room, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	features := lo.Uniq(lo.FlatMap(rooms, func(r model.Room, _ int) []string { return r.Features }))
	matrix := lo.Map(rooms, func(r model.Room, _ int) []bool {
		return lo.Map(features, func(f string, _ int) bool { return lo.Contains(r.Features, f) })
	})

	return &model.RoomComparison{Rooms: rooms, Features: features, Matrix: matrix}, nil
}

// PriceForType 返回目录中第一间该房型客房的价格。
func (s *roomService) PriceForType(roomType string) (int, bool) {
	room, ok := lo.Find(s.rooms, func(r model.Room) bool { return r.Type == roomType })
	return room.Price, ok
}
