package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/log"
	"amassah-lodge-go/pkg/tasks"

	"github.com/samber/lo"
)

var (
	// ErrInvalidEmail 表示邮箱格式错误。
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidPhone 表示电话号码格式错误。
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidDate 表示日期无法解析。
	ErrInvalidDate = errors.New("invalid date")
	// ErrCheckInPast 表示入住日期早于今天。
	ErrCheckInPast = errors.New("check-in date cannot be in the past")
	// ErrCheckOutBeforeCheckIn 表示退房日期不晚于入住日期。
	ErrCheckOutBeforeCheckIn = errors.New("check-out date must be after check-in date")
	// ErrInvalidGuests 表示入住人数不在可选范围内。
	ErrInvalidGuests = errors.New("invalid number of guests")
	// ErrInvalidRoomType 表示房型不在可选范围内。
	ErrInvalidRoomType = errors.New("invalid room type")
	// ErrMissingField 表示必填字段为空。
	ErrMissingField = errors.New("required field is missing")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

// 预订表单中的可选值。
var (
	GuestOptions    = []string{"1", "2", "3", "4", "5+"}
	RoomTypeOptions = []string{"Standard", "Luxury", "Family"}
)

// ReservationConfirmation 是预订提交成功后的提示。
const ReservationConfirmation = "Reservation submitted successfully! We will contact you shortly to confirm your booking."

// ReservationRequest 是预订表单的内容。
type ReservationRequest struct {
	Name            string
	Email           string
	Phone           string
	CheckIn         string
	CheckOut        string
	Guests          string
	RoomType        string
	SpecialRequests string
}

// ReservationService 接口定义了预订咨询的业务操作。
type ReservationService interface {
	Quote(checkIn, checkOut, roomType string) (model.Quote, error)
	Submit(ctx context.Context, req ReservationRequest) (*model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
}

type reservationService struct {
	rooms       RoomService
	inquiryRepo repository.InquiryRepository
	publisher   InquiryPublisher
	now         func() time.Time
}

// NewReservationService 创建一个新的 ReservationService 实例。
func NewReservationService(rooms RoomService, inquiryRepo repository.InquiryRepository, publisher InquiryPublisher, now func() time.Time) ReservationService {
	if now == nil {
		now = time.Now
	}
	return &reservationService{rooms: rooms, inquiryRepo: inquiryRepo, publisher: publisher, now: now}
}

// Quote 估算入住晚数和总价。日期不完整或退房不晚于入住时晚数为 0；日期格式错误返回 ErrInvalidDate。
func (s *reservationService) Quote(checkIn, checkOut, roomType string) (model.Quote, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return model.Quote{}, nil
	}
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return model.Quote{}, err
	}
	return s.quote(in, out, roomType), nil
}

func (s *reservationService) quote(in, out time.Time, roomType string) model.Quote {
	nights := 0
	if diff := out.Sub(in); diff > 0 {
		nights = int(math.Ceil(diff.Hours() / 24))
	}
	price, _ := s.rooms.PriceForType(roomType)
	return model.Quote{Nights: nights, EstimatedTotal: nights * price}
}

// Submit 校验并保存预订咨询，然后通知前台。通知失败不影响提交结果。
func (s *reservationService) Submit(ctx context.Context, req ReservationRequest) (*model.Reservation, error) {
	in, out, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	q := s.quote(in, out, req.RoomType)
	reservation := &model.Reservation{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		CheckIn:         model.DateOf(in),
		CheckOut:        model.DateOf(out),
		Guests:          req.Guests,
		RoomType:        req.RoomType,
		SpecialRequests: req.SpecialRequests,
		Nights:          q.Nights,
		EstimatedTotal:  q.EstimatedTotal,
		Status:          model.InquiryStatusPending,
	}
	if err := s.inquiryRepo.CreateReservation(ctx, reservation); err != nil {
		log.Errorf("[ReservationService] 保存预订失败: %v", err)
		return nil, err
	}

	task := tasks.InquiryTask{
		Kind:        tasks.KindReservation,
		ID:          reservation.ID,
		Name:        reservation.Name,
		Email:       reservation.Email,
		Summary:     fmt.Sprintf("%s room, %s to %s, %s guest(s), est. $%d", reservation.RoomType, reservation.CheckIn, reservation.CheckOut, reservation.Guests, reservation.EstimatedTotal),
		SubmittedAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, task); err != nil {
		log.Warnf("[ReservationService] 通知前台失败, Key: %s, Error: %v", task.Key(), err)
	}
	return reservation, nil
}

// List 返回所有预订咨询，新的在前。
func (s *reservationService) List(ctx context.Context) ([]model.Reservation, error) {
	return s.inquiryRepo.FindReservations(ctx)
}

func (s *reservationService) validate(req ReservationRequest) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.Name) == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("name: %w", ErrMissingField)
	}
	if !emailPattern.MatchString(req.Email) {
		return time.Time{}, time.Time{}, ErrInvalidEmail
	}
	if !phonePattern.MatchString(req.Phone) {
		return time.Time{}, time.Time{}, ErrInvalidPhone
	}
	if !lo.Contains(GuestOptions, req.Guests) {
		return time.Time{}, time.Time{}, ErrInvalidGuests
	}
	if !lo.Contains(RoomTypeOptions, req.RoomType) {
		return time.Time{}, time.Time{}, ErrInvalidRoomType
	}

	in, out, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(today) {
		return time.Time{}, time.Time{}, ErrCheckInPast
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrCheckOutBeforeCheckIn
	}
	return in, out, nil
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := model.ParseDate(strings.TrimSpace(checkIn))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("checkIn: %w", ErrInvalidDate)
	}
	out, err := model.ParseDate(strings.TrimSpace(checkOut))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("checkOut: %w", ErrInvalidDate)
	}
	return in, out, nil
}
