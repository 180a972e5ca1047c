package service

import (
	"context"
	"errors"
	"testing"

	"amassah-lodge-go/internal/catalog"
	"amassah-lodge-go/internal/mocks"
	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/tasks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validReservation() ReservationRequest {
	return ReservationRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+1 (555) 123-4567",
		CheckIn:  "2026-10-20",
		CheckOut: "2026-10-23",
		Guests:   "2",
		RoomType: "Standard",
	}
}

func TestReservationService_Quote(t *testing.T) {
	svc := NewReservationService(NewRoomService(catalog.Rooms()), repository.NewMemoryInquiryRepository(), nil, fixedNow)

	t.Run("should price nights with the first room of the type", func(t *testing.T) {
		req := require.New(t)
		q, err := svc.Quote("2026-10-20", "2026-10-23", "Standard")
		req.NoError(err)
		req.Equal(model.Quote{Nights: 3, EstimatedTotal: 597}, q)

		q, err = svc.Quote("2026-10-20", "2026-10-22", "Luxury")
		req.NoError(err)
		req.Equal(598, q.EstimatedTotal)
	})

	t.Run("should return zero nights when check-out is not after check-in", func(t *testing.T) {
		req := require.New(t)
		q, err := svc.Quote("2026-10-23", "2026-10-20", "Family")
		req.NoError(err)
		req.Zero(q.Nights)
		req.Zero(q.EstimatedTotal)
	})

	t.Run("should return a zero total for an unknown room type", func(t *testing.T) {
		req := require.New(t)
		q, err := svc.Quote("2026-10-20", "2026-10-21", "Castle")
		req.NoError(err)
		req.Equal(1, q.Nights)
		req.Zero(q.EstimatedTotal)
	})

	t.Run("should return zero nights while a date is still missing", func(t *testing.T) {
		req := require.New(t)
		for _, dates := range [][2]string{{"", "2026-10-21"}, {"2026-10-20", "  "}, {"", ""}} {
			q, err := svc.Quote(dates[0], dates[1], "Standard")
			req.NoError(err)
			req.Equal(model.Quote{}, q)
		}
	})

	t.Run("should reject unparseable dates", func(t *testing.T) {
		_, err := svc.Quote("20/10/2026", "2026-10-21", "Family")
		require.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestReservationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("should store a pending reservation and publish it", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		publisher := mocks.NewMockInquiryPublisher(ctrl)
		repo := repository.NewMemoryInquiryRepository()
		svc := NewReservationService(NewRoomService(catalog.Rooms()), repo, publisher, fixedNow)

		publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task tasks.InquiryTask) error {
				req.Equal(tasks.KindReservation, task.Kind)
				req.Equal(uint(1), task.ID)
				req.Equal("ada@example.com", task.Email)
				return nil
			})

		reservation, err := svc.Submit(ctx, validReservation())
		req.NoError(err)
		req.Equal(model.InquiryStatusPending, reservation.Status)
		req.Equal(3, reservation.Nights)
		req.Equal(597, reservation.EstimatedTotal)

		stored, err := svc.List(ctx)
		req.NoError(err)
		req.Len(stored, 1)
	})

	t.Run("should succeed even when publishing fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		publisher := mocks.NewMockInquiryPublisher(ctrl)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
		svc := NewReservationService(NewRoomService(catalog.Rooms()), repository.NewMemoryInquiryRepository(), publisher, fixedNow)

		_, err := svc.Submit(ctx, validReservation())
		req.NoError(err)
	})

	t.Run("should reject invalid forms without storing them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockInquiryRepository(ctrl)
		publisher := mocks.NewMockInquiryPublisher(ctrl)
		repo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
		svc := NewReservationService(NewRoomService(catalog.Rooms()), repo, publisher, fixedNow)

		cases := []struct {
			name   string
			mutate func(r *ReservationRequest)
			want   error
		}{
			{"missing name", func(r *ReservationRequest) { r.Name = " " }, ErrMissingField},
			{"bad email", func(r *ReservationRequest) { r.Email = "ada@example" }, ErrInvalidEmail},
			{"short phone", func(r *ReservationRequest) { r.Phone = "555-1234" }, ErrInvalidPhone},
			{"letters in phone", func(r *ReservationRequest) { r.Phone = "555-123-CALL" }, ErrInvalidPhone},
			{"guests", func(r *ReservationRequest) { r.Guests = "6" }, ErrInvalidGuests},
			{"room type", func(r *ReservationRequest) { r.RoomType = "standard" }, ErrInvalidRoomType},
			{"past check-in", func(r *ReservationRequest) { r.CheckIn = "2026-10-18" }, ErrCheckInPast},
			{"same day check-out", func(r *ReservationRequest) { r.CheckOut = r.CheckIn }, ErrCheckOutBeforeCheckIn},
			{"bad date", func(r *ReservationRequest) { r.CheckOut = "soon" }, ErrInvalidDate},
		}
		for _, tc := range cases {
			t.Run("should reject "+tc.name, func(t *testing.T) {
				r := validReservation()
				tc.mutate(&r)
				_, err := svc.Submit(ctx, r)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("should accept a check-in today", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		publisher := mocks.NewMockInquiryPublisher(ctrl)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		svc := NewReservationService(NewRoomService(catalog.Rooms()), repository.NewMemoryInquiryRepository(), publisher, fixedNow)

		r := validReservation()
		r.CheckIn = "2026-10-19"
		_, err := svc.Submit(ctx, r)
		req.NoError(err)
	})
}

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and publish feedback", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		publisher := mocks.NewMockInquiryPublisher(ctrl)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		svc := NewFeedbackService(repository.NewMemoryInquiryRepository(), publisher, fixedNow)

		fb, err := svc.Submit(ctx, FeedbackRequest{Name: "Ada", Email: "ada@example.com", Subject: "Spa", Category: "compliment", Message: "Wonderful"})
		req.NoError(err)
		req.Equal(uint(1), fb.ID)
		req.Equal(model.InquiryStatusPending, fb.Status)
	})

	t.Run("should reject invalid feedback", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		publisher := mocks.NewMockInquiryPublisher(ctrl)
		svc := NewFeedbackService(repository.NewMemoryInquiryRepository(), publisher, fixedNow)

		_, err := svc.Submit(ctx, FeedbackRequest{Name: "Ada", Email: "ada@example.com", Subject: "Spa", Category: "praise", Message: "x"})
		req.ErrorIs(err, ErrInvalidCategory)
		_, err = svc.Submit(ctx, FeedbackRequest{Name: "Ada", Email: "nope", Subject: "Spa", Category: "general", Message: "x"})
		req.ErrorIs(err, ErrInvalidEmail)
		_, err = svc.Submit(ctx, FeedbackRequest{Name: "Ada", Email: "ada@example.com", Subject: "", Category: "general", Message: "x"})
		req.ErrorIs(err, ErrMissingField)
	})
}
