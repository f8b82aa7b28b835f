package service_test

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"testing"
	"time"

	"stay/config"
	otelMocks "stay/infras/otel/mocks"
	bookingMocks "stay/internal/domains/booking/mocks"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	"stay/internal/domains/booking/service"
	invModel "stay/internal/domains/inventory/model"
	invMocks "stay/internal/domains/inventory/mocks"
	paymentMocks "stay/internal/domains/payment/mocks"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	hotelID    = "9d57b3e4-0be0-4a82-b6a2-8bfaf41470ae"
	roomTypeID = "7b0bd6ac-3707-4358-a62a-4c91b0105dcf"
	roomID     = "0d4fca80-0cbd-4b82-9a12-b9e3cbb1a886"
	guestID    = "5f3b7c39-98f4-4f8b-9c0e-1f4bb3f7b6a1"
	adminID    = "b2c0a5ea-3a4e-4f37-9f34-2f59a2f93b77"
)

// missCache always misses and swallows writes, so the fire-and-forget cache
// goroutines never race the mock controller.
type missCache struct{}

func (missCache) Save(context.Context, string, any, int) error { return nil }
func (missCache) Get(context.Context, string, any) error       { return cache.Nil }
func (missCache) Delete(context.Context, string) error         { return nil }
func (missCache) Clear(context.Context, string) error          { return nil }

// noopPublisher records nothing; event delivery is asserted separately where
// it matters.
type noopPublisher struct{}

func (noopPublisher) BookingCreated(context.Context, model.Booking) error          { return nil }
func (noopPublisher) BookingStatusChanged(context.Context, string, string, string) error {
	return nil
}
func (noopPublisher) BookingCancelled(context.Context, string, string) error { return nil }

type deps struct {
	repo      *bookingMocks.MockBooking
	inventory *invMocks.MockInventoryService
	payments  *paymentMocks.MockPayment
}

func newService(t *testing.T) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:      bookingMocks.NewMockBooking(ctrl),
		inventory: invMocks.NewMockInventoryService(ctrl),
		payments:  paymentMocks.NewMockPayment(ctrl),
	}

	svc := service.New(d.repo, d.inventory, d.payments, noopPublisher{}, config.Get(), missCache{}, otelMocks.NewOtel())

	return svc, d
}

func guestContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, guestID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleGuest)

	return ctx
}

func adminContext(hotel string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, adminID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleHotelAdmin)
	ctx = context.WithValue(ctx, constant.ContextKeyHotelID, hotel)

	return ctx
}

func TestCreateBooking(t *testing.T) {
	baseReq := dto.CreateBookingRequest{
		HotelID:        hotelID,
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-03",
		LineItemIDs:    []string{roomTypeID},
		NumberOfGuests: 2,
	}

	rate := invModel.RoomRate{RoomID: roomID, HotelID: hotelID, RoomTypeID: roomTypeID, RoomNumber: "101"}

	t.Run("two nights at tariff price 100 totals 200 pending payment", func(t *testing.T) {
		svc, d := newService(t)

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomTypeID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{ID: roomID, HotelID: hotelID, RoomTypeID: roomTypeID}, nil)
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), roomID, gomock.Any()).
			Return(rate, invModel.PriceQuote{Price: 100, TariffID: sql.NullString{String: "tariff-1", Valid: true}}, nil)
		d.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				return booking, nil
			})

		res, err := svc.Create(guestContext(), baseReq)

		require.NoError(t, err)
		assert.Equal(t, model.StatusPendingPayment, res.Status)
		assert.InDelta(t, 200.0, res.TotalAmount, 0.001)
		assert.InDelta(t, 200.0, res.FinalAmount, 0.001)
		assert.Zero(t, res.DiscountAmount)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, roomID, res.Rooms[0].RoomID)
		assert.Equal(t, 2, res.Rooms[0].NumberOfNights)
		assert.InDelta(t, 100.0, res.Rooms[0].PricePerNight, 0.001)
		assert.InDelta(t, 200.0, res.Rooms[0].TotalPrice, 0.001)
		require.NotNil(t, res.Rooms[0].TariffID)
		assert.Equal(t, "tariff-1", *res.Rooms[0].TariffID)
	})

	t.Run("final amount equals sum of line totals minus discount", func(t *testing.T) {
		svc, d := newService(t)

		secondRoomID := "e7f1a9c2-4b7d-4f6e-a2d3-91c8f0b2d6aa"

		req := baseReq
		req.LineItemIDs = []string{roomTypeID, roomTypeID}

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomTypeID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{ID: roomID, HotelID: hotelID}, nil)
		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomTypeID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{ID: secondRoomID, HotelID: hotelID}, nil)
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), roomID, gomock.Any()).
			Return(rate, invModel.PriceQuote{Price: 100}, nil)
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), secondRoomID, gomock.Any()).
			Return(invModel.RoomRate{RoomID: secondRoomID, HotelID: hotelID}, invModel.PriceQuote{Price: 150}, nil)
		d.repo.EXPECT().
			Create(gomock.Any(), gomock.Cond(func(x any) bool {
				booking, ok := x.(model.Booking)
				if !ok {
					return false
				}
				var sum float64
				for _, room := range booking.Rooms {
					sum += room.TotalPrice
				}
				return booking.FinalAmount == sum-booking.DiscountAmount
			})).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				return booking, nil
			})

		res, err := svc.Create(guestContext(), req)

		require.NoError(t, err)
		assert.InDelta(t, 500.0, res.TotalAmount, 0.001)
		assert.InDelta(t, 500.0, res.FinalAmount, 0.001)
	})

	t.Run("checkout before checkin fails before touching the store", func(t *testing.T) {
		svc, _ := newService(t)

		req := baseReq
		req.CheckIn = "2025-06-03"
		req.CheckOut = "2025-06-01"

		_, err := svc.Create(guestContext(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("fully booked room type fails with no availability", func(t *testing.T) {
		svc, d := newService(t)

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomTypeID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{}, failure.Conflictf("no available room of type %s for the requested dates", roomTypeID))

		_, err := svc.Create(guestContext(), baseReq)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("concurrent creates for the same room admit exactly one", func(t *testing.T) {
		svc, d := newService(t)

		req := baseReq
		req.LineItemIDs = []string{roomID}

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{}, failure.NotFound("room_type")).
			Times(2)
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), roomID, gomock.Any()).
			Return(rate, invModel.PriceQuote{Price: 100}, nil).
			Times(2)

		var admitted sync.Once

		d.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				won := false
				admitted.Do(func() { won = true })
				if won {
					return booking, nil
				}

				return model.Booking{}, failure.Conflictf("room %s is already booked for the selected dates", roomID)
			}).
			Times(2)

		results := make(chan error, 2)

		for i := 0; i < 2; i++ {
			go func() {
				_, err := svc.Create(guestContext(), req)
				results <- err
			}()
		}

		errs := []error{<-results, <-results}

		successes, conflicts := 0, 0

		for _, err := range errs {
			if err == nil {
				successes++

				continue
			}

			if failure.GetCode(err) == http.StatusConflict {
				conflicts++
			}
		}

		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)
	})

	t.Run("concrete room outside the hotel is not found", func(t *testing.T) {
		svc, d := newService(t)

		req := baseReq
		req.LineItemIDs = []string{roomID}

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{}, failure.NotFound("room_type"))
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), roomID, gomock.Any()).
			Return(invModel.RoomRate{RoomID: roomID, HotelID: "another-hotel"}, invModel.PriceQuote{Price: 100}, nil)

		_, err := svc.Create(guestContext(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("duplicate concrete room ids are rejected", func(t *testing.T) {
		svc, d := newService(t)

		req := baseReq
		req.LineItemIDs = []string{roomID, roomID}

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{}, failure.NotFound("room_type")).
			Times(2)

		_, err := svc.Create(guestContext(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("staff create is attributed to the named guest", func(t *testing.T) {
		svc, d := newService(t)

		req := baseReq
		req.GuestID = guestID

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomTypeID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{ID: roomID, HotelID: hotelID, RoomTypeID: roomTypeID}, nil)
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), roomID, gomock.Any()).
			Return(rate, invModel.PriceQuote{Price: 100}, nil)
		d.repo.EXPECT().
			Create(gomock.Any(), gomock.Cond(func(x any) bool {
				booking, ok := x.(model.Booking)
				return ok && booking.GuestID == guestID && booking.CreatedBy == adminID
			})).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				return booking, nil
			})

		res, err := svc.Create(adminContext(hotelID), req)

		require.NoError(t, err)
		assert.Equal(t, guestID, res.GuestID)
	})

	t.Run("staff create without a guest fails before touching the store", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(adminContext(hotelID), baseReq)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("guest create ignores a supplied guest id", func(t *testing.T) {
		svc, d := newService(t)

		req := baseReq
		req.GuestID = adminID

		d.inventory.EXPECT().
			ResolveRoom(gomock.Any(), roomTypeID, hotelID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invModel.Room{ID: roomID, HotelID: hotelID, RoomTypeID: roomTypeID}, nil)
		d.inventory.EXPECT().
			PriceFor(gomock.Any(), roomID, gomock.Any()).
			Return(rate, invModel.PriceQuote{Price: 100}, nil)
		d.repo.EXPECT().
			Create(gomock.Any(), gomock.Cond(func(x any) bool {
				booking, ok := x.(model.Booking)
				return ok && booking.GuestID == guestID
			})).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				return booking, nil
			})

		res, err := svc.Create(guestContext(), req)

		require.NoError(t, err)
		assert.Equal(t, guestID, res.GuestID)
	})

	t.Run("unauthenticated caller is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(context.Background(), baseReq)

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	bookingID := "1d2a3f40-5b6c-4d7e-8f90-a1b2c3d4e5f6"

	stored := model.Booking{
		ID:      bookingID,
		GuestID: guestID,
		HotelID: hotelID,
		Status:  model.StatusConfirmed,
	}

	t.Run("applies status and writes audit history", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(stored, nil)
		d.repo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), model.StatusCheckedIn, gomock.Cond(func(x any) bool {
				history, ok := x.(model.StatusHistory)
				return ok && history.BookingID == bookingID &&
					history.OldStatus == model.StatusConfirmed &&
					history.NewStatus == model.StatusCheckedIn &&
					history.ChangedBy.Valid && history.ChangedBy.String == adminID
			})).
			Return(nil)

		err := svc.UpdateStatus(adminContext(hotelID), bookingID, dto.UpdateStatusRequest{Status: model.StatusCheckedIn})

		require.NoError(t, err)
	})

	t.Run("status outside the closed set is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.UpdateStatus(adminContext(hotelID), bookingID, dto.UpdateStatusRequest{Status: "teleported"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(model.Booking{}, nil)

		err := svc.UpdateStatus(adminContext(hotelID), bookingID, dto.UpdateStatusRequest{Status: model.StatusConfirmed})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("hotel admin cannot touch another hotel's booking", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(stored, nil)

		err := svc.UpdateStatus(adminContext("other-hotel"), bookingID, dto.UpdateStatusRequest{Status: model.StatusConfirmed})

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestCancelBooking(t *testing.T) {
	bookingID := "1d2a3f40-5b6c-4d7e-8f90-a1b2c3d4e5f6"

	stored := model.Booking{
		ID:      bookingID,
		GuestID: guestID,
		HotelID: hotelID,
		Status:  model.StatusConfirmed,
	}

	t.Run("guest cancellation attributes the reason and leaves cancelled_by null", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(stored, nil)
		d.repo.EXPECT().
			Cancel(gomock.Any(),
				gomock.Cond(func(x any) bool {
					cancelled, ok := x.(model.Booking)
					return ok && cancelled.Status == model.StatusCancelled &&
						!cancelled.CancelledBy.Valid &&
						cancelled.CancelledAt.Valid &&
						cancelled.CancellationReason.Valid &&
						cancelled.CancellationReason.String == "Cancelled by guest: change of plans"
				}),
				gomock.Cond(func(x any) bool {
					history, ok := x.(model.StatusHistory)
					return ok && history.OldStatus == model.StatusConfirmed &&
						history.NewStatus == model.StatusCancelled &&
						history.ChangedBy.Valid && history.ChangedBy.String == guestID
				})).
			Return(nil)

		err := svc.Cancel(guestContext(), bookingID, dto.CancelBookingRequest{Reason: "change of plans"})

		require.NoError(t, err)
	})

	t.Run("guest cancellation without a reason records the default note", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(stored, nil)
		d.repo.EXPECT().
			Cancel(gomock.Any(),
				gomock.Cond(func(x any) bool {
					cancelled, ok := x.(model.Booking)
					return ok && cancelled.CancellationReason.String == "Cancelled by guest: No reason provided"
				}),
				gomock.Any()).
			Return(nil)

		err := svc.Cancel(guestContext(), bookingID, dto.CancelBookingRequest{})

		require.NoError(t, err)
	})

	t.Run("staff cancellation passes the reason through and stamps the actor", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(stored, nil)
		d.repo.EXPECT().
			Cancel(gomock.Any(),
				gomock.Cond(func(x any) bool {
					cancelled, ok := x.(model.Booking)
					return ok && cancelled.CancelledBy.Valid &&
						cancelled.CancelledBy.String == adminID &&
						cancelled.CancellationReason.String == "overbooked"
				}),
				gomock.Any()).
			Return(nil)

		err := svc.Cancel(adminContext(hotelID), bookingID, dto.CancelBookingRequest{Reason: "overbooked"})

		require.NoError(t, err)
	})

	t.Run("guest cannot cancel another guest's booking", func(t *testing.T) {
		svc, d := newService(t)

		other := stored
		other.GuestID = "someone-else"

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(other, nil)

		err := svc.Cancel(guestContext(), bookingID, dto.CancelBookingRequest{Reason: "nope"})

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetByID(gomock.Any(), bookingID).Return(model.Booking{}, nil)

		err := svc.Cancel(guestContext(), bookingID, dto.CancelBookingRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGetBooking(t *testing.T) {
	bookingID := "1d2a3f40-5b6c-4d7e-8f90-a1b2c3d4e5f6"

	detail := model.Detail{
		Summary: model.Summary{
			ID:           bookingID,
			GuestID:      guestID,
			HotelID:      hotelID,
			HotelName:    "Seaside",
			GuestName:    "A. Guest",
			Status:       model.StatusConfirmed,
			CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	t.Run("returns detail with payments for the owning guest", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetail(gomock.Any(), bookingID).Return(detail, nil)
		d.payments.EXPECT().ListByBooking(gomock.Any(), bookingID).Return(nil, nil)

		res, err := svc.Get(guestContext(), bookingID)

		require.NoError(t, err)
		assert.Equal(t, bookingID, res.ID)
		assert.Equal(t, "Seaside", res.HotelName)
		assert.NotNil(t, res.Payments)
	})

	t.Run("identical consecutive reads return identical data", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetail(gomock.Any(), bookingID).Return(detail, nil).Times(2)
		d.payments.EXPECT().ListByBooking(gomock.Any(), bookingID).Return(nil, nil).Times(2)

		first, err := svc.Get(guestContext(), bookingID)
		require.NoError(t, err)

		second, err := svc.Get(guestContext(), bookingID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("guest cannot read another guest's booking", func(t *testing.T) {
		svc, d := newService(t)

		other := detail
		other.GuestID = "someone-else"

		d.repo.EXPECT().GetDetail(gomock.Any(), bookingID).Return(other, nil)
		d.payments.EXPECT().ListByBooking(gomock.Any(), bookingID).Return(nil, nil)

		_, err := svc.Get(guestContext(), bookingID)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetail(gomock.Any(), bookingID).Return(model.Detail{}, nil)

		_, err := svc.Get(guestContext(), bookingID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("payment listing failure degrades to an empty list", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetDetail(gomock.Any(), bookingID).Return(detail, nil)
		d.payments.EXPECT().ListByBooking(gomock.Any(), bookingID).Return(nil, assertAnError())

		res, err := svc.Get(guestContext(), bookingID)

		require.NoError(t, err)
		assert.Empty(t, res.Payments)
	})
}

func TestListBookings(t *testing.T) {
	defaultParams := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("store errors degrade to an empty listing", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().
			GetSummaries(gomock.Any(), defaultParams, gomock.Any()).
			Return(nil, assertAnError())

		res, err := svc.List(adminContext(hotelID), "", "", defaultParams)

		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("hotel admin listings are narrowed to their hotel", func(t *testing.T) {
		svc, d := newService(t)

		filter := repository.SummaryFilter{HotelID: hotelID, Status: model.StatusConfirmed}

		d.repo.EXPECT().
			GetSummaries(gomock.Any(), defaultParams, filter).
			Return([]model.Summary{}, nil)
		d.repo.EXPECT().
			CountSummaries(gomock.Any(), filter).
			Return(0, nil)

		_, err := svc.List(adminContext(hotelID), model.StatusConfirmed, "requested-other-hotel", defaultParams)

		require.NoError(t, err)
	})

	t.Run("guest listing is scoped to the caller", func(t *testing.T) {
		svc, d := newService(t)

		filter := repository.SummaryFilter{GuestID: guestID, Status: model.StatusConfirmed}

		d.repo.EXPECT().
			GetSummaries(gomock.Any(), defaultParams, filter).
			Return([]model.Summary{{ID: "b1", GuestID: guestID}}, nil)
		d.repo.EXPECT().
			CountSummaries(gomock.Any(), filter).
			Return(1, nil)

		res, err := svc.ListMine(guestContext(), model.StatusConfirmed, defaultParams)

		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "b1", res.Items[0].ID)
		assert.Equal(t, 1, res.TotalItems)
		assert.Equal(t, 1, res.TotalPages)
	})

	t.Run("page totals are derived from the full count", func(t *testing.T) {
		svc, d := newService(t)

		params := gDto.QueryParams{Page: 2, Limit: 5}
		filter := repository.SummaryFilter{HotelID: hotelID}

		d.repo.EXPECT().
			GetSummaries(gomock.Any(), params, filter).
			Return([]model.Summary{{ID: "b6"}, {ID: "b7"}, {ID: "b8"}, {ID: "b9"}, {ID: "b10"}}, nil)
		d.repo.EXPECT().
			CountSummaries(gomock.Any(), filter).
			Return(12, nil)

		res, err := svc.List(adminContext(hotelID), "", "", params)

		require.NoError(t, err)
		assert.Len(t, res.Items, 5)
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 5, res.Limit)
		assert.Equal(t, 12, res.TotalItems)
		assert.Equal(t, 3, res.TotalPages)
	})
}

func assertAnError() error {
	return failure.InternalError(sql.ErrConnDone)
}
