package service_test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"stay/infras/otel/mocks"
	"stay/internal/domains/inventory/model"
	"stay/internal/domains/inventory/model/dto"
	invMocks "stay/internal/domains/inventory/mocks"
	"stay/internal/domains/inventory/service"
	gDto "stay/shared/dto"
	"stay/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	checkIn  = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
)

func TestResolveRoom(t *testing.T) {
	roomTypeID := "7b0bd6ac-3707-4358-a62a-4c91b0105dcf"
	hotelID := "9d57b3e4-0be0-4a82-b6a2-8bfaf41470ae"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().RoomTypeExist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().FindAvailableRoom(gomock.Any(), roomTypeID, hotelID, checkIn, checkOut, gomock.Nil()).
			Return(model.Room{ID: "room-1", RoomTypeID: roomTypeID, HotelID: hotelID, RoomNumber: "101"}, nil)

		svc := service.New(repo, mocks.NewOtel())

		room, err := svc.ResolveRoom(context.Background(), roomTypeID, hotelID, checkIn, checkOut, nil)

		require.NoError(t, err)
		assert.Equal(t, "room-1", room.ID)
		assert.Equal(t, "101", room.RoomNumber)
	})

	t.Run("room type not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().RoomTypeExist(gomock.Any(), gomock.Any()).Return(false, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, err := svc.ResolveRoom(context.Background(), roomTypeID, hotelID, checkIn, checkOut, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("no free room yields conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().RoomTypeExist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().FindAvailableRoom(gomock.Any(), roomTypeID, hotelID, checkIn, checkOut, gomock.Nil()).
			Return(model.Room{}, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, err := svc.ResolveRoom(context.Background(), roomTypeID, hotelID, checkIn, checkOut, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("hotel scoping on room type lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().RoomTypeExist(gomock.Any(), gomock.Cond(func(x any) bool {
			filter, ok := x.(gDto.FilterGroup)
			if !ok {
				return false
			}
			hasHotel := false
			for _, f := range filter.Filters {
				if flt, ok := f.(gDto.Filter); ok && flt.Field == model.FieldHotelID && flt.Value == hotelID {
					hasHotel = true
				}
			}
			return hasHotel
		})).Return(true, nil)
		repo.EXPECT().FindAvailableRoom(gomock.Any(), roomTypeID, hotelID, checkIn, checkOut, gomock.Nil()).
			Return(model.Room{ID: "room-1"}, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, err := svc.ResolveRoom(context.Background(), roomTypeID, hotelID, checkIn, checkOut, nil)

		require.NoError(t, err)
	})
}

func TestPriceFor(t *testing.T) {
	roomID := "0d4fca80-0cbd-4b82-9a12-b9e3cbb1a886"

	rate := model.RoomRate{
		RoomID:     roomID,
		HotelID:    "hotel-1",
		RoomTypeID: "type-1",
		RoomNumber: "101",
		BasePrice:  sql.NullFloat64{Float64: 150, Valid: true},
	}

	t.Run("tariff covering the check-in date wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().GetRoomRate(gomock.Any(), roomID).Return(rate, nil)
		repo.EXPECT().FindTariff(gomock.Any(), "type-1", checkIn).
			Return(model.Tariff{ID: "tariff-1", RoomTypeID: "type-1", Price: 180}, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, quote, err := svc.PriceFor(context.Background(), roomID, checkIn)

		require.NoError(t, err)
		assert.InDelta(t, 180.0, quote.Price, 0.001)
		require.True(t, quote.TariffID.Valid)
		assert.Equal(t, "tariff-1", quote.TariffID.String)
	})

	t.Run("falls back to base price when no tariff covers the date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().GetRoomRate(gomock.Any(), roomID).Return(rate, nil)
		repo.EXPECT().FindTariff(gomock.Any(), "type-1", checkIn).Return(model.Tariff{}, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, quote, err := svc.PriceFor(context.Background(), roomID, checkIn)

		require.NoError(t, err)
		assert.InDelta(t, 150.0, quote.Price, 0.001)
		assert.False(t, quote.TariffID.Valid)
	})

	t.Run("falls back to zero when base price is null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		nullRate := rate
		nullRate.BasePrice = sql.NullFloat64{}

		repo.EXPECT().GetRoomRate(gomock.Any(), roomID).Return(nullRate, nil)
		repo.EXPECT().FindTariff(gomock.Any(), "type-1", checkIn).Return(model.Tariff{}, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, quote, err := svc.PriceFor(context.Background(), roomID, checkIn)

		require.NoError(t, err)
		assert.Zero(t, quote.Price)
		assert.False(t, quote.TariffID.Valid)
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().GetRoomRate(gomock.Any(), roomID).Return(model.RoomRate{}, nil)

		svc := service.New(repo, mocks.NewOtel())

		_, _, err := svc.PriceFor(context.Background(), roomID, checkIn)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCheckAvailability(t *testing.T) {
	req := dto.AvailabilityRequest{
		RoomTypeID: "7b0bd6ac-3707-4358-a62a-4c91b0105dcf",
		HotelID:    "9d57b3e4-0be0-4a82-b6a2-8bfaf41470ae",
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-13",
	}

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().RoomTypeExist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().FindAvailableRoom(gomock.Any(), req.RoomTypeID, req.HotelID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(model.Room{ID: "room-1", RoomNumber: "101"}, nil)

		svc := service.New(repo, mocks.NewOtel())

		res, err := svc.CheckAvailability(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, res.Available)
		require.NotNil(t, res.Room)
		assert.Equal(t, "101", res.Room.RoomNumber)
	})

	t.Run("fully booked reports unavailable without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		repo.EXPECT().RoomTypeExist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().FindAvailableRoom(gomock.Any(), req.RoomTypeID, req.HotelID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(model.Room{}, nil)

		svc := service.New(repo, mocks.NewOtel())

		res, err := svc.CheckAvailability(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Nil(t, res.Room)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		svc := service.New(repo, mocks.NewOtel())

		bad := req
		bad.CheckIn = "2026-03-13"
		bad.CheckOut = "2026-03-10"

		_, err := svc.CheckAvailability(context.Background(), bad)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("same-day stay is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := invMocks.NewMockInventory(ctrl)

		svc := service.New(repo, mocks.NewOtel())

		bad := req
		bad.CheckOut = bad.CheckIn

		_, err := svc.CheckAvailability(context.Background(), bad)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
