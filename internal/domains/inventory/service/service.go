package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Inventory=MockInventoryService

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"stay/infras/otel"
	"stay/internal/domains/inventory/model"
	"stay/internal/domains/inventory/model/dto"
	"stay/internal/domains/inventory/repository"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/timezone"
	"time"
)

type Inventory interface {
	GetRoomByID(ctx context.Context, id string) (model.Room, error)
	ResolveRoom(ctx context.Context, roomTypeID, hotelID string, checkIn, checkOut time.Time, exclude []string) (model.Room, error)
	PriceFor(ctx context.Context, roomID string, checkIn time.Time) (model.RoomRate, model.PriceQuote, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repository repository.Inventory
	otel       otel.Otel
}

func New(repo repository.Inventory, otl otel.Otel) Inventory {
	return &serviceImpl{
		repository: repo,
		otel:       otl,
	}
}

func (svc *serviceImpl) GetRoomByID(ctx context.Context, id string) (model.Room, error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetRoomByID")
	defer scope.End()

	room, err := svc.repository.GetRoom(ctx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		scope.TraceError(err)

		return model.Room{}, err
	}

	if room.ID == constant.Empty {
		err = failure.NotFound(model.RoomEntityName)
		scope.TraceError(err)

		return model.Room{}, err
	}

	return room, nil
}

// ResolveRoom picks a concrete free room for a room type over [checkIn,
// checkOut), skipping rooms in the exclusion list. It fails with a conflict
// when every room of the type is either held by an active booking or not in
// available status.
func (svc *serviceImpl) ResolveRoom(ctx context.Context, roomTypeID, hotelID string, checkIn, checkOut time.Time, exclude []string) (model.Room, error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ResolveRoom")
	defer scope.End()

	exist, err := svc.repository.RoomTypeExist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: roomTypeID},
			gDto.Filter{Field: model.FieldHotelID, Operator: gDto.FilterOperatorEq, Value: hotelID},
		},
	})
	if err != nil {
		scope.TraceError(err)

		return model.Room{}, err
	}

	if !exist {
		err = failure.NotFound(model.RoomTypeEntityName)
		scope.TraceError(err)

		return model.Room{}, err
	}

	room, err := svc.repository.FindAvailableRoom(ctx, roomTypeID, hotelID, checkIn, checkOut, exclude)
	if err != nil {
		scope.TraceError(err)

		return model.Room{}, err
	}

	if room.ID == constant.Empty {
		err = failure.Conflictf("no available room of type %s for the requested dates", roomTypeID)
		scope.TraceError(err)

		return model.Room{}, err
	}

	return room, nil
}

// PriceFor resolves the nightly rate for a room at the check-in date. A tariff
// covering the date wins; otherwise the room type's base price; otherwise zero.
// The rate of the check-in date applies to every night of the stay.
func (svc *serviceImpl) PriceFor(ctx context.Context, roomID string, checkIn time.Time) (model.RoomRate, model.PriceQuote, error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.PriceFor")
	defer scope.End()

	rate, err := svc.repository.GetRoomRate(ctx, roomID)
	if err != nil {
		scope.TraceError(err)

		return model.RoomRate{}, model.PriceQuote{}, err
	}

	if rate.RoomID == constant.Empty {
		err = failure.NotFound(model.RoomEntityName)
		scope.TraceError(err)

		return model.RoomRate{}, model.PriceQuote{}, err
	}

	tariff, err := svc.repository.FindTariff(ctx, rate.RoomTypeID, checkIn)
	if err != nil {
		scope.TraceError(err)

		return model.RoomRate{}, model.PriceQuote{}, err
	}

	if tariff.ID != constant.Empty {
		return rate, model.PriceQuote{
			Price:    tariff.Price,
			TariffID: sql.NullString{String: tariff.ID, Valid: true},
		}, nil
	}

	if rate.BasePrice.Valid {
		return rate, model.PriceQuote{Price: rate.BasePrice.Float64}, nil
	}

	return rate, model.PriceQuote{}, nil
}

func (svc *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.CheckAvailability")
	defer scope.End()

	checkIn, checkOut, err := parseStayWindow(req.CheckIn, req.CheckOut)
	if err != nil {
		scope.TraceError(err)

		return dto.AvailabilityResponse{}, err
	}

	res := dto.AvailabilityResponse{
		RoomTypeID: req.RoomTypeID,
		HotelID:    req.HotelID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
	}

	room, err := svc.ResolveRoom(ctx, req.RoomTypeID, req.HotelID, checkIn, checkOut, nil)
	if err != nil {
		if failure.GetCode(err) == http.StatusConflict {
			return res, nil
		}

		scope.TraceError(err)

		return dto.AvailabilityResponse{}, err
	}

	roomRes := dto.RoomResponse{}.FromModel(room)
	res.Available = true
	res.Room = &roomRes

	return res, nil
}

// parseStayWindow parses the YYYY-MM-DD pair and enforces checkOut > checkIn.
// Same-day stays are rejected; a stay is always at least one night.
func parseStayWindow(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(fmt.Errorf("invalid check_in date: %w", err))
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(fmt.Errorf("invalid check_out date: %w", err))
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out date must be after check_in date")
	}

	return checkIn, checkOut, nil
}
