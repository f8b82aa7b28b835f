package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/inventory/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/logger"
	gRepo "stay/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// availabilityQuery finds one free room of a type at a hotel: the room must be
// available, must not appear in any booking-room row of an active booking
// whose stay window overlaps [check-in, check-out), and must not be in the
// exclusion list (rooms already taken by earlier line items of the same
// request).
const availabilityQuery = `
	SELECT id, hotel_id, room_type_id, room_number, floor, status, created_at, modified_at, created_by, modified_by
	FROM rooms
	WHERE room_type_id = $1
	  AND hotel_id = $2
	  AND status = 'available'
	  AND id <> ALL($5)
	  AND id NOT IN (
		SELECT br.room_id
		FROM booking_rooms br
		JOIN bookings b ON br.booking_id = b.id
		WHERE b.status NOT IN ('cancelled', 'no_show')
		  AND NOT (br.check_out_date <= $3 OR br.check_in_date >= $4)
	  )
	LIMIT 1`

// conflictQuery counts active bookings holding the room over an overlapping window.
const conflictQuery = `
	SELECT COUNT(br.id)
	FROM booking_rooms br
	JOIN bookings b ON br.booking_id = b.id
	WHERE br.room_id = $1
	  AND b.status NOT IN ('cancelled', 'no_show')
	  AND NOT (br.check_out_date <= $2 OR br.check_in_date >= $3)`

const tariffQuery = `
	SELECT id, room_type_id, price, start_date, end_date, is_weekend, created_at, modified_at, created_by, modified_by
	FROM tariffs
	WHERE room_type_id = $1
	  AND $2 BETWEEN start_date AND end_date
	LIMIT 1`

const roomRateQuery = `
	SELECT r.id AS room_id, r.hotel_id, r.room_type_id, r.room_number, rt.base_price
	FROM rooms r
	JOIN room_types rt ON r.room_type_id = rt.id
	WHERE r.id = $1`

const lockRoomsQuery = `SELECT id FROM rooms WHERE id = ANY($1) ORDER BY id FOR UPDATE`

const roomStatusForBookingQuery = `
	UPDATE rooms
	SET status = $1
	FROM booking_rooms br
	WHERE rooms.id = br.room_id
	  AND br.booking_id = $2`

type Inventory interface {
	GetRoom(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetRooms(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	RoomExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	RoomTypeExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetRoomType(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	FindAvailableRoom(ctx context.Context, roomTypeID, hotelID string, checkIn, checkOut time.Time, exclude []string) (model.Room, error)
	FindTariff(ctx context.Context, roomTypeID string, date time.Time) (model.Tariff, error)
	GetRoomRate(ctx context.Context, roomID string) (model.RoomRate, error)
	CountConflicts(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	CountConflictsTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time) (int, error)
	LockRoomsTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string) error
	SetRoomStatusForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, status string) error
}

type repositoryImpl struct {
	rooms     gRepo.Repository[model.Room]
	roomTypes gRepo.Repository[model.RoomType]
	tariffs   gRepo.Repository[model.Tariff]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Inventory {
	return &repositoryImpl{
		rooms:     gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otl),
		roomTypes: gRepo.NewRepository[model.RoomType](model.RoomTypeEntityName, model.RoomTypeTableName, model.FieldID, db, otl),
		tariffs:   gRepo.NewRepository[model.Tariff](model.TariffEntityName, model.TariffTableName, model.FieldID, db, otl),
		db:        db,
		otel:      otl,
	}
}

func (repo *repositoryImpl) GetRoom(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error) {
	return repo.rooms.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetRooms(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error) {
	return repo.rooms.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) RoomExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.rooms.Exist(ctx, filter)
}

func (repo *repositoryImpl) RoomTypeExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.roomTypes.Exist(ctx, filter)
}

func (repo *repositoryImpl) GetRoomType(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error) {
	return repo.roomTypes.Get(ctx, filter, columns...)
}

// FindAvailableRoom returns the zero Room when no room of the type is free for
// the window. Any free room is interchangeable; no ordering is guaranteed.
func (repo *repositoryImpl) FindAvailableRoom(ctx context.Context, roomTypeID, hotelID string, checkIn, checkOut time.Time, exclude []string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.FindAvailableRoom")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availabilityQuery)

	if exclude == nil {
		exclude = []string{}
	}

	var room model.Room

	err := repo.db.Read.GetContext(ctx, &room, availabilityQuery, roomTypeID, hotelID, checkIn, checkOut, pq.Array(exclude))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to find available room (%s): %w", roomTypeID, err)
	}

	return room, nil
}

// FindTariff returns the zero Tariff when no tariff covers the date.
func (repo *repositoryImpl) FindTariff(ctx context.Context, roomTypeID string, date time.Time) (model.Tariff, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.FindTariff")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, tariffQuery)

	var tariff model.Tariff

	err := repo.db.Read.GetContext(ctx, &tariff, tariffQuery, roomTypeID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tariff{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Tariff{}, fmt.Errorf("failed to find tariff (%s): %w", roomTypeID, err)
	}

	return tariff, nil
}

func (repo *repositoryImpl) GetRoomRate(ctx context.Context, roomID string) (model.RoomRate, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.GetRoomRate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, roomRateQuery)

	var rate model.RoomRate

	err := repo.db.Read.GetContext(ctx, &rate, roomRateQuery, roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RoomRate{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.RoomRate{}, fmt.Errorf("failed to get room rate (%s): %w", roomID, err)
	}

	return rate, nil
}

func (repo *repositoryImpl) CountConflicts(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.CountConflicts")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	var count int

	err := repo.db.Read.GetContext(ctx, &count, conflictQuery, roomID, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count conflicting bookings (%s): %w", roomID, err)
	}

	return count, nil
}

// CountConflictsTx is the authoritative overlap check. It must run inside the
// same transaction as the booking write, after LockRoomsTx, so that two
// concurrent creates for the same room cannot both observe zero conflicts.
func (repo *repositoryImpl) CountConflictsTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.CountConflictsTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	var count int

	err := sqltx.GetContext(ctx, &count, conflictQuery, roomID, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count conflicting bookings (%s): %w", roomID, err)
	}

	return count, nil
}

// LockRoomsTx takes row locks on the rooms in a stable order, serializing
// concurrent creates that target the same rooms.
func (repo *repositoryImpl) LockRoomsTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.LockRoomsTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockRoomsQuery)

	var locked []string

	err := sqltx.SelectContext(ctx, &locked, lockRoomsQuery, pq.Array(roomIDs))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock rooms: %w", err)
	}

	if len(locked) != len(roomIDs) {
		return fmt.Errorf("failed to lock rooms: %w", sql.ErrNoRows)
	}

	return nil
}

func (repo *repositoryImpl) SetRoomStatusForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, status string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.SetRoomStatusForBookingTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, roomStatusForBookingQuery)

	_, err := sqltx.ExecContext(ctx, roomStatusForBookingQuery, status, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update room status for booking (%s): %w", bookingID, err)
	}

	return nil
}
