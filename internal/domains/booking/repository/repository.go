package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	invRepository "stay/internal/domains/inventory/repository"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/logger"
	gRepo "stay/shared/repository"

	invModel "stay/internal/domains/inventory/model"

	"github.com/jmoiron/sqlx"
)

const summarySelect = `
	SELECT b.id, b.guest_id, b.hotel_id, h.name AS hotel_name, g.name AS guest_name, g.email AS guest_email,
		b.check_in_date, b.check_out_date, b.number_of_guests, b.total_amount, b.discount_amount, b.final_amount,
		b.status, b.cancellation_reason, b.cancelled_at, b.created_at,
		COUNT(br.id) AS rooms_total,
		STRING_AGG(DISTINCT r.room_number, ', ') AS room_numbers
	FROM bookings b
	JOIN hotels h ON b.hotel_id = h.id
	JOIN guests g ON b.guest_id = g.id
	LEFT JOIN booking_rooms br ON br.booking_id = b.id
	LEFT JOIN rooms r ON br.room_id = r.id
	%s
	GROUP BY b.id, h.name, g.name, g.email
	ORDER BY b.created_at DESC`

const summaryCountQuery = `SELECT COUNT(b.id) FROM bookings b %s`

const detailQuery = `
	SELECT b.id, b.guest_id, b.hotel_id, h.name AS hotel_name, g.name AS guest_name, g.email AS guest_email,
		b.check_in_date, b.check_out_date, b.number_of_guests, b.total_amount, b.discount_amount, b.final_amount,
		b.status, b.cancellation_reason, b.cancelled_at, b.cancelled_by, b.created_at, b.special_requests,
		h.address AS hotel_address, h.city AS hotel_city, g.phone AS guest_phone,
		COUNT(br.id) AS rooms_total,
		STRING_AGG(DISTINCT r.room_number, ', ') AS room_numbers,
		STRING_AGG(DISTINCT rt.name, ', ') AS room_types
	FROM bookings b
	JOIN hotels h ON b.hotel_id = h.id
	JOIN guests g ON b.guest_id = g.id
	LEFT JOIN booking_rooms br ON br.booking_id = b.id
	LEFT JOIN rooms r ON br.room_id = r.id
	LEFT JOIN room_types rt ON r.room_type_id = rt.id
	WHERE b.id = $1
	GROUP BY b.id, h.name, h.address, h.city, g.name, g.email, g.phone`

// SummaryFilter narrows booking listings. Zero values mean no narrowing.
type SummaryFilter struct {
	GuestID string
	HotelID string
	Status  string
}

// FilterGroup renders the narrowing as a named-parameter filter over the
// booking header alias, so listings and their cache keys derive from the same
// predicate.
func (f SummaryFilter) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.GuestID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldGuestID, Operator: gDto.FilterOperatorEq, Value: f.GuestID, Table: "b"})
	}

	if f.HotelID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldHotelID, Operator: gDto.FilterOperatorEq, Value: f.HotelID, Table: "b"})
	}

	if f.Status != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: f.Status, Table: "b"})
	}

	return group
}

type Booking interface {
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	GetDetail(ctx context.Context, id string) (model.Detail, error)
	GetSummaries(ctx context.Context, params gDto.QueryParams, filter SummaryFilter) ([]model.Summary, error)
	CountSummaries(ctx context.Context, filter SummaryFilter) (int, error)
	UpdateStatus(ctx context.Context, booking model.Booking, newStatus string, history model.StatusHistory) error
	Cancel(ctx context.Context, cancelled model.Booking, history model.StatusHistory) error
}

type repositoryImpl struct {
	bookings     gRepo.Repository[model.Booking]
	bookingRooms gRepo.Repository[model.BookingRoom]
	history      gRepo.Repository[model.StatusHistory]
	inventory    invRepository.Inventory
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, inventory invRepository.Inventory, otl otel.Otel) Booking {
	return &repositoryImpl{
		bookings:     gRepo.NewRepository[model.Booking](model.BookingEntityName, model.BookingTableName, model.FieldID, db, otl),
		bookingRooms: gRepo.NewRepository[model.BookingRoom](model.BookingRoomEntityName, model.BookingRoomTableName, model.FieldID, db, otl),
		history:      gRepo.NewRepository[model.StatusHistory](model.StatusHistoryEntityName, model.StatusHistoryTableName, model.FieldID, db, otl),
		inventory:    inventory,
		db:           db,
		otel:         otl,
	}
}

// Create persists the header and all line items as one atomic unit. Inside
// the transaction it locks the target room rows in a stable order and re-runs
// the overlap check, so two concurrent creates for the same room cannot both
// observe zero conflicts and both commit. A detected overlap surfaces as a
// conflict failure naming the room; nothing is committed.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to begin transaction (%s): %w", model.BookingEntityName, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	roomIDs := make([]string, 0, len(booking.Rooms))
	for _, room := range booking.Rooms {
		roomIDs = append(roomIDs, room.RoomID)
	}

	sort.Strings(roomIDs)

	err = repo.inventory.LockRoomsTx(ctx, tx, roomIDs)
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	for _, roomID := range roomIDs {
		var conflicts int

		conflicts, err = repo.inventory.CountConflictsTx(ctx, tx, roomID, booking.CheckInDate, booking.CheckOutDate)
		if err != nil {
			scope.TraceError(err)

			return model.Booking{}, err
		}

		if conflicts > 0 {
			err = failure.Conflictf("room %s is already booked for the selected dates", roomID)
			scope.TraceError(err)

			return model.Booking{}, err
		}
	}

	err = repo.bookings.InsertTx(ctx, tx, booking)
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	err = repo.bookingRooms.InsertBulkTx(ctx, tx, booking.Rooms)
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	err = tx.Commit()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to commit transaction (%s): %w", model.BookingEntityName, err)
	}

	return booking, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.bookings.Exist(ctx, filter)
}

// GetByID returns the booking header with its line items. A missing booking
// yields the zero Booking with a nil error.
func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByID")
	defer scope.End()

	booking, err := repo.bookings.Get(ctx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, nil
	}

	booking.Rooms, err = repo.bookingRooms.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldBookingID, constant.Empty))
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	return booking, nil
}

// GetDetail returns the denormalized single-booking view. A missing booking
// yields the zero Detail with a nil error.
func (repo *repositoryImpl) GetDetail(ctx context.Context, id string) (model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetail")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, detailQuery)

	var detail model.Detail

	err := repo.db.Read.GetContext(ctx, &detail, detailQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Detail{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Detail{}, fmt.Errorf("failed to get booking detail (%s): %w", id, err)
	}

	return detail, nil
}

// GetSummaries returns one page of the denormalized listing. A zero limit
// disables pagination and returns everything matching the filter.
func (repo *repositoryImpl) GetSummaries(ctx context.Context, params gDto.QueryParams, filter SummaryFilter) ([]model.Summary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetSummaries")
	defer scope.End()

	where, args := repo.bookings.BuildWhereClause(ctx, filter.FilterGroup())

	pagination := ""

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = " LIMIT :limit OFFSET :offset"
	} else if params.Limit > 0 {
		args["limit"] = params.Limit

		pagination = " LIMIT :limit"
	}

	query := fmt.Sprintf(summarySelect, where) + pagination
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var summaries []model.Summary

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &summaries, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return summaries, nil
}

func (repo *repositoryImpl) CountSummaries(ctx context.Context, filter SummaryFilter) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountSummaries")
	defer scope.End()

	where, args := repo.bookings.BuildWhereClause(ctx, filter.FilterGroup())

	query := fmt.Sprintf(summaryCountQuery, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

// UpdateStatus applies the requested status, appends the audit row when the
// transition carries an acting user (history.ChangedBy set), and flips the
// booking's rooms to occupied on check-in or available on check-out, all in
// one transaction.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, booking model.Booking, newStatus string, history model.StatusHistory) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.BookingEntityName, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	err = repo.bookings.UpdateTx(ctx, tx,
		shared.TransformFields(model.BookingUpdate{Status: newStatus}, booking.ModifiedBy),
		shared.FilterByID(booking.ID, model.FieldID, constant.Empty),
	)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if history.ChangedBy.Valid {
		err = repo.history.InsertTx(ctx, tx, history)
		if err != nil {
			scope.TraceError(err)

			return err
		}
	}

	err = repo.applyRoomSideEffects(ctx, tx, booking.ID, newStatus)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	err = tx.Commit()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.BookingEntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) applyRoomSideEffects(ctx context.Context, tx *sqlx.Tx, bookingID, newStatus string) error {
	switch newStatus {
	case model.StatusCheckedIn:
		return repo.inventory.SetRoomStatusForBookingTx(ctx, tx, bookingID, invModel.RoomStatusOccupied)
	case model.StatusCheckedOut:
		return repo.inventory.SetRoomStatusForBookingTx(ctx, tx, bookingID, invModel.RoomStatusAvailable)
	}

	return nil
}

// Cancel stamps the cancellation columns and appends the audit row in one
// transaction. Rooms are not freed explicitly; the conflict predicate ignores
// cancelled bookings.
func (repo *repositoryImpl) Cancel(ctx context.Context, cancelled model.Booking, history model.StatusHistory) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.BookingEntityName, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	err = repo.bookings.UpdateTx(ctx, tx,
		shared.TransformFields(model.BookingUpdate{
			Status:             model.StatusCancelled,
			CancellationReason: cancelled.CancellationReason,
			CancelledBy:        cancelled.CancelledBy,
			CancelledAt:        cancelled.CancelledAt,
		}, cancelled.ModifiedBy),
		shared.FilterByID(cancelled.ID, model.FieldID, constant.Empty),
	)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	err = repo.history.InsertTx(ctx, tx, history)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	err = tx.Commit()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.BookingEntityName, err)
	}

	return nil
}
