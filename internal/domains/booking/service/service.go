package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Booking=MockBookingService

import (
	"context"
	"database/sql"
	"net/http"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/booking/event"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	invService "stay/internal/domains/inventory/service"
	paymentRepository "stay/internal/domains/payment/repository"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking  = "booking:get"
	cacheListBooking = "booking:list"

	guestCancellationPrefix = "Cancelled by guest: "
	noReasonProvided        = "No reason provided"
)

// Actor is the authenticated caller, extracted from the request context by
// the auth middleware. The engine trusts these claims and does not re-derive
// them.
type Actor struct {
	ID      string
	Role    string
	HotelID string
}

func ActorFromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	hotelID, _ := ctx.Value(constant.ContextKeyHotelID).(string)

	return Actor{ID: id, Role: role, HotelID: hotelID}
}

// bookingGuest decides whose booking is being created. Guests always book for
// themselves; staff book on behalf of a guest and must name one, since the
// booking row references the guests table, not the staff identity store.
func bookingGuest(actor Actor, requestedGuestID string) (string, error) {
	if actor.Role == constant.RoleHotelAdmin || actor.Role == constant.RoleSuperAdmin {
		if requestedGuestID == constant.Empty {
			return constant.Empty, failure.BadRequestFromString("guest_id is required when staff create a booking") //nolint:wrapcheck
		}

		return requestedGuestID, nil
	}

	return actor.ID, nil
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.DetailResponse, error)
	List(ctx context.Context, status, hotelID string, params gDto.QueryParams) (dto.SummaryListResponse, error)
	ListMine(ctx context.Context, status string, params gDto.QueryParams) (dto.SummaryListResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error
}

type serviceImpl struct {
	repo      repository.Booking
	inventory invService.Inventory
	payments  paymentRepository.Payment
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	inventory invService.Inventory,
	payments paymentRepository.Payment,
	publisher event.Publisher,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		inventory: inventory,
		payments:  payments,
		publisher: publisher,
		cfg:       cfg,
		cache:     redisCache,
		otel:      otl,
	}
}

func metadataNow(now time.Time, userID string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  userID,
		ModifiedBy: userID,
	}
}

// Create builds and persists one reservation. Every step is a precondition
// that fails the whole operation; the store commit re-checks conflicts inside
// the same transaction, so no partial booking is ever persisted.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := ActorFromContext(ctx)
	if actor.ID == constant.Empty {
		return res, failure.Unauthorized("missing authenticated user") //nolint:wrapcheck
	}

	bookingGuestID, err := bookingGuest(actor, req.GuestID)
	if err != nil {
		return res, err
	}

	checkIn, checkOut, err := req.StayWindow()
	if err != nil {
		return res, err
	}

	roomIDs, err := s.resolveLineItems(ctx, req, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	nights := dto.Nights(checkIn, checkOut)
	bookingID := uuid.NewString()
	now := timezone.Now()

	var totalAmount float64

	rooms := make([]model.BookingRoom, 0, len(roomIDs))

	for _, roomID := range roomIDs {
		rate, quote, priceErr := s.inventory.PriceFor(ctx, roomID, checkIn)
		if priceErr != nil {
			err = priceErr

			return res, err
		}

		if rate.HotelID != req.HotelID {
			err = failure.NotFound("room")

			return res, err
		}

		lineTotal := quote.Price * float64(nights)
		totalAmount += lineTotal

		rooms = append(rooms, model.BookingRoom{
			ID:             uuid.NewString(),
			BookingID:      bookingID,
			RoomID:         roomID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			PricePerNight:  quote.Price,
			NumberOfNights: nights,
			TotalPrice:     lineTotal,
			TariffID:       quote.TariffID,
			Metadata:       metadataNow(now, actor.ID),
		})
	}

	// Discount evaluation is an external collaborator; bookings start at 0.
	discountAmount := 0.0

	booking := model.Booking{
		ID:             bookingID,
		GuestID:        bookingGuestID,
		HotelID:        req.HotelID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
		TotalAmount:    totalAmount,
		DiscountAmount: discountAmount,
		FinalAmount:    totalAmount - discountAmount,
		Status:         model.StatusPendingPayment,
		Metadata:       metadataNow(now, actor.ID),
		Rooms:          rooms,
	}

	if req.SpecialRequests != constant.Empty {
		booking.SpecialRequests = sql.NullString{String: req.SpecialRequests, Valid: true}
	}

	persisted, err := s.repo.Create(ctx, booking)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListBooking)

		if pubErr := s.publisher.BookingCreated(c, persisted); pubErr != nil {
			log.Error().Err(pubErr).Str("booking_id", persisted.ID).Msg("failed to publish booking created event")
		}
	}()

	return dto.BookingResponse{}.FromModel(persisted), nil
}

// resolveLineItems turns each requested id into a concrete room id. An id
// naming a room type resolves to a free room of that type, skipping rooms
// already taken by earlier items of the same request; any other id passes
// through as a concrete room and is conflict-checked at commit time.
func (s *serviceImpl) resolveLineItems(ctx context.Context, req dto.CreateBookingRequest, checkIn, checkOut time.Time) ([]string, error) {
	roomIDs := make([]string, 0, len(req.LineItemIDs))
	taken := make(map[string]struct{}, len(req.LineItemIDs))

	for _, lineItemID := range req.LineItemIDs {
		room, err := s.inventory.ResolveRoom(ctx, lineItemID, req.HotelID, checkIn, checkOut, roomIDs)

		switch {
		case err == nil:
			roomIDs = append(roomIDs, room.ID)
			taken[room.ID] = struct{}{}
		case failure.GetCode(err) == http.StatusNotFound:
			// Not a room type; pass through as a concrete room id. Existence
			// and hotel scope are verified during pricing.
			if _, dup := taken[lineItemID]; dup {
				return nil, failure.Conflictf("room %s requested more than once", lineItemID) //nolint:wrapcheck
			}

			roomIDs = append(roomIDs, lineItemID)
			taken[lineItemID] = struct{}{}
		default:
			return nil, err
		}
	}

	return roomIDs, nil
}

// Get returns the denormalized booking detail with its payment records.
// Guests see only their own bookings; hotel admins only their hotel's.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	cacheErr := s.cache.Get(ctx, cacheKey, &res)
	if cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking detail")

		return res, s.authorizeRead(ctx, res.GuestID, res.HotelID)
	}

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return dto.DetailResponse{}, err
	}

	if detail.ID == constant.Empty {
		return dto.DetailResponse{}, failure.NotFound(model.BookingEntityName) //nolint:wrapcheck
	}

	payments, paymentsErr := s.payments.ListByBooking(ctx, id)
	if paymentsErr != nil {
		// Display-only enrichment degrades to empty rather than failing the
		// lookup.
		log.Error().Err(paymentsErr).Str("booking_id", id).Msg("failed to list booking payments")

		payments = nil
	}

	res = dto.DetailResponse{}.FromModel(detail, payments)

	go func() {
		c := context.WithoutCancel(ctx)

		if saveErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to save booking detail to cache")
		}
	}()

	return res, s.authorizeRead(ctx, res.GuestID, res.HotelID)
}

func (s *serviceImpl) authorizeRead(ctx context.Context, guestID, hotelID string) error {
	actor := ActorFromContext(ctx)

	switch actor.Role {
	case constant.RoleGuest:
		if guestID != actor.ID {
			return failure.ResourceRestrictedError
		}
	case constant.RoleHotelAdmin:
		if hotelID != actor.HotelID {
			return failure.ResourceRestrictedError
		}
	}

	return nil
}

// List returns one page of booking summaries for staff. Hotel admins are
// implicitly narrowed to their own hotel regardless of the requested filter.
// Unexpected store errors degrade to an empty listing.
func (s *serviceImpl) List(ctx context.Context, status, hotelID string, params gDto.QueryParams) (res dto.SummaryListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()

	actor := ActorFromContext(ctx)
	if actor.Role == constant.RoleHotelAdmin {
		hotelID = actor.HotelID
	}

	return s.listSummaries(ctx, repository.SummaryFilter{
		HotelID: hotelID,
		Status:  status,
	}, params)
}

// ListMine returns one page of the calling guest's bookings, optionally
// filtered by status. Unexpected store errors degrade to an empty listing.
func (s *serviceImpl) ListMine(ctx context.Context, status string, params gDto.QueryParams) (res dto.SummaryListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMine")
	defer scope.End()

	actor := ActorFromContext(ctx)
	if actor.ID == constant.Empty {
		return res, failure.Unauthorized("missing authenticated user") //nolint:wrapcheck
	}

	return s.listSummaries(ctx, repository.SummaryFilter{
		GuestID: actor.ID,
		Status:  status,
	}, params)
}

func (s *serviceImpl) listSummaries(ctx context.Context, filter repository.SummaryFilter, params gDto.QueryParams) (dto.SummaryListResponse, error) {
	res := dto.SummaryListResponse{
		Items: []dto.SummaryResponse{},
		Page:  params.Page,
		Limit: params.Limit,
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListBooking, params, filter.FilterGroup())

	cacheErr := s.cache.Get(ctx, cacheKey, &res)
	if cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking list")

		return res, nil
	}

	summaries, err := s.repo.GetSummaries(ctx, params, filter)
	if err != nil {
		// Listings are display-only; degrade to empty instead of failing.
		log.Error().Err(err).Msg("failed to list bookings")

		return res, nil
	}

	total, err := s.repo.CountSummaries(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, nil
	}

	for _, summary := range summaries {
		res.Items = append(res.Items, dto.SummaryResponse{}.FromModel(summary))
	}

	res.TotalItems = total
	res.TotalPages = shared.CalculateTotalPage(total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if saveErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to save booking list to cache")
		}
	}()

	return res, nil
}

// UpdateStatus applies a requested lifecycle status. The status must belong
// to the closed set, but forward-only transitions are not enforced; side
// effects (room flips, audit history) are applied by the store in the same
// transaction.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.IsValidStatus(req.Status) {
		return failure.BadRequestFromString("invalid booking status: " + req.Status) //nolint:wrapcheck
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.ID == constant.Empty {
		return failure.NotFound(model.BookingEntityName) //nolint:wrapcheck
	}

	actor := ActorFromContext(ctx)
	if actor.Role == constant.RoleHotelAdmin && booking.HotelID != actor.HotelID {
		return failure.ResourceRestrictedError
	}

	oldStatus := booking.Status
	now := timezone.Now()
	booking.ModifiedAt = now
	booking.ModifiedBy = actor.ID

	history := model.StatusHistory{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		OldStatus: oldStatus,
		NewStatus: req.Status,
		Metadata:  metadataNow(now, actor.ID),
	}

	if actor.ID != constant.Empty {
		history.ChangedBy = sql.NullString{String: actor.ID, Valid: true}
	}

	if req.Notes != constant.Empty {
		history.Notes = sql.NullString{String: req.Notes, Valid: true}
	}

	err = s.repo.UpdateStatus(ctx, booking, req.Status, history)
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID)

		if pubErr := s.publisher.BookingStatusChanged(c, booking.ID, oldStatus, req.Status); pubErr != nil {
			log.Error().Err(pubErr).Str("booking_id", booking.ID).Msg("failed to publish booking status changed event")
		}
	}()

	return nil
}

// Cancel is a distinct operation, not a generic status update. A guest may
// only cancel their own booking; the stored reason is attributed to them and
// cancelled_by stays null. Staff cancellations pass the reason through
// verbatim and stamp the acting user. Rooms are not freed explicitly; the
// conflict predicate ignores cancelled bookings.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.ID == constant.Empty {
		return failure.NotFound(model.BookingEntityName) //nolint:wrapcheck
	}

	actor := ActorFromContext(ctx)

	var (
		reason      string
		cancelledBy sql.NullString
	)

	switch actor.Role {
	case constant.RoleGuest:
		if booking.GuestID != actor.ID {
			return failure.ResourceRestrictedError
		}

		if req.Reason == constant.Empty {
			reason = guestCancellationPrefix + noReasonProvided
		} else {
			reason = guestCancellationPrefix + req.Reason
		}
	case constant.RoleHotelAdmin:
		if booking.HotelID != actor.HotelID {
			return failure.ResourceRestrictedError
		}

		reason = req.Reason
		cancelledBy = sql.NullString{String: actor.ID, Valid: true}
	default:
		reason = req.Reason
		cancelledBy = sql.NullString{String: actor.ID, Valid: true}
	}

	now := timezone.Now()

	cancelled := model.Booking{
		ID:          booking.ID,
		Status:      model.StatusCancelled,
		CancelledBy: cancelledBy,
		CancelledAt: sql.NullTime{Time: now, Valid: true},
	}
	cancelled.ModifiedAt = now
	cancelled.ModifiedBy = actor.ID

	if reason != constant.Empty {
		cancelled.CancellationReason = sql.NullString{String: reason, Valid: true}
	}

	history := model.StatusHistory{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		OldStatus: booking.Status,
		NewStatus: model.StatusCancelled,
		ChangedBy: sql.NullString{String: actor.ID, Valid: actor.ID != constant.Empty},
		Notes:     cancelled.CancellationReason,
		Metadata:  metadataNow(now, actor.ID),
	}

	err = s.repo.Cancel(ctx, cancelled, history)
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID)

		if pubErr := s.publisher.BookingCancelled(c, booking.ID, reason); pubErr != nil {
			log.Error().Err(pubErr).Str("booking_id", booking.ID).Msg("failed to publish booking cancelled event")
		}
	}()

	return nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, bookingID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to invalidate booking detail cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheListBooking)
}
