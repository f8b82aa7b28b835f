package model

import (
	"database/sql"
	"stay/shared/model"
	"time"
)

const (
	BookingTableName  = "bookings"
	BookingEntityName = "booking"

	BookingRoomTableName  = "booking_rooms"
	BookingRoomEntityName = "booking_room"

	StatusHistoryTableName  = "booking_status_history"
	StatusHistoryEntityName = "booking_status_history"

	FieldID          = "id"
	FieldGuestID     = "guest_id"
	FieldHotelID     = "hotel_id"
	FieldBookingID   = "booking_id"
	FieldStatus      = "status"
	FieldCancelledAt = "cancelled_at"
)

// Booking statuses form a closed set. The lifecycle is pending_payment →
// confirmed → checked_in → checked_out, with cancelled reachable from any
// non-terminal state and no_show as an alternate terminal. Requested
// transitions are validated for membership only, not for direction.
const (
	StatusPendingPayment = "pending_payment"
	StatusConfirmed      = "confirmed"
	StatusCheckedIn      = "checked_in"
	StatusCheckedOut     = "checked_out"
	StatusCancelled      = "cancelled"
	StatusNoShow         = "no_show"
)

var validStatuses = map[string]struct{}{
	StatusPendingPayment: {},
	StatusConfirmed:      {},
	StatusCheckedIn:      {},
	StatusCheckedOut:     {},
	StatusCancelled:      {},
	StatusNoShow:         {},
}

func IsValidStatus(status string) bool {
	_, ok := validStatuses[status]

	return ok
}

// BookingUpdate carries the header columns a lifecycle write may set. Zero
// fields are left untouched.
type BookingUpdate struct {
	Status             string         `db:"status"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	CancelledBy        sql.NullString `db:"cancelled_by"`
	CancelledAt        sql.NullTime   `db:"cancelled_at"`
}

type Booking struct {
	ID                 string          `db:"id"`
	GuestID            string          `db:"guest_id"`
	HotelID            string          `db:"hotel_id"`
	CheckInDate        time.Time       `db:"check_in_date"`
	CheckOutDate       time.Time       `db:"check_out_date"`
	NumberOfGuests     int             `db:"number_of_guests"`
	SpecialRequests    sql.NullString  `db:"special_requests"`
	TotalAmount        float64         `db:"total_amount"`
	DiscountAmount     float64         `db:"discount_amount"`
	FinalAmount        float64         `db:"final_amount"`
	Status             string          `db:"status"`
	CancellationReason sql.NullString  `db:"cancellation_reason"`
	CancelledBy        sql.NullString  `db:"cancelled_by"`
	CancelledAt        sql.NullTime    `db:"cancelled_at"`
	model.Metadata

	// Rooms is populated in memory at build time and persisted separately.
	Rooms []BookingRoom
}

type BookingRoom struct {
	ID             string         `db:"id"`
	BookingID      string         `db:"booking_id"`
	RoomID         string         `db:"room_id"`
	CheckInDate    time.Time      `db:"check_in_date"`
	CheckOutDate   time.Time      `db:"check_out_date"`
	PricePerNight  float64        `db:"price_per_night"`
	NumberOfNights int            `db:"number_of_nights"`
	TotalPrice     float64        `db:"total_price"`
	TariffID       sql.NullString `db:"tariff_id"`
	model.Metadata
}

// StatusHistory is append-only. A row is written only when the transition
// carries an acting user; system-driven transitions leave no history.
type StatusHistory struct {
	ID        string         `db:"id"`
	BookingID string         `db:"booking_id"`
	OldStatus string         `db:"old_status"`
	NewStatus string         `db:"new_status"`
	ChangedBy sql.NullString `db:"changed_by"`
	Notes     sql.NullString `db:"notes"`
	model.Metadata
}

// Summary is the denormalized listing projection: the booking header joined
// with hotel name, guest identity, and aggregated room columns.
type Summary struct {
	ID                 string         `db:"id"`
	GuestID            string         `db:"guest_id"`
	HotelID            string         `db:"hotel_id"`
	HotelName          string         `db:"hotel_name"`
	GuestName          string         `db:"guest_name"`
	GuestEmail         string         `db:"guest_email"`
	CheckInDate        time.Time      `db:"check_in_date"`
	CheckOutDate       time.Time      `db:"check_out_date"`
	NumberOfGuests     int            `db:"number_of_guests"`
	TotalAmount        float64        `db:"total_amount"`
	DiscountAmount     float64        `db:"discount_amount"`
	FinalAmount        float64        `db:"final_amount"`
	Status             string         `db:"status"`
	RoomsTotal         int            `db:"rooms_total"`
	RoomNumbers        sql.NullString `db:"room_numbers"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	CancelledAt        sql.NullTime   `db:"cancelled_at"`
	CreatedAt          time.Time      `db:"created_at"`
}

// Detail extends Summary with hotel address, guest contact, room types, and
// special requests for single-booking lookups. Payments are attached by the
// service from the payment domain.
type Detail struct {
	Summary
	HotelAddress    sql.NullString `db:"hotel_address"`
	HotelCity       sql.NullString `db:"hotel_city"`
	GuestPhone      sql.NullString `db:"guest_phone"`
	RoomTypes       sql.NullString `db:"room_types"`
	SpecialRequests sql.NullString `db:"special_requests"`
	CancelledBy     sql.NullString `db:"cancelled_by"`
}
