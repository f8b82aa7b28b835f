package model

import (
	"database/sql"
	"stay/shared/model"
	"time"
)

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldPaymentDate = "payment_date"
)

// Payment records are written by an external payment collaborator; this
// service only reads them to enrich booking detail lookups.
type Payment struct {
	ID            string         `db:"id"`
	BookingID     string         `db:"booking_id"`
	Amount        float64        `db:"amount"`
	Method        string         `db:"payment_method"`
	Status        string         `db:"payment_status"`
	TransactionID sql.NullString `db:"transaction_id"`
	PaymentDate   time.Time      `db:"payment_date"`
	model.Metadata
}
