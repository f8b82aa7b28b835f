package model

import (
	"database/sql"
	"stay/shared/model"
	"time"
)

const (
	RoomTableName  = "rooms"
	RoomEntityName = "room"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomTypeID = "room_type_id"
	FieldRoomNumber = "room_number"
	FieldStatus     = "status"
)

// Room statuses. The booking lifecycle flips occupied/available on check-in and
// check-out; maintenance and blocked belong to inventory management and are
// never written by the booking engine.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusBlocked     = "blocked"
)

type Room struct {
	ID         string `db:"id"`
	HotelID    string `db:"hotel_id"`
	RoomTypeID string `db:"room_type_id"`
	RoomNumber string `db:"room_number"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	model.Metadata
}

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	FieldMaxOccupancy = "max_occupancy"
	FieldBasePrice    = "base_price"
)

type RoomType struct {
	ID           string          `db:"id"`
	HotelID      string          `db:"hotel_id"`
	Name         string          `db:"name"`
	MaxOccupancy int             `db:"max_occupancy"`
	BasePrice    sql.NullFloat64 `db:"base_price"`
	model.Metadata
}

const (
	TariffTableName  = "tariffs"
	TariffEntityName = "tariff"

	FieldPrice     = "price"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

// Tariff is a date-ranged nightly price override for a room type. Ranges are
// inclusive on both ends. Overlapping ranges are a data-quality condition the
// engine tolerates by taking the first match.
type Tariff struct {
	ID         string    `db:"id"`
	RoomTypeID string    `db:"room_type_id"`
	Price      float64   `db:"price"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsWeekend  bool      `db:"is_weekend"`
	model.Metadata
}

// PriceQuote is a resolved nightly rate. TariffID is set only when a tariff
// priced the night; base-price and zero fallbacks leave it null.
type PriceQuote struct {
	Price    float64
	TariffID sql.NullString
}

// RoomRate is the pricing projection for a single room: the room joined with
// its room type's fallback rate.
type RoomRate struct {
	RoomID     string          `db:"room_id"`
	HotelID    string          `db:"hotel_id"`
	RoomTypeID string          `db:"room_type_id"`
	RoomNumber string          `db:"room_number"`
	BasePrice  sql.NullFloat64 `db:"base_price"`
}
