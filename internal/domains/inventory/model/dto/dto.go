package dto

import (
	"stay/internal/domains/inventory/model"
	"stay/shared/timezone"
	"time"
)

type RoomResponse struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	RoomTypeID string    `json:"room_type_id"`
	RoomNumber string    `json:"room_number"`
	Floor      int       `json:"floor"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (r RoomResponse) FromModel(room model.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		RoomTypeID: room.RoomTypeID,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Status:     room.Status,
		CreatedAt:  timezone.ToAppTime(room.CreatedAt),
		ModifiedAt: timezone.ToAppTime(room.ModifiedAt),
	}
}

// AvailabilityRequest is the advisory availability query for a room type.
// Dates use the YYYY-MM-DD wire format.
type AvailabilityRequest struct {
	RoomTypeID string `validate:"required,uuid"`
	HotelID    string `validate:"required,uuid"`
	CheckIn    string `validate:"required,dateonly"`
	CheckOut   string `validate:"required,dateonly"`
}

type AvailabilityResponse struct {
	Available  bool          `json:"available"`
	RoomTypeID string        `json:"room_type_id"`
	HotelID    string        `json:"hotel_id"`
	CheckIn    string        `json:"check_in"`
	CheckOut   string        `json:"check_out"`
	Room       *RoomResponse `json:"room,omitempty"`
}
