package dto

import (
	"math"
	"stay/internal/domains/booking/model"
	paymentModel "stay/internal/domains/payment/model"
	"stay/shared/constant"
	"stay/shared/failure"
	"stay/shared/timezone"
	"time"
)

// CreateBookingRequest is one reservation request. Each line item id names
// either a room type (resolved to a free room) or a concrete room (passed
// through and conflict-checked directly). GuestID is only honored for staff
// callers booking on behalf of a guest; guests always book for themselves.
type CreateBookingRequest struct {
	HotelID         string   `json:"hotel_id" validate:"required,uuid"`
	GuestID         string   `json:"guest_id" validate:"omitempty,uuid"`
	CheckIn         string   `json:"check_in" validate:"required,dateonly"`
	CheckOut        string   `json:"check_out" validate:"required,dateonly"`
	LineItemIDs     []string `json:"line_items" validate:"required,min=1,dive,uuid"`
	NumberOfGuests  int      `json:"number_of_guests" validate:"required,min=1"`
	SpecialRequests string   `json:"special_requests" validate:"omitempty,max=1000"`
}

// StayWindow parses the date pair and enforces checkOut strictly after
// checkIn. This runs before any store access.
func (r CreateBookingRequest) StayWindow() (checkIn, checkOut time.Time, err error) {
	return ParseStayWindow(r.CheckIn, r.CheckOut)
}

func ParseStayWindow(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid check_in date, expected YYYY-MM-DD")
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid check_out date, expected YYYY-MM-DD")
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out date must be after check_in date")
	}

	return checkIn, checkOut, nil
}

// Nights is the day-count between the two dates. Always >= 1 once the window
// has passed validation.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type BookingRoomResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"room_id"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	PricePerNight  float64 `json:"price_per_night"`
	NumberOfNights int     `json:"number_of_nights"`
	TotalPrice     float64 `json:"total_price"`
	TariffID       *string `json:"tariff_id,omitempty"`
}

type BookingResponse struct {
	ID              string                `json:"id"`
	GuestID         string                `json:"guest_id"`
	HotelID         string                `json:"hotel_id"`
	CheckIn         string                `json:"check_in"`
	CheckOut        string                `json:"check_out"`
	NumberOfGuests  int                   `json:"number_of_guests"`
	SpecialRequests string                `json:"special_requests,omitempty"`
	TotalAmount     float64               `json:"total_amount"`
	DiscountAmount  float64               `json:"discount_amount"`
	FinalAmount     float64               `json:"final_amount"`
	Status          string                `json:"status"`
	Rooms           []BookingRoomResponse `json:"rooms"`
	CreatedAt       time.Time             `json:"created_at"`
}

func (r BookingResponse) FromModel(booking model.Booking) BookingResponse {
	rooms := make([]BookingRoomResponse, 0, len(booking.Rooms))

	for _, room := range booking.Rooms {
		roomRes := BookingRoomResponse{
			ID:             room.ID,
			RoomID:         room.RoomID,
			CheckIn:        timezone.Format(room.CheckInDate, constant.DateOnlyFormat),
			CheckOut:       timezone.Format(room.CheckOutDate, constant.DateOnlyFormat),
			PricePerNight:  room.PricePerNight,
			NumberOfNights: room.NumberOfNights,
			TotalPrice:     room.TotalPrice,
		}

		if room.TariffID.Valid {
			tariffID := room.TariffID.String
			roomRes.TariffID = &tariffID
		}

		rooms = append(rooms, roomRes)
	}

	return BookingResponse{
		ID:              booking.ID,
		GuestID:         booking.GuestID,
		HotelID:         booking.HotelID,
		CheckIn:         timezone.Format(booking.CheckInDate, constant.DateOnlyFormat),
		CheckOut:        timezone.Format(booking.CheckOutDate, constant.DateOnlyFormat),
		NumberOfGuests:  booking.NumberOfGuests,
		SpecialRequests: booking.SpecialRequests.String,
		TotalAmount:     booking.TotalAmount,
		DiscountAmount:  booking.DiscountAmount,
		FinalAmount:     booking.FinalAmount,
		Status:          booking.Status,
		Rooms:           rooms,
		CreatedAt:       timezone.ToAppTime(booking.CreatedAt),
	}
}

type SummaryResponse struct {
	ID                 string     `json:"id"`
	GuestID            string     `json:"guest_id"`
	HotelID            string     `json:"hotel_id"`
	HotelName          string     `json:"hotel_name"`
	GuestName          string     `json:"guest_name"`
	GuestEmail         string     `json:"guest_email"`
	CheckIn            string     `json:"check_in"`
	CheckOut           string     `json:"check_out"`
	NumberOfGuests     int        `json:"number_of_guests"`
	TotalAmount        float64    `json:"total_amount"`
	DiscountAmount     float64    `json:"discount_amount"`
	FinalAmount        float64    `json:"final_amount"`
	Status             string     `json:"status"`
	RoomsTotal         int        `json:"rooms_total"`
	RoomNumbers        string     `json:"room_numbers,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (r SummaryResponse) FromModel(summary model.Summary) SummaryResponse {
	res := SummaryResponse{
		ID:                 summary.ID,
		GuestID:            summary.GuestID,
		HotelID:            summary.HotelID,
		HotelName:          summary.HotelName,
		GuestName:          summary.GuestName,
		GuestEmail:         summary.GuestEmail,
		CheckIn:            timezone.Format(summary.CheckInDate, constant.DateOnlyFormat),
		CheckOut:           timezone.Format(summary.CheckOutDate, constant.DateOnlyFormat),
		NumberOfGuests:     summary.NumberOfGuests,
		TotalAmount:        summary.TotalAmount,
		DiscountAmount:     summary.DiscountAmount,
		FinalAmount:        summary.FinalAmount,
		Status:             summary.Status,
		RoomsTotal:         summary.RoomsTotal,
		RoomNumbers:        summary.RoomNumbers.String,
		CancellationReason: summary.CancellationReason.String,
		CreatedAt:          timezone.ToAppTime(summary.CreatedAt),
	}

	if summary.CancelledAt.Valid {
		cancelledAt := timezone.ToAppTime(summary.CancelledAt.Time)
		res.CancelledAt = &cancelledAt
	}

	return res
}

// SummaryListResponse is one page of booking summaries.
type SummaryListResponse struct {
	Items      []SummaryResponse `json:"items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentDate   time.Time `json:"payment_date"`
}

func (r PaymentResponse) FromModel(payment paymentModel.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID.String,
		PaymentDate:   timezone.ToAppTime(payment.PaymentDate),
	}
}

type DetailResponse struct {
	SummaryResponse
	HotelAddress    string            `json:"hotel_address,omitempty"`
	HotelCity       string            `json:"hotel_city,omitempty"`
	GuestPhone      string            `json:"guest_phone,omitempty"`
	RoomTypes       string            `json:"room_types,omitempty"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	CancelledBy     string            `json:"cancelled_by,omitempty"`
	Payments        []PaymentResponse `json:"payments"`
}

func (r DetailResponse) FromModel(detail model.Detail, payments []paymentModel.Payment) DetailResponse {
	paymentResponses := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		paymentResponses = append(paymentResponses, PaymentResponse{}.FromModel(payment))
	}

	return DetailResponse{
		SummaryResponse: SummaryResponse{}.FromModel(detail.Summary),
		HotelAddress:    detail.HotelAddress.String,
		HotelCity:       detail.HotelCity.String,
		GuestPhone:      detail.GuestPhone.String,
		RoomTypes:       detail.RoomTypes.String,
		SpecialRequests: detail.SpecialRequests.String,
		CancelledBy:     detail.CancelledBy.String,
		Payments:        paymentResponses,
	}
}
