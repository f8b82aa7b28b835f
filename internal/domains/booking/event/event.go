package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/internal/domains/booking/model"
	"stay/shared/constant"
	"stay/shared/timezone"
	"time"
)

const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
	TypeBookingCancelled     = "booking.cancelled"
)

// BookingEvent is the wire payload for booking lifecycle events. Consumers
// key on BookingID for partition ordering.
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	GuestID     string    `json:"guest_id,omitempty"`
	HotelID     string    `json:"hotel_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	OldStatus   string    `json:"old_status,omitempty"`
	FinalAmount float64   `json:"final_amount,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking model.Booking) error
	BookingStatusChanged(ctx context.Context, bookingID, oldStatus, newStatus string) error
	BookingCancelled(ctx context.Context, bookingID, reason string) error
}

type publisherImpl struct {
	client kafka.Client
	config *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		config: cfg,
		otel:   otl,
	}
}

func (pub *publisherImpl) publish(ctx context.Context, evt BookingEvent) error {
	ctx, scope := pub.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+evt.Type)
	defer scope.End()

	if !pub.config.Kafka.Enable {
		return nil
	}

	err := pub.client.SendMessages(ctx, pub.config.Kafka.Topic.BookingEvents, kafka.Message{
		Key:   evt.BookingID,
		Value: evt,
	})
	if err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

func (pub *publisherImpl) BookingCreated(ctx context.Context, booking model.Booking) error {
	return pub.publish(ctx, BookingEvent{
		Type:        TypeBookingCreated,
		BookingID:   booking.ID,
		GuestID:     booking.GuestID,
		HotelID:     booking.HotelID,
		Status:      booking.Status,
		FinalAmount: booking.FinalAmount,
		OccurredAt:  timezone.Now(),
	})
}

func (pub *publisherImpl) BookingStatusChanged(ctx context.Context, bookingID, oldStatus, newStatus string) error {
	return pub.publish(ctx, BookingEvent{
		Type:       TypeBookingStatusChanged,
		BookingID:  bookingID,
		OldStatus:  oldStatus,
		Status:     newStatus,
		OccurredAt: timezone.Now(),
	})
}

func (pub *publisherImpl) BookingCancelled(ctx context.Context, bookingID, reason string) error {
	return pub.publish(ctx, BookingEvent{
		Type:       TypeBookingCancelled,
		BookingID:  bookingID,
		Status:     model.StatusCancelled,
		Reason:     reason,
		OccurredAt: timezone.Now(),
	})
}
