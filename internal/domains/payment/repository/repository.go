package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/payment/model"
	gDto "stay/shared/dto"
	gRepo "stay/shared/repository"
)

type Payment interface {
	ListByBooking(ctx context.Context, bookingID string) ([]model.Payment, error)
}

type repositoryImpl struct {
	payments gRepo.Repository[model.Payment]
}

func New(db *postgres.Connection, otl otel.Otel) Payment {
	return &repositoryImpl{
		payments: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otl),
	}
}

// ListByBooking returns the booking's payments ordered by payment date.
func (repo *repositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]model.Payment, error) {
	return repo.payments.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldPaymentDate, SortDir: "DESC"},
		gDto.FilterGroup{
			Filters: []any{gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID}},
		},
	)
}
