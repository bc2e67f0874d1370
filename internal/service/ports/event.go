package ports

import (
	"context"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, id int64, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}
