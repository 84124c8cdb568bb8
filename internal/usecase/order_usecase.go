package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/salad-karo/storefront/internal/events"
	"github.com/salad-karo/storefront/internal/models"
	"github.com/salad-karo/storefront/internal/repo/mongodb"
)

type OrderUsecase interface {
	PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

type orderUsecase struct {
	orderRepo mongodb.OrderRepository
	publisher events.Publisher
}

func NewOrderUsecase(orderRepo mongodb.OrderRepository, publisher events.Publisher) OrderUsecase {
	return &orderUsecase{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// PlaceOrder stores the order and announces it. The event is a
// notification, not part of the commit: a publish failure is logged and
// the order stands.
func (uc *orderUsecase) PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.Status = models.OrderStatusReceived

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	publishCtx := context.WithoutCancel(ctx)
	go func() {
		if err := uc.publisher.OrderCreated(publishCtx, order); err != nil {
			log.Warnw(publishCtx, "order event publish failed", "error", err, "order_id", order.ID.Hex())
		}
	}()

	return order, nil
}
