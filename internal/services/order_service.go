package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"storefront/internal/apperrors"
	"storefront/internal/logging"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/validation"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	validate    *validation.Validator
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, v *validation.Validator) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		validate:    v,
	}
}

// ListOrders retrieves one page of orders.
func (s *OrderService) ListOrders(ctx context.Context, page, limit int) (*models.Page[models.Order], error) {
	return s.orderRepo.List(ctx, page, limit)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// CreateOrder prices every item from the current product catalogue, computes
// the total and stores the order. Client-supplied prices and totals are ignored.
func (s *OrderService) CreateOrder(ctx context.Context, fields models.OrderFields) (*models.Order, error) {
	items, err := s.priceItems(ctx, fields.Items)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Check(orderEntity, fields); err != nil {
		return nil, err
	}

	user, _ := primitive.ObjectIDFromHex(*fields.User)
	order := &models.Order{
		User:  user,
		Items: items,
		Total: models.Total(items),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}
	logging.FromContext(ctx).Info("order created", "order_id", order.ID.Hex(), "items", len(items), "total", order.Total)
	return order, nil
}

// UpdateOrder merges patch onto the stored order and re-prices all items,
// including the stored ones when patch carries no items.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, patch models.OrderFields) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil || order == nil {
		return nil, err
	}
	fields := order.Fields().Merge(patch)

	items, err := s.priceItems(ctx, fields.Items)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Check(orderEntity, fields); err != nil {
		return nil, err
	}

	order.User, _ = primitive.ObjectIDFromHex(*fields.User)
	order.Items = items
	order.Total = models.Total(items)
	updated, err := s.orderRepo.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}
	return updated, nil
}

// DeleteOrder deletes an order by its ID and returns it.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.Delete(ctx, id)
}

// priceItems looks every product up concurrently and returns the items, in
// input order, with the product's current price captured. A missing or
// malformed product id fails the whole batch with apperrors.ErrProductNotFound.
func (s *OrderService) priceItems(ctx context.Context, in []models.OrderItemFields) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, len(in))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range in {
		g.Go(func() error {
			if item.Product == nil {
				return apperrors.ErrProductNotFound
			}
			product, err := s.productRepo.GetByID(gctx, *item.Product)
			switch {
			case errors.Is(err, apperrors.ErrInvalidID):
				return apperrors.ErrProductNotFound
			case err != nil:
				return fmt.Errorf("failed to look up product %s: %w", *item.Product, err)
			case product == nil:
				return apperrors.ErrProductNotFound
			}
			var quantity int
			if item.Quantity != nil {
				quantity = int(*item.Quantity)
			}
			items[i] = models.OrderItem{Product: product.ID, Quantity: quantity, Price: product.Price}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
