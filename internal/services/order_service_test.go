package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"
	"storefront/internal/validation"
)

func newOrderService() (*services.OrderService, *MockOrderRepository, *MockProductRepository) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	return services.NewOrderService(orderRepo, productRepo, validation.New()), orderRepo, productRepo
}

func TestOrderService_CreateOrder_ComputesTotalFromCurrentPrices(t *testing.T) {
	service, orderRepo, productRepo := newOrderService()

	widget := &models.Product{ID: primitive.NewObjectID(), Name: "Widget", Price: 2.5}
	gadget := &models.Product{ID: primitive.NewObjectID(), Name: "Gadget", Price: 10}
	productRepo.On("GetByID", mock.Anything, widget.ID.Hex()).Return(widget, nil).Once()
	productRepo.On("GetByID", mock.Anything, gadget.ID.Hex()).Return(gadget, nil).Once()
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

	user := primitive.NewObjectID().Hex()
	order, err := service.CreateOrder(context.Background(), models.OrderFields{
		User: &user,
		Items: []models.OrderItemFields{
			{Product: ptr(widget.ID.Hex()), Quantity: ptr(4.0)},
			{Product: ptr(gadget.ID.Hex()), Quantity: ptr(1.0)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, widget.ID, order.Items[0].Product)
	assert.Equal(t, 2.5, order.Items[0].Price)
	assert.Equal(t, gadget.ID, order.Items[1].Product)
	assert.Equal(t, 10.0, order.Items[1].Price)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_MissingProduct(t *testing.T) {
	service, orderRepo, productRepo := newOrderService()

	missing := primitive.NewObjectID().Hex()
	productRepo.On("GetByID", mock.Anything, missing).Return(nil, nil).Once()

	user := primitive.NewObjectID().Hex()
	_, err := service.CreateOrder(context.Background(), models.OrderFields{
		User:  &user,
		Items: []models.OrderItemFields{{Product: &missing, Quantity: ptr(1.0)}},
	})
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_MalformedProductID(t *testing.T) {
	service, orderRepo, productRepo := newOrderService()

	productRepo.On("GetByID", mock.Anything, "nope").Return(nil, apperrors.ErrInvalidID).Once()

	user := primitive.NewObjectID().Hex()
	_, err := service.CreateOrder(context.Background(), models.OrderFields{
		User:  &user,
		Items: []models.OrderItemFields{{Product: ptr("nope"), Quantity: ptr(1.0)}},
	})
	assert.Equal(t, apperrors.KindReference, apperrors.KindOf(err))
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_StoreFailure(t *testing.T) {
	service, _, productRepo := newOrderService()

	product := primitive.NewObjectID().Hex()
	productRepo.On("GetByID", mock.Anything, product).Return(nil, errors.New("connection reset")).Once()

	user := primitive.NewObjectID().Hex()
	_, err := service.CreateOrder(context.Background(), models.OrderFields{
		User:  &user,
		Items: []models.OrderItemFields{{Product: &product, Quantity: ptr(1.0)}},
	})
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(err))
}

func TestOrderService_CreateOrder_Invalid(t *testing.T) {
	service, orderRepo, productRepo := newOrderService()

	widget := &models.Product{ID: primitive.NewObjectID(), Price: 1}
	productRepo.On("GetByID", mock.Anything, widget.ID.Hex()).Return(widget, nil).Once()

	_, err := service.CreateOrder(context.Background(), models.OrderFields{
		Items: []models.OrderItemFields{{Product: ptr(widget.ID.Hex()), Quantity: ptr(0.0)}},
	})
	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Order", ve.Entity)
	assert.Contains(t, ve.Violations, apperrors.Violation{Path: "user", Message: "Path `user` is required."})
	assert.Contains(t, ve.Violations, apperrors.Violation{
		Path:    "items.0.quantity",
		Message: "Path `items.0.quantity` (0) is less than minimum allowed value (1).",
	})
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder_RepricesStoredItems(t *testing.T) {
	service, orderRepo, productRepo := newOrderService()

	widget := &models.Product{ID: primitive.NewObjectID(), Price: 3}
	id := primitive.NewObjectID()
	stored := &models.Order{
		ID:    id,
		User:  primitive.NewObjectID(),
		Items: []models.OrderItem{{Product: widget.ID, Quantity: 2, Price: 1}},
		Total: 2,
	}
	newUser := primitive.NewObjectID()

	orderRepo.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
	productRepo.On("GetByID", mock.Anything, widget.ID.Hex()).Return(widget, nil).Once()
	orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.User == newUser && o.Total == 6 && o.Items[0].Price == 3
	})).Return(stored, nil).Once()

	_, err := service.UpdateOrder(context.Background(), id.Hex(), models.OrderFields{User: ptr(newUser.Hex())})
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrder_Absent(t *testing.T) {
	service, orderRepo, _ := newOrderService()

	id := primitive.NewObjectID().Hex()
	orderRepo.On("GetByID", mock.Anything, id).Return(nil, nil).Once()

	order, err := service.UpdateOrder(context.Background(), id, models.OrderFields{})
	assert.NoError(t, err)
	assert.Nil(t, order)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
