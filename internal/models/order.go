package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem represents a single item within an order.
type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Price    float64            `json:"price" bson:"price"` // Price at the time of order
}

// Order represents a customer order.
type Order struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderItemFields is a line item as sent by the client. Any price it carries is ignored.
type OrderItemFields struct {
	Product  *string  `json:"product" validate:"required,objectid"`
	Quantity *float64 `json:"quantity" validate:"required,wholenumber,min=1"`
}

// OrderFields is the client-supplied part of an order.
type OrderFields struct {
	User  *string           `json:"user" validate:"required,objectid"`
	Items []OrderItemFields `json:"items" validate:"required,dive"`
}

// Fields returns the stored values of o.
func (o *Order) Fields() OrderFields {
	user := o.User.Hex()
	items := make([]OrderItemFields, len(o.Items))
	for i, item := range o.Items {
		product, quantity := item.Product.Hex(), float64(item.Quantity)
		items[i] = OrderItemFields{Product: &product, Quantity: &quantity}
	}
	return OrderFields{User: &user, Items: items}
}

// Merge overlays the fields present in patch. Items are replaced as a whole.
func (f OrderFields) Merge(patch OrderFields) OrderFields {
	if patch.User != nil {
		f.User = patch.User
	}
	if patch.Items != nil {
		f.Items = patch.Items
	}
	return f
}

// Total sums quantity times captured price over items.
func Total(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
