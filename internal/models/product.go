package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product in the store.
type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductFields is the client-supplied part of a product.
type ProductFields struct {
	Name        *string  `json:"name" validate:"required,productname"`
	Description *string  `json:"description" validate:"required,plaintext"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *float64 `json:"stock" validate:"required,wholenumber,gte=0"`
}

// Fields returns the stored values of p.
func (p *Product) Fields() ProductFields {
	name, description, price, stock := p.Name, p.Description, p.Price, float64(p.Stock)
	return ProductFields{Name: &name, Description: &description, Price: &price, Stock: &stock}
}

// Merge overlays the fields present in patch.
func (f ProductFields) Merge(patch ProductFields) ProductFields {
	if patch.Name != nil {
		f.Name = patch.Name
	}
	if patch.Description != nil {
		f.Description = patch.Description
	}
	if patch.Price != nil {
		f.Price = patch.Price
	}
	if patch.Stock != nil {
		f.Stock = patch.Stock
	}
	return f
}

// Apply copies validated fields onto p.
func (f ProductFields) Apply(p *Product) {
	p.Name = *f.Name
	p.Description = *f.Description
	p.Price = *f.Price
	p.Stock = int(*f.Stock)
}
