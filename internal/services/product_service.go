package services

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/validation"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validation.Validator
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, v *validation.Validator) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: v,
	}
}

// ListProducts retrieves one page of products.
func (s *ProductService) ListProducts(ctx context.Context, page, limit int) (*models.Page[models.Product], error) {
	return s.repo.List(ctx, page, limit)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates fields and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, fields models.ProductFields) (*models.Product, error) {
	if err := s.validate.Check(productEntity, fields); err != nil {
		return nil, err
	}
	product := &models.Product{}
	fields.Apply(product)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, writeErr(productEntity, err)
	}
	return product, nil
}

// UpdateProduct merges patch onto the stored product, validates the result and
// replaces it. A well-formed id with no product yields (nil, nil).
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch models.ProductFields) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	fields := product.Fields().Merge(patch)
	if err := s.validate.Check(productEntity, fields); err != nil {
		return nil, err
	}
	fields.Apply(product)
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, writeErr(productEntity, err)
	}
	return updated, nil
}

// DeleteProduct deletes a product by its ID and returns it.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.Delete(ctx, id)
}
