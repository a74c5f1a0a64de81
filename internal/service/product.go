package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/morcel/product-catalog/internal/logging"
	"github.com/morcel/product-catalog/internal/models"
	"github.com/morcel/product-catalog/internal/repo"
	"github.com/morcel/product-catalog/internal/transport"
)

// EventPublisher mirrors product mutations onto a message broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// ProductIndexer keeps an external search index in sync with the store.
type ProductIndexer interface {
	IndexProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

// ProductService enforces the catalog rules above raw persistence. Events and
// Index are optional collaborators; their failures are logged, never surfaced.
type ProductService struct {
	Repo       *repo.GormRepo
	Categories *CategoryService
	Events     EventPublisher
	Index      ProductIndexer
}

const eventTopic = "product_events"

func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return product, err
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}

	categoryID := req.ResolveCategoryID()
	if categoryID == 0 {
		return nil, fmt.Errorf("%w: category is required", ErrCategoryNotFound)
	}
	category, err := s.Categories.Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCategoryNotFound, categoryID)
		}
		return nil, err
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  category.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}
	product.Category = category

	s.publish(ctx, map[string]any{"type": "product_created", "product_id": product.ID, "name": product.Name})
	s.reindex(ctx, &product)
	return &product, nil
}

// Update overwrites name/description/price/quantity unconditionally. A nil
// request category keeps the existing reference; a non-nil one must resolve.
// CreatedAt is never touched.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Quantity = req.Quantity

	if req.Category != nil {
		category, err := s.Categories.Get(ctx, req.Category.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrCategoryNotFound, req.Category.ID)
			}
			return nil, err
		}
		product.CategoryID = category.ID
		product.Category = category
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{"type": "product_updated", "product_id": product.ID, "name": product.Name})
	s.reindex(ctx, product)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return err
	}

	s.publish(ctx, map[string]any{"type": "product_deleted", "product_id": id})
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("index_delete_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *ProductService) GetByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return s.Repo.GetProductsByCategory(ctx, categoryID)
}

// Search with an empty name matches the whole catalog.
func (s *ProductService) Search(ctx context.Context, name string) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, name)
}

// GetByPriceRange is an inclusive filter; min > max yields an empty list.
func (s *ProductService) GetByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	return s.Repo.GetProductsByPriceRange(ctx, min, max)
}

func (s *ProductService) publish(ctx context.Context, event map[string]any) {
	if s.Events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, eventTopic, fmt.Sprint(event["product_id"]), event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", eventTopic, "error", err)
	}
}

func (s *ProductService) reindex(ctx context.Context, product *models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Error("index_update_failed", "product_id", product.ID, "error", err)
	}
}
