package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/morcel/product-catalog/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts returns the full catalog newest-first. The ordering is part of
// the endpoint contract.
func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.DB.WithContext(ctx).Preload("Category").
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	// writes touch the product row only, never the category association
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.DB.WithContext(ctx).Preload("Category").
		Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts matches case-insensitively on a name substring. LOWER/LIKE
// keeps the semantics identical on postgres and the sqlite test store.
func (r *GormRepo) SearchProducts(ctx context.Context, name string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	products := []models.Product{}
	if err := r.DB.WithContext(ctx).Preload("Category").
		Where("LOWER(name) LIKE ?", pattern).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProductsByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.DB.WithContext(ctx).Preload("Category").
		Where("price BETWEEN ? AND ?", min, max).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
