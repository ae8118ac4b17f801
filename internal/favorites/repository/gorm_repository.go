package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/favorites/domain"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

// FindByID retrieves a product by its catalog id
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// GetOrCreate persists the product by id. When a row already exists, either
// beforehand or because a concurrent request won the insert race, the
// existing row is returned and its attributes are left untouched.
func (r *GormProductRepository) GetOrCreate(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var existing domain.Product
	err := r.db.WithContext(ctx).First(&existing, product.ID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the create race; the winner's row is authoritative.
			return r.FindByID(ctx, product.ID)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorites repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{}, &domain.FavoriteProduct{})
}

// EnsureForOwner returns the owner's favorites list, creating it on first
// use. The unique index on (owner_type, owner_id) resolves creation races.
func (r *GormFavoriteRepository) EnsureForOwner(ctx context.Context, owner domain.Owner) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.Type, owner.ID).
		First(&favorite).Error
	if err == nil {
		return &favorite, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find favorites list: %w", err)
	}

	favorite = domain.Favorite{OwnerType: owner.Type, OwnerID: owner.ID}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.EnsureForOwner(ctx, owner)
		}
		return nil, fmt.Errorf("failed to create favorites list: %w", err)
	}
	return &favorite, nil
}

// AddProduct inserts the join row for (favorite, product).
func (r *GormFavoriteRepository) AddProduct(ctx context.Context, favoriteID, productID uint) (*domain.FavoriteProduct, error) {
	entry := domain.FavoriteProduct{FavoriteID: favoriteID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateFavorite
		}
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return &entry, nil
}

// RemoveProduct deletes the join row for (favorite, product).
func (r *GormFavoriteRepository) RemoveProduct(ctx context.Context, favoriteID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("favorite_id = ? AND product_id = ?", favoriteID, productID).
		Delete(&domain.FavoriteProduct{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotInFavorites
	}
	return nil
}

// ListProducts returns the products on the list, ordered by join-row id so
// the sequence matches insertion order.
func (r *GormFavoriteRepository) ListProducts(ctx context.Context, favoriteID uint) ([]domain.Product, error) {
	products := []domain.Product{}
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Joins("JOIN favorite_products ON favorite_products.product_id = products.id").
		Where("favorite_products.favorite_id = ?", favoriteID).
		Order("favorite_products.id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return products, nil
}

// CountEntries returns the number of join rows on the list
func (r *GormFavoriteRepository) CountEntries(ctx context.Context, favoriteID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoriteProduct{}).
		Where("favorite_id = ?", favoriteID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
