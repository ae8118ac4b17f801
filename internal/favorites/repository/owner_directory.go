package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	customerdomain "github.com/tair/favorites-api/internal/customer/domain"
	"github.com/tair/favorites-api/internal/favorites/domain"
	userdomain "github.com/tair/favorites-api/internal/user/domain"
)

// GormOwnerDirectory resolves favorites owners against the user and
// customer tables.
type GormOwnerDirectory struct {
	db *gorm.DB
}

// NewGormOwnerDirectory creates a new owner directory
func NewGormOwnerDirectory(db *gorm.DB) *GormOwnerDirectory {
	return &GormOwnerDirectory{db: db}
}

// Exists reports whether the owner record is present.
func (d *GormOwnerDirectory) Exists(ctx context.Context, owner domain.Owner) (bool, error) {
	var count int64
	var err error

	switch owner.Type {
	case domain.OwnerTypeUser:
		err = d.db.WithContext(ctx).Model(&userdomain.User{}).Where("id = ?", owner.ID).Count(&count).Error
	case domain.OwnerTypeCustomer:
		err = d.db.WithContext(ctx).Model(&customerdomain.Customer{}).Where("id = ?", owner.ID).Count(&count).Error
	default:
		return false, fmt.Errorf("unknown owner type %q", owner.Type)
	}

	if err != nil {
		return false, fmt.Errorf("failed to look up owner: %w", err)
	}
	return count > 0, nil
}
