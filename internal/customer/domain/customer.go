package domain

import (
	"errors"
	"time"
)

// Customer is the managed owner variant: a plain contact record with no
// credentials, administered through the API rather than self-registered.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByEmail(email string) (*Customer, error)
	FindAll(limit, offset int) ([]Customer, error)
	Update(customer *Customer) error
	Delete(id uint) error
	Count() (int64, error)
}
