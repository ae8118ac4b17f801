package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/customer/domain"
	favdomain "github.com/tair/favorites-api/internal/favorites/domain"
)

type fakeCustomerRepository struct {
	nextID  uint
	byID    map[uint]*domain.Customer
	byEmail map[string]*domain.Customer
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{
		byID:    make(map[uint]*domain.Customer),
		byEmail: make(map[string]*domain.Customer),
	}
}

func (f *fakeCustomerRepository) Create(customer *domain.Customer) error {
	if _, ok := f.byEmail[customer.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	customer.ID = f.nextID
	f.byID[customer.ID] = customer
	f.byEmail[customer.Email] = customer
	return nil
}

func (f *fakeCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	customer, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepository) FindByEmail(email string) (*domain.Customer, error) {
	customer, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	for _, customer := range f.byID {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (f *fakeCustomerRepository) Update(customer *domain.Customer) error {
	if _, ok := f.byID[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	f.byID[customer.ID] = customer
	f.byEmail[customer.Email] = customer
	return nil
}

func (f *fakeCustomerRepository) Delete(id uint) error {
	customer, ok := f.byID[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	delete(f.byEmail, customer.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeCustomerRepository) Count() (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeFavorites struct {
	nextID  uint
	ensured map[favdomain.Owner]*favdomain.Favorite
}

func newFakeFavorites() *fakeFavorites {
	return &fakeFavorites{ensured: make(map[favdomain.Owner]*favdomain.Favorite)}
}

func (f *fakeFavorites) EnsureForOwner(_ context.Context, owner favdomain.Owner) (*favdomain.Favorite, error) {
	if favorite, ok := f.ensured[owner]; ok {
		return favorite, nil
	}
	f.nextID++
	favorite := &favdomain.Favorite{ID: f.nextID, OwnerType: owner.Type, OwnerID: owner.ID}
	f.ensured[owner] = favorite
	return favorite, nil
}

func (f *fakeFavorites) AddProduct(_ context.Context, favoriteID, productID uint) (*favdomain.FavoriteProduct, error) {
	return &favdomain.FavoriteProduct{FavoriteID: favoriteID, ProductID: productID}, nil
}

func (f *fakeFavorites) RemoveProduct(_ context.Context, _, _ uint) error {
	return nil
}

func (f *fakeFavorites) ListProducts(_ context.Context, _ uint) ([]favdomain.Product, error) {
	return []favdomain.Product{}, nil
}

func (f *fakeFavorites) CountEntries(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}

func TestCreateCustomer(t *testing.T) {
	favorites := newFakeFavorites()
	handler := NewCreateCustomerHandler(newFakeCustomerRepository(), favorites)

	customer, err := handler.Handle(context.Background(), CreateCustomerCommand{
		Name:  "Maria Silva",
		Email: "  Maria@Example.COM ",
	})
	require.NoError(t, err)

	assert.NotZero(t, customer.ID)
	assert.Equal(t, "Maria Silva", customer.Name)
	// Customer emails are lower-cased entirely
	assert.Equal(t, "maria@example.com", customer.Email)

	owner := favdomain.Owner{Type: favdomain.OwnerTypeCustomer, ID: customer.ID}
	assert.Contains(t, favorites.ensured, owner)
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateCustomerCommand
		message string
	}{
		{"missing name", CreateCustomerCommand{Email: "a@example.com"}, "customer must have a name"},
		{"missing email", CreateCustomerCommand{Name: "Maria"}, "customer must have an email address"},
		{"malformed email", CreateCustomerCommand{Name: "Maria", Email: "nope"}, "you must provide a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCreateCustomerHandler(newFakeCustomerRepository(), newFakeFavorites())

			_, err := handler.Handle(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	handler := NewCreateCustomerHandler(newFakeCustomerRepository(), newFakeFavorites())

	_, err := handler.Handle(ctx, CreateCustomerCommand{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, CreateCustomerCommand{Name: "Other", Email: "MARIA@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "email already exists")
}
