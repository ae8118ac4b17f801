package command

import (
	"context"

	"gorm.io/gorm"

	favdomain "github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/internal/user/domain"
)

// fakeUserRepository stores users in memory and enforces email uniqueness
// the way the gorm repository does, via gorm.ErrDuplicatedKey.
type fakeUserRepository struct {
	nextID  uint
	byID    map[uint]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[uint]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepository) Create(user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	user.ID = f.nextID
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) FindByID(id uint) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) FindByEmail(email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	users := []domain.User{}
	for _, user := range f.byID {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepository) Update(user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) Delete(id uint) error {
	user, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byEmail, user.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepository) Count() (int64, error) {
	return int64(len(f.byID)), nil
}

// fakeFavorites records which owners had their list ensured.
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
