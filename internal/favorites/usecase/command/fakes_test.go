package command

import (
	"context"
	"sort"

	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/kafka"
)

type fakeOwnerDirectory struct {
	owners map[domain.Owner]bool
	err    error
}

func (f *fakeOwnerDirectory) Exists(_ context.Context, owner domain.Owner) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.owners[owner], nil
}

type fakeResolver struct {
	products map[uint]*domain.Product
	err      error
	calls    int
}

func (f *fakeResolver) Resolve(_ context.Context, productID uint) (*domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	product, ok := f.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

type fakeProducts struct {
	products map[uint]*domain.Product
}

func (f *fakeProducts) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProducts) GetOrCreate(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if existing, ok := f.products[product.ID]; ok {
		return existing, nil
	}
	f.products[product.ID] = product
	return product, nil
}

// fakeLedger is an in-memory FavoriteRepository with one list per owner and
// set semantics on entries.
type fakeLedger struct {
	nextID    uint
	favorites map[domain.Owner]*domain.Favorite
	entries   map[uint]map[uint]uint // favoriteID -> productID -> entry id
	nextEntry uint
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		favorites: make(map[domain.Owner]*domain.Favorite),
		entries:   make(map[uint]map[uint]uint),
	}
}

func (f *fakeLedger) EnsureForOwner(_ context.Context, owner domain.Owner) (*domain.Favorite, error) {
	if favorite, ok := f.favorites[owner]; ok {
		return favorite, nil
	}
	f.nextID++
	favorite := &domain.Favorite{ID: f.nextID, OwnerType: owner.Type, OwnerID: owner.ID}
	f.favorites[owner] = favorite
	f.entries[favorite.ID] = make(map[uint]uint)
	return favorite, nil
}

func (f *fakeLedger) AddProduct(_ context.Context, favoriteID, productID uint) (*domain.FavoriteProduct, error) {
	if _, ok := f.entries[favoriteID][productID]; ok {
		return nil, domain.ErrDuplicateFavorite
	}
	f.nextEntry++
	f.entries[favoriteID][productID] = f.nextEntry
	return &domain.FavoriteProduct{ID: f.nextEntry, FavoriteID: favoriteID, ProductID: productID}, nil
}

func (f *fakeLedger) RemoveProduct(_ context.Context, favoriteID, productID uint) error {
	if _, ok := f.entries[favoriteID][productID]; !ok {
		return domain.ErrNotInFavorites
	}
	delete(f.entries[favoriteID], productID)
	return nil
}

func (f *fakeLedger) ListProducts(_ context.Context, favoriteID uint) ([]domain.Product, error) {
	type entry struct {
		entryID   uint
		productID uint
	}
	ordered := []entry{}
	for productID, entryID := range f.entries[favoriteID] {
		ordered = append(ordered, entry{entryID, productID})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].entryID < ordered[j].entryID })

	products := []domain.Product{}
	for _, e := range ordered {
		products = append(products, domain.Product{ID: e.productID})
	}
	return products, nil
}

func (f *fakeLedger) CountEntries(_ context.Context, favoriteID uint) (int64, error) {
	return int64(len(f.entries[favoriteID])), nil
}

type fakeEvents struct {
	added   []kafka.FavoriteEvent
	removed []kafka.FavoriteEvent
	err     error
}

func (f *fakeEvents) PublishFavoriteAdded(_ context.Context, event kafka.FavoriteEvent) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, event)
	return nil
}

func (f *fakeEvents) PublishFavoriteRemoved(_ context.Context, event kafka.FavoriteEvent) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, event)
	return nil
}
