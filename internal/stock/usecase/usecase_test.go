package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/stock"
	"github.com/tiendapos/inventory-service/internal/stock/dto"
	"github.com/tiendapos/inventory-service/pkg/logger"
)

// fakeRepo is an in-memory stock.Repository with the same error contract
// as the Postgres implementation.
type fakeRepo struct {
	products map[string]*model.Product
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]*model.Product{}}
}

func (f *fakeRepo) Insert(_ context.Context, name string, quantity int64) (*model.Product, error) {
	if _, ok := f.products[name]; ok {
		return nil, model.ErrDuplicateProduct
	}
	f.nextID++
	p := &model.Product{ID: f.nextID, Name: name, Quantity: quantity}
	f.products[name] = p
	return &model.Product{ID: p.ID, Name: p.Name, Quantity: p.Quantity}, nil
}

func (f *fakeRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	p, ok := f.products[name]
	if !ok {
		return nil, nil
	}
	return &model.Product{ID: p.ID, Name: p.Name, Quantity: p.Quantity}, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]model.Product, error) {
	all := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (f *fakeRepo) AddQuantity(_ context.Context, name string, delta int64) (int64, error) {
	p, ok := f.products[name]
	if !ok {
		return 0, model.ErrProductNotFound
	}
	p.Quantity += delta
	return p.Quantity, nil
}

func (f *fakeRepo) SubtractQuantity(_ context.Context, name string, delta int64) (int64, error) {
	p, ok := f.products[name]
	if !ok {
		return 0, model.ErrProductNotFound
	}
	if p.Quantity < delta {
		return p.Quantity, model.ErrInsufficientStock
	}
	p.Quantity -= delta
	return p.Quantity, nil
}

func newUseCase() (stock.UseCase, *fakeRepo) {
	repo := newFakeRepo()
	return NewStockUseCase(repo, nil, logger.NewNop()), repo
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	t.Run("create then lookup returns the initial quantity", func(t *testing.T) {
		created, err := uc.CreateProduct(ctx, "rice 1kg", 10)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		found, err := uc.Lookup(ctx, "rice 1kg")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, int64(10), found.Quantity)
	})

	t.Run("duplicate name fails and leaves quantity unchanged", func(t *testing.T) {
		_, err := uc.CreateProduct(ctx, "rice 1kg", 99)
		assert.ErrorIs(t, err, model.ErrDuplicateProduct)

		found, err := uc.Lookup(ctx, "rice 1kg")
		require.NoError(t, err)
		assert.Equal(t, int64(10), found.Quantity)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := uc.CreateProduct(ctx, "", 1)
		assert.Error(t, err)
	})
}

func TestQuantityRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	_, err := uc.CreateProduct(ctx, "beans 500g", 7)
	require.NoError(t, err)

	after, err := uc.IncreaseQuantity(ctx, "beans 500g", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), after)

	after, err = uc.DecreaseQuantity(ctx, "beans 500g", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), after)
}

func TestDecreaseQuantity(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	_, err := uc.CreateProduct(ctx, "oil 900ml", 3)
	require.NoError(t, err)

	t.Run("insufficient stock leaves quantity unchanged", func(t *testing.T) {
		onHand, err := uc.DecreaseQuantity(ctx, "oil 900ml", 5)
		assert.ErrorIs(t, err, model.ErrInsufficientStock)
		assert.Equal(t, int64(3), onHand)

		found, err := uc.Lookup(ctx, "oil 900ml")
		require.NoError(t, err)
		assert.Equal(t, int64(3), found.Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.DecreaseQuantity(ctx, "ghost", 1)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("exact quantity drains to zero", func(t *testing.T) {
		after, err := uc.DecreaseQuantity(ctx, "oil 900ml", 3)
		require.NoError(t, err)
		assert.Equal(t, int64(0), after)
	})
}

func TestIncreaseQuantity_UnknownProduct(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.IncreaseQuantity(context.Background(), "ghost", 5)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestListAll_OrderedByID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	for _, name := range []string{"c", "a", "b"} {
		_, err := uc.CreateProduct(ctx, name, 1)
		require.NoError(t, err)
	}

	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].Name, all[1].Name, all[2].Name},
		"insertion order, not name order")
}

func TestReceiveMerchandise(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	t.Run("new product mode creates", func(t *testing.T) {
		result, err := uc.ReceiveMerchandise(ctx, &dto.ReceiveInput{
			Mode: dto.ModeNewProduct, Name: "flour 1kg", Quantity: 4,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, int64(4), result.NewQuantity)
	})

	t.Run("new product mode fails loudly on existing name", func(t *testing.T) {
		_, err := uc.ReceiveMerchandise(ctx, &dto.ReceiveInput{
			Mode: dto.ModeNewProduct, Name: "flour 1kg", Quantity: 4,
		})
		assert.ErrorIs(t, err, model.ErrDuplicateProduct)

		found, err := uc.Lookup(ctx, "flour 1kg")
		require.NoError(t, err)
		assert.Equal(t, int64(4), found.Quantity)
	})

	t.Run("existing product mode adds", func(t *testing.T) {
		result, err := uc.ReceiveMerchandise(ctx, &dto.ReceiveInput{
			Mode: dto.ModeExistingProduct, Name: "flour 1kg", Quantity: 6,
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, int64(10), result.NewQuantity)
	})

	t.Run("existing product mode does not create", func(t *testing.T) {
		_, err := uc.ReceiveMerchandise(ctx, &dto.ReceiveInput{
			Mode: dto.ModeExistingProduct, Name: "ghost", Quantity: 1,
		})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := uc.ReceiveMerchandise(ctx, &dto.ReceiveInput{
			Mode: "guess", Name: "flour 1kg", Quantity: 1,
		})
		assert.Error(t, err)
	})
}
