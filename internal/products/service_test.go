package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/platform/httpx"
)

func newTestService() (*Service, *memoryRepo) {
	repo := newMemoryRepo()
	return NewService(repo, nil, nil), repo
}

func TestCreateAssignsUniqueIDsAndAppliesDefaults(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, ProductInput{Name: "Hay Net", Category: "Horse Care", Price: ptr(0.0), Quantity: ptr(0), Description: "Slow feeder", Image: "🌾"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "", first.Description)
	assert.Equal(t, DefaultImage, first.Image)
	assert.Equal(t, "🌾", second.Image)
	assert.Zero(t, second.Price)
	assert.Zero(t, second.Quantity)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0])
	assert.Equal(t, first, list[1])
}

func TestCreateRejectsMissingFields(t *testing.T) {
	cases := map[string]func(*ProductInput){
		"name":       func(in *ProductInput) { in.Name = "" },
		"blank name": func(in *ProductInput) { in.Name = "   " },
		"category":   func(in *ProductInput) { in.Category = "" },
		"price":      func(in *ProductInput) { in.Price = nil },
		"quantity":   func(in *ProductInput) { in.Quantity = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo := newTestService()
			in := validInput()
			mutate(&in)

			_, err := svc.Create(context.Background(), in)
			require.ErrorIs(t, err, httpx.ErrValidation)
			require.ErrorIs(t, err, ErrMissingFields)

			count, _ := repo.Count(context.Background())
			assert.Zero(t, count)
		})
	}
}

func TestCreateRejectsNegativeValues(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := validInput()
	in.Price = ptr(-1.0)
	_, err := svc.Create(ctx, in)
	require.ErrorIs(t, err, ErrNegativePrice)

	in = validInput()
	in.Quantity = ptr(-4)
	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestCreateWrapsStoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.insertErr = errStoreDown

	_, err := svc.Create(context.Background(), validInput())
	require.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, httpx.ErrValidation)
	assert.NotErrorIs(t, err, httpx.ErrNotFound)
	assert.Contains(t, err.Error(), "products: create")
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, httpx.ErrNotFound)

	_, err = svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ProductInput{Name: "Old", Category: "Tack", Price: ptr(10.0), Quantity: ptr(1), Description: "old", Image: "🐴"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ProductInput{Name: "New", Category: "Apparel", Price: ptr(12.5), Quantity: ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, Product{ID: created.ID, Name: "New", Category: "Apparel", Price: 12.5, Quantity: 7, Description: "", Image: DefaultImage}, updated)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateMissingIDNeverCreates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Update(ctx, 99, validInput())
	require.ErrorIs(t, err, ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateValidatesBeforeLookup(t *testing.T) {
	svc, _ := newTestService()
	in := validInput()
	in.Category = ""
	_, err := svc.Update(context.Background(), 99, in)
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateQuantityChangesOnlyQuantity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ProductInput{Name: "Riding Crop", Category: "Training", Price: ptr(18.99), Quantity: ptr(104), Description: "Flexible riding crop", Image: "🏏"})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, created.ID, QuantityInput{Quantity: ptr(3)})
	require.NoError(t, err)

	expected := created
	expected.Quantity = 3
	assert.Equal(t, expected, updated)
}

func TestUpdateQuantityValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, created.ID, QuantityInput{})
	require.ErrorIs(t, err, ErrQuantityRequired)

	_, err = svc.UpdateQuantity(ctx, created.ID, QuantityInput{Quantity: ptr(-1)})
	require.ErrorIs(t, err, ErrNegativeQuantity)

	_, err = svc.UpdateQuantity(ctx, created.ID+100, QuantityInput{Quantity: ptr(1)})
	require.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestDeleteTwiceYieldsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, first.ID))

	second, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestListStoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.listErr = errStoreDown

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, errStoreDown)
}

func TestSeedThenCreateEndToEnd(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	inserted, err := NewSeeder(repo, nil, nil).Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 20, inserted)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 20)
	for i := 1; i < len(list); i++ {
		require.Greater(t, list[i-1].ID, list[i].ID)
	}
	assert.Equal(t, "Stirrups Safety Release", list[0].Name)

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(21), created.ID)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 21)
	assert.Equal(t, created, list[0])
}
