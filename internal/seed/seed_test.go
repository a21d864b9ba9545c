package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/productshowcase/catalog-service/internal/product"
	"github.com/productshowcase/catalog-service/internal/product/repository"
	"github.com/stretchr/testify/require"
)

const validFixtures = `[
  {"name": "Trail Runner", "brand": "Stride", "category": "Shoes", "price": 89.99, "rating": 4.5, "createdAt": "2024-03-01T10:00:00Z"},
  {"name": "City Tote", "brand": "Carry", "category": "Bags", "price": 45}
]`

func TestDecode_Valid(t *testing.T) {
	products, err := Decode(strings.NewReader(validFixtures))
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Stride", products[0].Brand)
	require.Equal(t, 2024, products[0].CreatedAt.Year())
	require.True(t, products[1].CreatedAt.IsZero())
}

func TestDecode_ValidationErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`[
	  {"name": "", "brand": "X", "category": "Y", "price": 1},
	  {"name": "Neg", "brand": "X", "category": "Y", "price": -5, "rating": 7}
	]`))
	require.ErrorIs(t, err, ErrInvalidFixture)
	require.Contains(t, err.Error(), "#0")
	require.Contains(t, err.Error(), "name required")
	require.Contains(t, err.Error(), "price gte=0")
	require.Contains(t, err.Error(), "rating lte=5")
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"not": "an array"}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode fixtures")
}

func TestLoad(t *testing.T) {
	repo := repository.NewMemoryRepo(product.Product{Name: "Old", Brand: "A", Category: "B", Price: 1})
	products, err := Decode(strings.NewReader(validFixtures))
	require.NoError(t, err)

	n, err := Load(context.Background(), repo, products, true)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, total, err := repo.Find(context.Background(), product.DefaultListQuery())
	require.NoError(t, err)
	require.Equal(t, int64(2), total, "drop removed the existing product")

	n, err = Load(context.Background(), repo, products, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	_, total, err = repo.Find(context.Background(), product.DefaultListQuery())
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
}

func TestLoad_StoreFailure(t *testing.T) {
	repo := repository.NewMemoryRepo()
	repo.SetFailing(true)
	_, err := Load(context.Background(), repo, nil, true)
	require.ErrorIs(t, err, repository.ErrUnavailable)
}
