package repository

import (
	"context"
	"errors"

	"github.com/productshowcase/catalog-service/internal/product"
)

// ErrUnknownField is returned by Distinct for fields that are not facets.
var ErrUnknownField = errors.New("unknown facet field")

// Facet fields supported by Distinct.
const (
	FieldBrand    = "brand"
	FieldCategory = "category"
)

// Repository provides product read operations plus the bulk insert used by the seed tool.
type Repository interface {
	// Find returns the page selected by q and the total number of matching products.
	Find(ctx context.Context, q product.ListQuery) ([]product.Product, int64, error)
	// Distinct returns the distinct string values of field across all products.
	Distinct(ctx context.Context, field string) ([]string, error)
	InsertMany(ctx context.Context, products []product.Product) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

func checkFacet(field string) error {
	if field != FieldBrand && field != FieldCategory {
		return ErrUnknownField
	}
	return nil
}
