// Package seed loads product fixtures into the catalog store.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/productshowcase/catalog-service/internal/product"
	"github.com/productshowcase/catalog-service/internal/product/repository"
)

var validate = validator.New()

// ErrInvalidFixture is wrapped by Decode when any product fails validation.
var ErrInvalidFixture = errors.New("invalid product fixture")

// Decode reads a JSON array of products and validates every entry.
func Decode(r io.Reader) ([]product.Product, error) {
	var products []product.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	var problems []string
	for i := range products {
		if err := validate.Struct(products[i]); err != nil {
			problems = append(problems, fmt.Sprintf("#%d %q: %s", i, products[i].Name, describe(err)))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFixture, strings.Join(problems, "; "))
	}
	return products, nil
}

func describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, strings.ToLower(fe.Field())+" "+rule)
	}
	return strings.Join(parts, ", ")
}

// Load inserts products into repo. When drop is set the collection is emptied first.
func Load(ctx context.Context, repo repository.Repository, products []product.Product, drop bool) (int, error) {
	if drop {
		if _, err := repo.DeleteAll(ctx); err != nil {
			return 0, err
		}
	}
	return repo.InsertMany(ctx, products)
}
