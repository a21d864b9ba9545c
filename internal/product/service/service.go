package service

import (
	"context"
	"sort"
	"time"

	"github.com/productshowcase/catalog-service/internal/product"
	"github.com/productshowcase/catalog-service/internal/product/repository"
	"github.com/productshowcase/catalog-service/pkg/metrics"
)

// Operation labels used for store metrics.
const (
	OpList       = "list"
	OpBrands     = "brands"
	OpCategories = "categories"
)

// Service defines the catalog read operations used by the handler layer.
type Service interface {
	List(ctx context.Context, q product.ListQuery) (*product.Page, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// New returns a Service backed by repo.
func New(repo repository.Repository) Service {
	return &catalogService{repo: repo}
}

type catalogService struct {
	repo repository.Repository
}

func (s *catalogService) List(ctx context.Context, q product.ListQuery) (*product.Page, error) {
	done := observe(OpList)
	products, total, err := s.repo.Find(ctx, q)
	done(err)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []product.Product{}
	}
	return &product.Page{Products: products, TotalPages: product.TotalPages(total)}, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.facet(ctx, OpCategories, repository.FieldCategory)
}

func (s *catalogService) Brands(ctx context.Context) ([]string, error) {
	return s.facet(ctx, OpBrands, repository.FieldBrand)
}

func (s *catalogService) facet(ctx context.Context, op, field string) ([]string, error) {
	done := observe(op)
	values, err := s.repo.Distinct(ctx, field)
	done(err)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	sort.Strings(values)
	return values, nil
}

func (s *catalogService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// observe starts a latency timer for op; the returned func records the outcome.
func observe(op string) func(error) {
	start := time.Now()
	return func(err error) {
		metrics.StoreQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.StoreQueries.WithLabelValues(op, outcome).Inc()
	}
}
