package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mlefevre-dev/vitrine-backend/internal/products"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
)

type stubProductsService struct {
	lastFilter products.ListFilter
	lastInput  products.ProductInput
	items      []models.Product
}

func (s *stubProductsService) List(_ context.Context, filter products.ListFilter) ([]models.Product, error) {
	s.lastFilter = filter
	return s.items, nil
}

func (s *stubProductsService) Get(_ context.Context, id uint) (*models.Product, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *stubProductsService) Create(_ context.Context, input products.ProductInput) (*models.Product, error) {
	s.lastInput = input
	return &models.Product{ID: 1, Name: input.Name, Price: input.Price}, nil
}

func (s *stubProductsService) Update(_ context.Context, id uint, input products.ProductInput) (*models.Product, error) {
	s.lastInput = input
	return &models.Product{ID: id, Name: input.Name, Price: input.Price}, nil
}

func (s *stubProductsService) Delete(context.Context, uint) error { return nil }

func newProductsRouter(svc products.Service) chi.Router {
	logg := testLogger()
	r := chi.NewRouter()
	r.Get("/products", ProductsList(svc, logg))
	r.Get("/products/{id}", ProductsGet(svc, logg))
	r.Post("/products", ProductsCreate(svc, logg))
	r.Put("/products/{id}", ProductsUpdate(svc, logg))
	r.Delete("/products/{id}", ProductsDelete(svc, logg))
	return r
}

func TestProductsListParsesFilters(t *testing.T) {
	svc := &stubProductsService{}
	r := newProductsRouter(svc)

	rec := doJSON(t, r, http.MethodGet, "/products?category=terroir&active=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastFilter.Category == nil || *svc.lastFilter.Category != "terroir" {
		t.Fatalf("expected category filter, got %+v", svc.lastFilter)
	}
	if svc.lastFilter.Active == nil || !*svc.lastFilter.Active {
		t.Fatalf("expected active filter true, got %+v", svc.lastFilter)
	}
	if svc.lastFilter.Featured != nil {
		t.Fatalf("featured filter must stay unset when absent")
	}
}

func TestProductsCreateParsesDecimalPrice(t *testing.T) {
	svc := &stubProductsService{}
	r := newProductsRouter(svc)

	rec := doJSON(t, r, http.MethodPost, "/products",
		`{"name":"Confiture","description":"artisanale","price":"7.90","category":"terroir"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !svc.lastInput.Price.Equal(decimal.RequireFromString("7.90")) {
		t.Fatalf("expected exact decimal price, got %s", svc.lastInput.Price)
	}
}

func TestProductsCreateRejectsBadPrice(t *testing.T) {
	r := newProductsRouter(&stubProductsService{})

	rec := doJSON(t, r, http.MethodPost, "/products",
		`{"name":"Confiture","description":"artisanale","price":"sept","category":"terroir"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-decimal price, got %d", rec.Code)
	}
}

func TestProductsGetMissing(t *testing.T) {
	r := newProductsRouter(&stubProductsService{})

	rec := doJSON(t, r, http.MethodGet, "/products/7", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
