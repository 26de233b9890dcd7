package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	productsvc "github.com/KSunShin4/EcoMart/internal/products"
	"github.com/KSunShin4/EcoMart/pkg/enums"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
	"github.com/KSunShin4/EcoMart/pkg/types"
)

type stubProductService struct {
	list     *productsvc.ProductListDTO
	detail   *productsvc.ProductDTO
	err      error
	gotInput productsvc.ListProductsInput
	gotID    uuid.UUID
}

func (s *stubProductService) ListProducts(_ context.Context, input productsvc.ListProductsInput) (*productsvc.ProductListDTO, error) {
	s.gotInput = input
	return s.list, s.err
}

func (s *stubProductService) GetProduct(_ context.Context, id uuid.UUID) (*productsvc.ProductDTO, error) {
	s.gotID = id
	return s.detail, s.err
}

func (s *stubProductService) ListFeatured(context.Context) ([]productsvc.ProductDTO, error) {
	return nil, s.err
}

func (s *stubProductService) ListFlashSale(context.Context) ([]productsvc.ProductDTO, error) {
	return nil, s.err
}

func (s *stubProductService) ListCategories(context.Context) ([]productsvc.CategoryDTO, error) {
	return nil, s.err
}

func (s *stubProductService) ListBanners(context.Context) ([]productsvc.BannerDTO, error) {
	return nil, s.err
}

func (s *stubProductService) ListReviews(context.Context, uuid.UUID) ([]productsvc.ReviewDTO, error) {
	return nil, s.err
}

func TestProductListForwardsQueryKnobs(t *testing.T) {
	svc := &stubProductService{list: &productsvc.ProductListDTO{Products: []productsvc.ProductDTO{}, Page: 2, Limit: 20}}
	handler := ProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?type=fresh&season=summer&minPrice=10000&sortBy=price&order=asc&page=2&limit=20", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	input := svc.gotInput
	if len(input.Filters.Types) != 1 || input.Filters.Types[0] != enums.ProductTypeFresh {
		t.Fatalf("unexpected types %v", input.Filters.Types)
	}
	if len(input.Filters.Seasons) != 1 || input.Filters.Seasons[0] != enums.SeasonSummer {
		t.Fatalf("unexpected seasons %v", input.Filters.Seasons)
	}
	if input.Filters.MinPrice == nil || *input.Filters.MinPrice != 10000 {
		t.Fatalf("unexpected min price %v", input.Filters.MinPrice)
	}
	if input.Sort.Field != enums.SortFieldPrice || input.Sort.Order != enums.SortOrderAsc {
		t.Fatalf("unexpected sort %+v", input.Sort)
	}
	if input.Pagination.Page != 2 || input.Pagination.Limit != 20 {
		t.Fatalf("unexpected pagination %+v", input.Pagination)
	}
}

func TestProductListRejectsBadQuery(t *testing.T) {
	handler := ProductList(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?season=monsoon", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductDetailMapsNotFound(t *testing.T) {
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := ProductDetail(svc, nil)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", id.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if svc.gotID != id {
		t.Fatalf("expected id %s forwarded, got %s", id, svc.gotID)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected code %s", body.Error.Code)
	}
}

func TestProductDetailRejectsMalformedID(t *testing.T) {
	handler := ProductDetail(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
