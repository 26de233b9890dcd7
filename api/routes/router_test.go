package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/KSunShin4/EcoMart/internal/auth"
	cartsvc "github.com/KSunShin4/EcoMart/internal/cart"
	ordersvc "github.com/KSunShin4/EcoMart/internal/orders"
	productsvc "github.com/KSunShin4/EcoMart/internal/products"
	searchsvc "github.com/KSunShin4/EcoMart/internal/search"
	usersvc "github.com/KSunShin4/EcoMart/internal/users"
	wishlistsvc "github.com/KSunShin4/EcoMart/internal/wishlist"
	pkgauth "github.com/KSunShin4/EcoMart/pkg/auth"
	"github.com/KSunShin4/EcoMart/pkg/config"
	"github.com/KSunShin4/EcoMart/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) RequestOTP(context.Context, string, string) (*authsvc.RequestOTPResult, error) {
	return &authsvc.RequestOTPResult{ExpiresIn: 300}, nil
}

func (stubAuthService) VerifyOTP(context.Context, string, string) (*authsvc.SessionDTO, error) {
	return &authsvc.SessionDTO{Token: "token"}, nil
}

type stubProductService struct{}

func (stubProductService) ListProducts(context.Context, productsvc.ListProductsInput) (*productsvc.ProductListDTO, error) {
	return &productsvc.ProductListDTO{Products: []productsvc.ProductDTO{}, Page: 1, Limit: 10}, nil
}

func (stubProductService) GetProduct(context.Context, uuid.UUID) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{Name: "Chuối già"}, nil
}

func (stubProductService) ListFeatured(context.Context) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{}, nil
}

func (stubProductService) ListFlashSale(context.Context) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{}, nil
}

func (stubProductService) ListCategories(context.Context) ([]productsvc.CategoryDTO, error) {
	return []productsvc.CategoryDTO{}, nil
}

func (stubProductService) ListBanners(context.Context) ([]productsvc.BannerDTO, error) {
	return []productsvc.BannerDTO{}, nil
}

func (stubProductService) ListReviews(context.Context, uuid.UUID) ([]productsvc.ReviewDTO, error) {
	return []productsvc.ReviewDTO{}, nil
}

type stubSearchService struct{}

func (stubSearchService) Search(context.Context, *uuid.UUID, searchsvc.SearchInput) (*productsvc.ProductListDTO, error) {
	return &productsvc.ProductListDTO{Products: []productsvc.ProductDTO{}, Page: 1, Limit: 10}, nil
}

func (stubSearchService) Suggest(context.Context, *uuid.UUID, string) ([]string, error) {
	return []string{"mít sấy"}, nil
}

func (stubSearchService) History(context.Context, uuid.UUID) ([]searchsvc.HistoryDTO, error) {
	return []searchsvc.HistoryDTO{}, nil
}

func (stubSearchService) DeleteHistory(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (stubSearchService) ClearHistory(context.Context, uuid.UUID) error {
	return nil
}

type stubCartService struct{}

func (stubCartService) GetCart(context.Context, uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.Item{}}, nil
}

func (stubCartService) AddItem(context.Context, uuid.UUID, uuid.UUID, int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.Item{}}, nil
}

func (stubCartService) UpdateQuantity(context.Context, uuid.UUID, uuid.UUID, int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.Item{}}, nil
}

func (stubCartService) RemoveItem(context.Context, uuid.UUID, uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.Item{}}, nil
}

func (stubCartService) Clear(context.Context, uuid.UUID) error {
	return nil
}

type stubWishlistService struct{}

func (stubWishlistService) GetWishlist(context.Context, uuid.UUID) ([]wishlistsvc.WishlistItemDTO, error) {
	return []wishlistsvc.WishlistItemDTO{}, nil
}

func (stubWishlistService) AddItem(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (stubWishlistService) RemoveItem(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (stubWishlistService) Contains(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

type stubOrderService struct{}

func (stubOrderService) Checkout(context.Context, uuid.UUID, ordersvc.CheckoutInput) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}

func (stubOrderService) GetOrder(context.Context, uuid.UUID, uuid.UUID) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}

func (stubOrderService) ListOrders(context.Context, uuid.UUID) ([]ordersvc.OrderDTO, error) {
	return []ordersvc.OrderDTO{}, nil
}

func (stubOrderService) CancelOrder(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubUserService struct{}

func (stubUserService) GetProfile(context.Context, uuid.UUID) (*usersvc.UserDTO, error) {
	return &usersvc.UserDTO{Phone: "+84912345678"}, nil
}

func (stubUserService) UpdateProfile(context.Context, uuid.UUID, usersvc.UpdateProfileInput) (*usersvc.UserDTO, error) {
	return &usersvc.UserDTO{}, nil
}

func (stubUserService) ListAddresses(context.Context, uuid.UUID) ([]usersvc.AddressDTO, error) {
	return []usersvc.AddressDTO{}, nil
}

func (stubUserService) CreateAddress(context.Context, uuid.UUID, usersvc.AddressInput) (*usersvc.AddressDTO, error) {
	return &usersvc.AddressDTO{}, nil
}

func (stubUserService) UpdateAddress(context.Context, uuid.UUID, uuid.UUID, usersvc.AddressInput) (*usersvc.AddressDTO, error) {
	return &usersvc.AddressDTO{}, nil
}

func (stubUserService) DeleteAddress(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	return NewRouter(testConfig(), nil, stubPinger{}, stubPinger{}, nil, nil, Services{
		Auth:     stubAuthService{},
		Products: stubProductService{},
		Search:   stubSearchService{},
		Cart:     stubCartService{},
		Wishlist: stubWishlistService{},
		Orders:   stubOrderService{},
		Users:    stubUserService{},
	})
}

func mintToken(t *testing.T) string {
	t.Helper()

	token, err := pkgauth.MintAccessToken(testConfig().JWT, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Phone:  "+84912345678",
	})
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	return token
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterPublicCatalogRoutes(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/api/v1/products",
		"/api/v1/products/featured",
		"/api/v1/products/flash-sale",
		"/api/v1/categories",
		"/api/v1/banners",
		"/api/v1/search?q=m%C3%ADt",
		"/api/v1/search/suggest?q=m",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d: %s", path, resp.Code, resp.Body.String())
		}

		var body types.SuccessEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decoding envelope: %v", path, err)
		}
	}
}

func TestRouterPrivateRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/api/v1/me",
		"/api/v1/me/cart",
		"/api/v1/me/wishlist",
		"/api/v1/me/orders",
		"/api/v1/me/search-history",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", path, resp.Code)
		}
	}
}

func TestRouterPrivateRoutesWithToken(t *testing.T) {
	router := newTestRouter(t)
	token := mintToken(t)

	paths := []string{
		"/api/v1/me",
		"/api/v1/me/cart",
		"/api/v1/me/wishlist",
		"/api/v1/me/orders",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
