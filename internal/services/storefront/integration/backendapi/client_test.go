package backendapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
)

type recordedRequest struct {
	Method      string
	Path        string
	Auth        string
	RequestID   string
	ContentType string
	Body        string
}

func newTestClient(t *testing.T, status int, body string) (*Client, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		seen = append(seen, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			Auth:        r.Header.Get("Authorization"),
			RequestID:   r.Header.Get(httpx.RequestIDHeader),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(raw),
		})
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	client, err := New(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, &seen
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "localhost:8080", "ftp://backend", "http://"} {
		if _, err := New(Config{BaseURL: raw}); err == nil {
			t.Fatalf("New(%q) error = nil, want error", raw)
		}
	}
}

func TestDoSendsBearerTokenAndRequestID(t *testing.T) {
	t.Parallel()

	client, seen := newTestClient(t, http.StatusOK, "[]")
	ctx := context.Background()
	handler := httpx.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpx.RequestIDHeader, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if _, err := client.Cart(ctx, "tok-1"); err != nil {
		t.Fatalf("Cart() error = %v", err)
	}
	if len(*seen) != 1 {
		t.Fatalf("requests = %d, want 1", len(*seen))
	}
	got := (*seen)[0]
	if got.Auth != "Bearer tok-1" {
		t.Fatalf("Authorization = %q, want %q", got.Auth, "Bearer tok-1")
	}
	if got.RequestID != "req-42" {
		t.Fatalf("X-Request-ID = %q, want %q", got.RequestID, "req-42")
	}
	if got.Method != http.MethodGet || got.Path != "/api/buyer/cart" {
		t.Fatalf("request = %s %s", got.Method, got.Path)
	}
}

func TestStatusErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		kind    apperrors.Kind
		message string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, kind: apperrors.KindUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, kind: apperrors.KindUnauthorized},
		{name: "not found", status: http.StatusNotFound, kind: apperrors.KindNotFound},
		{name: "bad request json", status: http.StatusBadRequest, body: `{"message":"Stock too low"}`, kind: apperrors.KindInvalidInput, message: "Stock too low"},
		{name: "conflict error field", status: http.StatusConflict, body: `{"error":"Email already used"}`, kind: apperrors.KindInvalidInput, message: "Email already used"},
		{name: "unprocessable text", status: http.StatusUnprocessableEntity, body: "Invalid quantity", kind: apperrors.KindInvalidInput, message: "Invalid quantity"},
		{name: "bad request html", status: http.StatusBadRequest, body: "<html>oops</html>", kind: apperrors.KindInvalidInput},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", kind: apperrors.KindUnavailable},
		{name: "teapot", status: http.StatusTeapot, kind: apperrors.KindUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, tc.status, tc.body)
			err := client.ClearCart(context.Background(), "tok")
			if got := apperrors.KindOf(err); got != tc.kind {
				t.Fatalf("KindOf() = %v, want %v", got, tc.kind)
			}
			if got := apperrors.PublicMessage(err); got != tc.message {
				t.Fatalf("PublicMessage() = %q, want %q", got, tc.message)
			}
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client, err := New(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.Orders(context.Background(), "tok")
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("KindOf() = %v, want %v", got, apperrors.KindUnavailable)
	}
	if got := apperrors.LocalizationKey(err); got != "errors.backend_unavailable" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "errors.backend_unavailable")
	}
}

func TestCatalogUsesCatalogBaseURL(t *testing.T) {
	t.Parallel()

	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/product/list-all" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `[{"id":1,"name":"Lamp","price":"19.5","stock":3}]`)
	}))
	t.Cleanup(catalog.Close)

	client, err := New(Config{BaseURL: "http://backend.invalid", CatalogBaseURL: catalog.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	products, err := client.ListAllProducts(context.Background())
	if err != nil {
		t.Fatalf("ListAllProducts() error = %v", err)
	}
	if len(products) != 1 || products[0].Name != "Lamp" || products[0].Price != 19.5 || products[0].ID != "1" {
		t.Fatalf("products = %+v", products)
	}
}

func TestEndpointRouting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		name   string
		call   func(*Client) error
		method string
		path   string
		body   string
	}{
		{name: "add to cart", call: func(c *Client) error { return c.AddToCart(ctx, "t", "7", 2) }, method: http.MethodPost, path: "/api/buyer/cart/add/7/2"},
		{name: "update cart", call: func(c *Client) error { return c.UpdateCartItem(ctx, "t", "7", 3) }, method: http.MethodPut, path: "/api/buyer/cart/update/7/3"},
		{name: "remove cart", call: func(c *Client) error { return c.RemoveCartItem(ctx, "t", "7") }, method: http.MethodDelete, path: "/api/buyer/cart/remove/7"},
		{name: "clear cart", call: func(c *Client) error { return c.ClearCart(ctx, "t") }, method: http.MethodDelete, path: "/api/buyer/cart/clear"},
		{name: "add wishlist", call: func(c *Client) error { return c.AddToWishlist(ctx, "t", "9") }, method: http.MethodPost, path: "/api/buyer/wishlist/add/9"},
		{name: "remove wishlist", call: func(c *Client) error { return c.RemoveFromWishlist(ctx, "t", "9") }, method: http.MethodDelete, path: "/api/buyer/wishlist/remove/9"},
		{name: "clear wishlist", call: func(c *Client) error { return c.ClearWishlist(ctx, "t") }, method: http.MethodDelete, path: "/api/buyer/wishlist/clear"},
		{name: "delete product", call: func(c *Client) error { return c.DeleteProduct(ctx, "t", "4") }, method: http.MethodDelete, path: "/api/products/delete/4"},
		{name: "toggle user", call: func(c *Client) error { return c.SetUserActive(ctx, "t", "5", false) }, method: http.MethodPut, path: "/api/admin/users/5/toggle-status", body: `{"isActive":false}`},
		{name: "delete user", call: func(c *Client) error { return c.DeleteUser(ctx, "t", "5") }, method: http.MethodDelete, path: "/api/users/5"},
		{name: "change role", call: func(c *Client) error { return c.ChangeUserRole(ctx, "t", "5", "VENDOR") }, method: http.MethodPut, path: "/api/users/5/role", body: `{"role":"VENDOR"}`},
		{name: "forgot password", call: func(c *Client) error { return c.ForgotPassword(ctx, "a@b.c") }, method: http.MethodPost, path: "/api/auth/forgot-password", body: `{"email":"a@b.c"}`},
		{name: "reset password", call: func(c *Client) error { return c.ResetPassword(ctx, "tk", "secret1") }, method: http.MethodPost, path: "/api/auth/reset-password", body: `{"newPassword":"secret1","token":"tk"}`},
		{
			name:   "register",
			call:   func(c *Client) error { return c.Register(ctx, RegisterInput{Name: "Ana", Email: "a@b.c", Password: "secret1", Role: "BUYER"}) },
			method: http.MethodPost,
			path:   "/api/auth/register",
			body:   `{"name":"Ana","email":"a@b.c","password":"secret1","role":"BUYER"}`,
		},
		{
			name:   "update product",
			call:   func(c *Client) error { return c.UpdateProduct(ctx, "t", "4", ProductInput{Name: "Mug", Price: 8, Stock: 2, Category: "Home"}) },
			method: http.MethodPut,
			path:   "/api/products/update/4",
			body:   `{"name":"Mug","description":"","price":8,"stock":2,"category":"Home"}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, seen := newTestClient(t, http.StatusOK, "")
			if err := tc.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			got := (*seen)[0]
			if got.Method != tc.method || got.Path != tc.path {
				t.Fatalf("request = %s %s, want %s %s", got.Method, got.Path, tc.method, tc.path)
			}
			if tc.body != "" && strings.TrimSpace(got.Body) != tc.body {
				t.Fatalf("body = %s, want %s", got.Body, tc.body)
			}
		})
	}
}
