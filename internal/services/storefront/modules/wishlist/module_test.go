package wishlist

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func serve(t *testing.T, m Module, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(method, target, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestModuleIdentity(t *testing.T) {
	t.Parallel()

	m := New()
	if m.ID() != "wishlist" {
		t.Fatalf("ID() = %q, want %q", m.ID(), "wishlist")
	}
	if diff := cmp.Diff([]string{"buyer"}, m.AllowedRoles()); diff != "" {
		t.Fatalf("AllowedRoles() mismatch (-want +got):\n%s", diff)
	}
}

func TestWishlistPageListsItems(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{items: []Item{
		{ProductID: "p1", Name: "Rain Jacket", Price: 120, Stock: 4, AddedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ProductID: "p2", Name: "Wool Socks", Price: 12, Stock: 0},
	}}
	rr := serve(t, NewWithGateway(gateway, testBase()), http.MethodGet, routepath.AppWishlist, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Rain Jacket") || !strings.Contains(body, `action="/app/wishlist/items/p1/move-to-cart"`) {
		t.Fatalf("wishlist page missing item actions: %q", body)
	}
	if strings.Contains(body, `action="/app/wishlist/items/p2/move-to-cart"`) {
		t.Fatal("out-of-stock item offers move to cart")
	}
}

func TestAddRedirectsToSameHostReferer(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	header := http.Header{"Referer": {"http://example.com/products?q=jacket"}}
	rr := serve(t, NewWithGateway(gateway, testBase()), http.MethodPost, routepath.AppWishlistItem("p1"), header)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/products?q=jacket" {
		t.Fatalf("Location = %q, want %q", got, "/products?q=jacket")
	}
	if diff := cmp.Diff([]string{"add:p1"}, gateway.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestMutationsRedirectToWishlist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		want   []string
	}{
		{target: routepath.AppWishlistItemRemove("p1"), want: []string{"remove:p1"}},
		{target: routepath.AppWishlistItemMoveToCart("p1"), want: []string{"cart:p1:1", "remove:p1"}},
		{target: routepath.AppWishlistClear, want: []string{"clear"}},
	}
	for _, tc := range tests {
		gateway := &fakeGateway{}
		rr := serve(t, NewWithGateway(gateway, testBase()), http.MethodPost, tc.target, nil)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s status = %d, want %d", tc.target, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != routepath.AppWishlist {
			t.Fatalf("%s Location = %q", tc.target, got)
		}
		if diff := cmp.Diff(tc.want, gateway.calls); diff != "" {
			t.Fatalf("%s calls mismatch (-want +got):\n%s", tc.target, diff)
		}
	}
}
