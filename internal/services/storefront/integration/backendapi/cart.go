package backendapi

import (
	"context"
	"net/http"
	"strconv"
)

var cartWrappers = []string{"items", "cartItems", "data"}

// Cart returns the buyer cart. An empty body is an empty cart.
func (c *Client) Cart(ctx context.Context, token string) ([]CartItem, error) {
	resp, err := c.do(ctx, request{operation: "buyer.cart", method: http.MethodGet, path: "/api/buyer/cart", token: token})
	if err != nil {
		return nil, err
	}
	raw := listItems(resp.body, cartWrappers...)
	items := make([]CartItem, 0, len(raw))
	for _, item := range raw {
		items = append(items, normalizeCartItem(item))
	}
	return items, nil
}

// AddToCart adds qty units of a product.
func (c *Client) AddToCart(ctx context.Context, token string, productID string, qty int) error {
	path := "/api/buyer/cart/add/" + pathID(productID) + "/" + strconv.Itoa(qty)
	_, err := c.do(ctx, request{operation: "buyer.cart_add", method: http.MethodPost, path: path, token: token})
	return err
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, token string, productID string, qty int) error {
	path := "/api/buyer/cart/update/" + pathID(productID) + "/" + strconv.Itoa(qty)
	_, err := c.do(ctx, request{operation: "buyer.cart_update", method: http.MethodPut, path: path, token: token})
	return err
}

// RemoveCartItem drops a product from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, token string, productID string) error {
	_, err := c.do(ctx, request{operation: "buyer.cart_remove", method: http.MethodDelete, path: "/api/buyer/cart/remove/" + pathID(productID), token: token})
	return err
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	_, err := c.do(ctx, request{operation: "buyer.cart_clear", method: http.MethodDelete, path: "/api/buyer/cart/clear", token: token})
	return err
}

// Wishlist returns the buyer's saved products.
func (c *Client) Wishlist(ctx context.Context, token string) ([]WishlistItem, error) {
	resp, err := c.do(ctx, request{operation: "buyer.wishlist", method: http.MethodGet, path: "/api/buyer/wishlist", token: token})
	if err != nil {
		return nil, err
	}
	raw := listItems(resp.body, "items", "wishlistItems", "data")
	items := make([]WishlistItem, 0, len(raw))
	for _, item := range raw {
		items = append(items, normalizeWishlistItem(item))
	}
	return items, nil
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, token string, productID string) error {
	_, err := c.do(ctx, request{operation: "buyer.wishlist_add", method: http.MethodPost, path: "/api/buyer/wishlist/add/" + pathID(productID), token: token})
	return err
}

// RemoveFromWishlist drops a saved product.
func (c *Client) RemoveFromWishlist(ctx context.Context, token string, productID string) error {
	_, err := c.do(ctx, request{operation: "buyer.wishlist_remove", method: http.MethodDelete, path: "/api/buyer/wishlist/remove/" + pathID(productID), token: token})
	return err
}

// ClearWishlist empties the wishlist.
func (c *Client) ClearWishlist(ctx context.Context, token string) error {
	_, err := c.do(ctx, request{operation: "buyer.wishlist_clear", method: http.MethodDelete, path: "/api/buyer/wishlist/clear", token: token})
	return err
}
