// Package routepath stores canonical HTTP paths for storefront modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	Support        = "/support"
	Health         = "/up"
	Login          = "/login"
	Register       = "/register"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password"
	Logout         = "/logout"
	Static         = "/static/"

	Products               = "/products"
	ProductsPrefix         = "/products/"
	ProductPattern         = ProductsPrefix + "{productID}"
	ProductsQueryKey       = "q"
	ProductsCategoryKey    = "category"
	ResetPasswordTokenKey  = "token"
	OrdersStatusQueryKey   = "status"
	AdminUsersRoleQueryKey = "role"
	AdminUsersSearchKey    = "q"

	AppPrefix       = "/app/"
	AppDashboard    = "/app/dashboard"
	DashboardPrefix = "/app/dashboard/"
	DashboardRole   = DashboardPrefix + "{role}"

	AppCart                  = "/app/cart"
	CartPrefix               = "/app/cart/"
	AppCartClear             = CartPrefix + "clear"
	AppCartCheckout          = CartPrefix + "checkout"
	AppCartItemPattern       = CartPrefix + "items/{productID}"
	AppCartItemQtyPattern    = CartPrefix + "items/{productID}/quantity"
	AppCartItemRemovePattern = CartPrefix + "items/{productID}/remove"

	AppWishlist                  = "/app/wishlist"
	WishlistPrefix               = "/app/wishlist/"
	AppWishlistClear             = WishlistPrefix + "clear"
	AppWishlistItemPattern       = WishlistPrefix + "items/{productID}"
	AppWishlistItemRemovePattern = WishlistPrefix + "items/{productID}/remove"
	AppWishlistItemMovePattern   = WishlistPrefix + "items/{productID}/move-to-cart"

	AppOrders          = "/app/orders"
	OrdersPrefix       = "/app/orders/"
	AppOrderPattern    = OrdersPrefix + "{orderID}"
	AppProfile         = "/app/profile"
	ProfilePrefix      = "/app/profile/"
	AppProfileEdit     = ProfilePrefix + "edit"
	VendorPrefix       = "/app/vendor/"
	AppVendorProducts  = VendorPrefix + "products"
	AppVendorNew       = VendorPrefix + "products/new"
	AppVendorEditPat   = VendorPrefix + "products/{productID}/edit"
	AppVendorDeletePat = VendorPrefix + "products/{productID}/delete"
	AppVendorInventory = VendorPrefix + "inventory"
	AppVendorSettings  = VendorPrefix + "settings"

	AdminPrefix           = "/app/admin/"
	AppAdminUsers         = AdminPrefix + "users"
	AppAdminUserTogglePat = AdminPrefix + "users/{userID}/toggle-status"
	AppAdminUserDeletePat = AdminPrefix + "users/{userID}/delete"
	AppAdminUserRolePat   = AdminPrefix + "users/{userID}/role"
)

// Product returns the public product detail route.
func Product(productID string) string {
	return ProductsPrefix + escapeSegment(productID)
}

// ProductsSearch returns the product listing route with optional filters.
func ProductsSearch(query string, category string) string {
	values := url.Values{}
	if query = strings.TrimSpace(query); query != "" {
		values.Set(ProductsQueryKey, query)
	}
	if category = strings.TrimSpace(category); category != "" {
		values.Set(ProductsCategoryKey, category)
	}
	return withQuery(Products, values)
}

// ResetPasswordWithToken returns the reset-password route for token.
func ResetPasswordWithToken(token string) string {
	values := url.Values{}
	values.Set(ResetPasswordTokenKey, strings.TrimSpace(token))
	return withQuery(ResetPassword, values)
}

// Dashboard returns the dashboard route for role.
func Dashboard(role string) string {
	return DashboardPrefix + escapeSegment(role)
}

// AppCartItem returns the add-to-cart route.
func AppCartItem(productID string) string {
	return CartPrefix + "items/" + escapeSegment(productID)
}

// AppCartItemQuantity returns the cart quantity update route.
func AppCartItemQuantity(productID string) string {
	return AppCartItem(productID) + "/quantity"
}

// AppCartItemRemove returns the cart remove route.
func AppCartItemRemove(productID string) string {
	return AppCartItem(productID) + "/remove"
}

// AppWishlistItem returns the add-to-wishlist route.
func AppWishlistItem(productID string) string {
	return WishlistPrefix + "items/" + escapeSegment(productID)
}

// AppWishlistItemRemove returns the wishlist remove route.
func AppWishlistItemRemove(productID string) string {
	return AppWishlistItem(productID) + "/remove"
}

// AppWishlistItemMoveToCart returns the wishlist move-to-cart route.
func AppWishlistItemMoveToCart(productID string) string {
	return AppWishlistItem(productID) + "/move-to-cart"
}

// AppOrder returns the order detail route.
func AppOrder(orderID string) string {
	return OrdersPrefix + escapeSegment(orderID)
}

// AppOrdersByStatus returns the order list filtered by status.
func AppOrdersByStatus(status string) string {
	values := url.Values{}
	if status = strings.TrimSpace(status); status != "" {
		values.Set(OrdersStatusQueryKey, status)
	}
	return withQuery(AppOrders, values)
}

// AppVendorProductEdit returns the vendor product edit route.
func AppVendorProductEdit(productID string) string {
	return VendorPrefix + "products/" + escapeSegment(productID) + "/edit"
}

// AppVendorProductDelete returns the vendor product delete route.
func AppVendorProductDelete(productID string) string {
	return VendorPrefix + "products/" + escapeSegment(productID) + "/delete"
}

// AppAdminUserToggle returns the admin toggle-status route.
func AppAdminUserToggle(userID string) string {
	return AdminPrefix + "users/" + escapeSegment(userID) + "/toggle-status"
}

// AppAdminUserDelete returns the admin delete route.
func AppAdminUserDelete(userID string) string {
	return AdminPrefix + "users/" + escapeSegment(userID) + "/delete"
}

// AppAdminUserRole returns the admin role-change route.
func AppAdminUserRole(userID string) string {
	return AdminPrefix + "users/" + escapeSegment(userID) + "/role"
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
