package backendapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Field lookup orders. The first present, non-null value wins.
var (
	idPaths           = []string{"id", "Id", "ID"}
	productIDPaths    = []string{"productId", "ProductId", "ProductID", "product_id", "product.id"}
	productNamePaths  = []string{"productName", "ProductName", "name", "Name", "product.name", "product.Name"}
	productImagePaths = []string{"productImage", "ProductImage", "imageUrl", "ImageUrl", "image_url", "product.imageUrl", "product.imageUrls.0"}
	pricePaths        = []string{"price", "Price", "product.price", "product.Price"}
	quantityPaths     = []string{"quantity", "Quantity", "count", "Count"}
	stockPaths        = []string{"stock", "Stock", "product.stock", "product.Stock"}
	descriptionPaths  = []string{"productDescription", "description", "Description", "product.description", "product.Description"}
	categoryPaths     = []string{"category", "Category", "product.category", "product.Category"}
	addedAtPaths      = []string{"addedAt", "AddedAt", "createdAt", "CreatedAt"}
	activePaths       = []string{"isActive", "IsActive", "active"}
	createdAtPaths    = []string{"createdAt", "CreatedAt"}
)

// UnknownProductName labels items whose name the backend omitted.
const UnknownProductName = "Unknown Product"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

func first(obj gjson.Result, paths ...string) gjson.Result {
	for _, path := range paths {
		if r := obj.Get(path); present(r) {
			return r
		}
	}
	return gjson.Result{}
}

func firstString(obj gjson.Result, paths ...string) string {
	for _, path := range paths {
		r := obj.Get(path)
		if !present(r) {
			continue
		}
		if value := strings.TrimSpace(r.String()); value != "" {
			return value
		}
	}
	return ""
}

// firstText is firstString restricted to JSON string values.
func firstText(obj gjson.Result, paths ...string) string {
	for _, path := range paths {
		r := obj.Get(path)
		if r.Type != gjson.String {
			continue
		}
		if value := strings.TrimSpace(r.Str); value != "" {
			return value
		}
	}
	return ""
}

func firstFloat(obj gjson.Result, paths ...string) (float64, bool) {
	for _, path := range paths {
		r := obj.Get(path)
		switch r.Type {
		case gjson.Number:
			return r.Float(), true
		case gjson.String:
			if value, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
				return value, true
			}
		}
	}
	return 0, false
}

func firstInt(obj gjson.Result, fallback int, paths ...string) int {
	value, ok := firstFloat(obj, paths...)
	if !ok {
		return fallback
	}
	return int(value)
}

func firstBool(obj gjson.Result, fallback bool, paths ...string) bool {
	r := first(obj, paths...)
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.String:
		if value, err := strconv.ParseBool(strings.TrimSpace(r.Str)); err == nil {
			return value
		}
	}
	return fallback
}

func firstTime(obj gjson.Result, paths ...string) time.Time {
	for _, path := range paths {
		r := obj.Get(path)
		switch r.Type {
		case gjson.String:
			if t, ok := parseTime(r.Str); ok {
				return t
			}
		case gjson.Number:
			if ms := r.Int(); ms > 0 {
				return time.UnixMilli(ms).UTC()
			}
		case gjson.JSON:
			// Java LocalDateTime arrays: [yyyy, mm, dd, hh, mi, ss].
			if parts := r.Array(); r.IsArray() && len(parts) >= 3 {
				values := make([]int, 6)
				for i := 0; i < len(parts) && i < 6; i++ {
					values[i] = int(parts[i].Int())
				}
				return time.Date(values[0], time.Month(values[1]), values[2], values[3], values[4], values[5], 0, time.UTC)
			}
		}
	}
	return time.Time{}
}

func parseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// listItems returns the array at the top of body or under one of wrappers.
// An empty body is an empty list.
func listItems(body []byte, wrappers ...string) []gjson.Result {
	text := strings.TrimSpace(string(body))
	if text == "" || !gjson.Valid(text) {
		return nil
	}
	parsed := gjson.Parse(text)
	if parsed.IsArray() {
		return parsed.Array()
	}
	if !parsed.IsObject() {
		return nil
	}
	for _, wrapper := range wrappers {
		if nested := parsed.Get(wrapper); nested.IsArray() {
			return nested.Array()
		}
	}
	return nil
}

// parseObject returns the JSON object in body, unwrapping one of wrappers
// when present.
func parseObject(body []byte, wrappers ...string) (gjson.Result, bool) {
	text := strings.TrimSpace(string(body))
	if text == "" || !gjson.Valid(text) {
		return gjson.Result{}, false
	}
	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return gjson.Result{}, false
	}
	for _, wrapper := range wrappers {
		if nested := parsed.Get(wrapper); nested.IsObject() {
			return nested, true
		}
	}
	return parsed, true
}

func normalizeProduct(obj gjson.Result) Product {
	price, _ := firstFloat(obj, "price", "Price")
	return Product{
		ID:          firstString(obj, idPaths...),
		Name:        firstString(obj, "name", "Name", "productName"),
		Description: firstString(obj, "description", "Description"),
		Category:    firstString(obj, "category", "Category"),
		Price:       price,
		Stock:       firstInt(obj, 0, "stock", "Stock", "quantity"),
		ImageURL:    firstString(obj, "imageUrls.0", "ImageUrls.0", "imageUrl", "ImageUrl", "image_url"),
		VendorName:  firstString(obj, "vendorName", "vendor.name", "seller.name", "vendor.businessName", "sellerName"),
	}
}

func normalizeCartItem(obj gjson.Result) CartItem {
	price, _ := firstFloat(obj, pricePaths...)
	name := firstString(obj, productNamePaths...)
	if name == "" {
		name = UnknownProductName
	}
	return CartItem{
		ID:           firstString(obj, idPaths...),
		ProductID:    firstString(obj, productIDPaths...),
		ProductName:  name,
		ProductImage: firstString(obj, productImagePaths...),
		Price:        price,
		Quantity:     firstInt(obj, 1, quantityPaths...),
		Stock:        firstInt(obj, 0, stockPaths...),
	}
}

func normalizeWishlistItem(obj gjson.Result) WishlistItem {
	item := normalizeCartItem(obj)
	return WishlistItem{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		ProductImage: item.ProductImage,
		Price:        item.Price,
		Stock:        item.Stock,
		Description:  firstString(obj, descriptionPaths...),
		Category:     firstString(obj, categoryPaths...),
		AddedAt:      firstTime(obj, addedAtPaths...),
	}
}

func normalizeOrder(obj gjson.Result) Order {
	total, _ := firstFloat(obj, "totalAmount", "TotalAmount", "total", "totalPrice")
	order := Order{
		ID:              firstString(obj, idPaths...),
		OrderDate:       firstTime(obj, "orderDate", "OrderDate", "createdAt", "CreatedAt"),
		Status:          strings.ToUpper(firstString(obj, "status", "Status")),
		TotalAmount:     total,
		ShippingAddress: firstString(obj, "shippingAddress", "ShippingAddress"),
		PaymentMethod:   firstString(obj, "paymentMethod", "PaymentMethod"),
	}
	if order.Status == "" {
		order.Status = StatusPending
	}
	for _, raw := range first(obj, "items", "Items", "orderItems").Array() {
		price, _ := firstFloat(raw, pricePaths...)
		name := firstString(raw, productNamePaths...)
		if name == "" {
			name = UnknownProductName
		}
		order.Items = append(order.Items, OrderItem{
			ID:           firstString(raw, idPaths...),
			ProductID:    firstString(raw, productIDPaths...),
			ProductName:  name,
			ProductImage: firstString(raw, productImagePaths...),
			Quantity:     firstInt(raw, 1, quantityPaths...),
			Price:        price,
		})
	}
	if _, ok := firstFloat(obj, "totalAmount", "TotalAmount", "total", "totalPrice"); !ok {
		for _, item := range order.Items {
			order.TotalAmount += item.Price * float64(item.Quantity)
		}
	}
	return order
}

// rolePaths reads a role string, or the first element of a roles or
// authorities array whose items are strings or {"name"|"authority": ...}.
var rolePaths = []string{
	"role", "Role",
	"roles.0.name", "roles.0.authority", "roles.0",
	"authorities.0.authority", "authorities.0.name", "authorities.0",
}

func normalizeUser(obj gjson.Result) User {
	user := User{
		ID:        firstString(obj, idPaths...),
		Name:      firstString(obj, "name", "Name", "fullName"),
		Email:     firstString(obj, "email", "Email"),
		Role:      firstText(obj, rolePaths...),
		ImageURL:  firstString(obj, "imageUrl", "ImageUrl", "image_url", "profileImage"),
		IsActive:  firstBool(obj, true, activePaths...),
		CreatedAt: firstTime(obj, createdAtPaths...),
	}
	if buyer := first(obj, "buyerProfile", "BuyerProfile"); buyer.IsObject() {
		user.Buyer = &BuyerProfile{
			ShippingAddress: firstString(buyer, "shippingAddress", "ShippingAddress"),
			BillingAddress:  firstString(buyer, "billingAddress", "BillingAddress"),
			PaymentMethods:  firstString(buyer, "paymentMethods", "PaymentMethods"),
		}
	}
	if seller := first(obj, "sellerProfile", "SellerProfile", "vendorProfile"); seller.IsObject() {
		user.Seller = &SellerProfile{
			BusinessName:    firstString(seller, "businessName", "BusinessName"),
			BusinessAddress: firstString(seller, "businessAddress", "BusinessAddress"),
			ContactNumber:   firstString(seller, "contactNumber", "ContactNumber"),
		}
	}
	return user
}
