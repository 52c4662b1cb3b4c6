package backendapi

import "time"

// Order statuses as the backend spells them.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
)

// OrderStatuses returns every known status in lifecycle order.
func OrderStatuses() []string {
	return []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

// User is a backend account.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	ImageURL  string
	IsActive  bool
	CreatedAt time.Time
	Buyer     *BuyerProfile
	Seller    *SellerProfile
}

// BuyerProfile holds buyer addresses and payment preferences.
type BuyerProfile struct {
	ShippingAddress string
	BillingAddress  string
	PaymentMethods  string
}

// BuyerProfileUpdate carries changed buyer fields. Nil fields are omitted.
type BuyerProfileUpdate struct {
	ShippingAddress *string `json:"shippingAddress,omitempty"`
	BillingAddress  *string `json:"billingAddress,omitempty"`
	PaymentMethods  *string `json:"paymentMethods,omitempty"`
}

// Empty reports whether no buyer field changed.
func (u BuyerProfileUpdate) Empty() bool {
	return u.ShippingAddress == nil && u.BillingAddress == nil && u.PaymentMethods == nil
}

// SellerProfile holds vendor business details.
type SellerProfile struct {
	BusinessName    string
	BusinessAddress string
	ContactNumber   string
}

// Product is a catalog or vendor product.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	ImageURL    string
	VendorName  string
}

// ProductInput is the vendor create and update payload.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

// CartItem is one line of the buyer cart.
type CartItem struct {
	ID           string
	ProductID    string
	ProductName  string
	ProductImage string
	Price        float64
	Quantity     int
	Stock        int
}

// LinePrice implements money.LineItem.
func (c CartItem) LinePrice() float64 { return c.Price }

// LineQuantity implements money.LineItem.
func (c CartItem) LineQuantity() int { return c.Quantity }

// WishlistItem is one saved product.
type WishlistItem struct {
	ID           string
	ProductID    string
	ProductName  string
	ProductImage string
	Description  string
	Category     string
	Price        float64
	Stock        int
	AddedAt      time.Time
}

// Order is a buyer order.
type Order struct {
	ID              string
	OrderDate       time.Time
	Status          string
	TotalAmount     float64
	Items           []OrderItem
	ShippingAddress string
	PaymentMethod   string
}

// OrderItem is one product inside an order.
type OrderItem struct {
	ID           string
	ProductID    string
	ProductName  string
	ProductImage string
	Quantity     int
	Price        float64
}

// LoginResult is the normalized login response. Token is empty when the
// backend answered with a plain-text confirmation instead of a credential.
type LoginResult struct {
	Token string
	// User is set when the backend returned a user object.
	User *User
	// RoleText is the role marker found in a plain-text response.
	RoleText string
}

// RegisterInput is the sign-up payload. Role uses the backend spelling.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ImageUpload is a profile image file part.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProfileUpdate carries only changed profile fields. Nil fields are not sent.
type ProfileUpdate struct {
	Name     *string
	ImageURL *string
	Image    *ImageUpload
	Buyer    *BuyerProfileUpdate
}

// Empty reports whether the update has nothing to send.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.ImageURL == nil && u.Image == nil && (u.Buyer == nil || u.Buyer.Empty())
}
