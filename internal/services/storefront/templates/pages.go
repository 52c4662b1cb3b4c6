package templates

import (
	"time"

	"github.com/a-h/templ"
)

// ProductCard is a product as shown in listings and detail pages.
type ProductCard struct {
	ID          string
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       float64
	Stock       int
	VendorName  string
}

// CartLine is one cart row.
type CartLine struct {
	ProductID string
	Name      string
	ImageURL  string
	Price     float64
	Quantity  int
	Stock     int
}

// WishlistLine is one saved product.
type WishlistLine struct {
	ProductID   string
	Name        string
	ImageURL    string
	Description string
	Category    string
	Price       float64
	Stock       int
	AddedAt     time.Time
}

// OrderLine is one purchased product inside an order.
type OrderLine struct {
	ProductID string
	Name      string
	ImageURL  string
	Quantity  int
	Price     float64
}

// OrderSummary is one order with its lines.
type OrderSummary struct {
	ID              string
	Date            time.Time
	Status          string
	Total           float64
	Items           []OrderLine
	ShippingAddress string
	PaymentMethod   string
}

// UserRow is one user in the admin list.
type UserRow struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
}

// StatTile is one dashboard statistic. Value is "-" when unavailable.
type StatTile struct {
	Label string
	Value string
}

type HomeView struct {
	PageContext
	Featured   []ProductCard
	Categories []string
}

type SupportView struct {
	PageContext
	Email string
	Phone string
}

type LoginView struct {
	PageContext
	Email string
	Error string
}

type RegisterView struct {
	PageContext
	Name  string
	Email string
	Role  string
	Roles []string
	Error string
}

type ForgotPasswordView struct {
	PageContext
	Email string
	Error string
}

type ResetPasswordView struct {
	PageContext
	Token string
	Error string
}

type ProductsView struct {
	PageContext
	Products   []ProductCard
	Categories []string
	Query      string
	Category   string
	CanShop    bool
}

type ProductDetailView struct {
	PageContext
	Product ProductCard
	CanShop bool
}

type DashboardView struct {
	PageContext
	Banner WelcomeBannerData
	Stats  []StatTile
	Cards  []DashboardCardData
}

type CartView struct {
	PageContext
	Items []CartLine
	Total float64
	Count int
}

type CheckoutView struct {
	PageContext
	Items    []CartLine
	Total    float64
	Count    int
	Name     string
	Email    string
	Shipping string
}

type WishlistView struct {
	PageContext
	Items []WishlistLine
}

type OrdersView struct {
	PageContext
	Orders   []OrderSummary
	Status   string
	Statuses []string
}

type OrderDetailView struct {
	PageContext
	Order OrderSummary
}

// ProfileDetails is the profile page subject.
type ProfileDetails struct {
	Name            string
	Email           string
	Role            string
	Initials        string
	ImageURL        string
	ShippingAddress string
	BillingAddress  string
	PaymentMethods  []string
	BusinessName    string
	BusinessAddress string
	ContactNumber   string
}

type ProfileView struct {
	PageContext
	Profile ProfileDetails
}

// ProfileForm holds editable profile values.
type ProfileForm struct {
	Name            string
	ImageURL        string
	ShippingAddress string
	BillingAddress  string
	PaymentMethods  string
}

type ProfileEditView struct {
	PageContext
	Form    ProfileForm
	IsBuyer bool
	Error   string
}

type VendorProductsView struct {
	PageContext
	Products []ProductCard
}

// ProductForm holds raw product form values so invalid input re-renders.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Stock       string
	Category    string
	ImageURL    string
}

type VendorProductFormView struct {
	PageContext
	Form    ProductForm
	Action  string
	Editing bool
	Error   string
}

type InventoryView struct {
	PageContext
	Items      []ProductCard
	LowCount   int
	OutCount   int
	TotalStock int
}

type StoreSettingsView struct {
	PageContext
	Name        string
	Description string
	UpdatedAt   time.Time
	Error       string
}

type AdminUsersView struct {
	PageContext
	Users []UserRow
	Query string
	Role  string
	Roles []string
}

type ErrorView struct {
	PageContext
	Status  int
	Heading string
	Message string
}

func HomePage(v HomeView) templ.Component { return render("page.home", v) }
func SupportPage(v SupportView) templ.Component { return render("page.support", v) }
func LoginPage(v LoginView) templ.Component { return render("page.login", v) }
func RegisterPage(v RegisterView) templ.Component { return render("page.register", v) }
func ForgotPasswordPage(v ForgotPasswordView) templ.Component { return render("page.forgot_password", v) }
func ResetPasswordPage(v ResetPasswordView) templ.Component { return render("page.reset_password", v) }
func ProductsPage(v ProductsView) templ.Component { return render("page.products", v) }
func ProductDetailPage(v ProductDetailView) templ.Component { return render("page.product_detail", v) }
func DashboardPage(v DashboardView) templ.Component { return render("page.dashboard", v) }
func CartPage(v CartView) templ.Component { return render("page.cart", v) }
func CheckoutPage(v CheckoutView) templ.Component { return render("page.checkout", v) }
func WishlistPage(v WishlistView) templ.Component { return render("page.wishlist", v) }
func OrdersPage(v OrdersView) templ.Component { return render("page.orders", v) }
func OrderDetailPage(v OrderDetailView) templ.Component { return render("page.order_detail", v) }
func ProfilePage(v ProfileView) templ.Component { return render("page.profile", v) }
func ProfileEditPage(v ProfileEditView) templ.Component { return render("page.profile_edit", v) }
func VendorProductsPage(v VendorProductsView) templ.Component { return render("page.vendor_products", v) }
func VendorProductFormPage(v VendorProductFormView) templ.Component { return render("page.vendor_product_form", v) }
func InventoryPage(v InventoryView) templ.Component { return render("page.inventory", v) }
func StoreSettingsPage(v StoreSettingsView) templ.Component { return render("page.store_settings", v) }
func AdminUsersPage(v AdminUsersView) templ.Component { return render("page.admin_users", v) }
func ErrorPage(v ErrorView) templ.Component { return render("page.error", v) }
