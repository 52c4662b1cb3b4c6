package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// NavLink is one header navigation entry.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// HeaderData drives the shared page header.
type HeaderData struct {
	Loc      Localizer
	SignedIn bool
	Name     string
	Initials string
	Role     string
	HomeHref string
	Links    []NavLink
}

// HeaderUser is the subset of the signed-in user the header shows.
type HeaderUser struct {
	SignedIn bool
	Name     string
	Initials string
	Role     string
}

// BuildHeader returns the header for user with role-specific links.
func BuildHeader(loc Localizer, user HeaderUser, currentPath string) HeaderData {
	header := HeaderData{
		Loc:      loc,
		SignedIn: user.SignedIn,
		Name:     user.Name,
		Initials: user.Initials,
		Role:     user.Role,
		HomeHref: routepath.Root,
	}
	if !user.SignedIn {
		header.Links = markActive([]NavLink{
			{Href: routepath.Products, Label: T(loc, "core.nav.products")},
			{Href: routepath.Support, Label: T(loc, "core.nav.support")},
		}, currentPath)
		return header
	}
	header.HomeHref = routepath.Dashboard(user.Role)
	switch user.Role {
	case "vendor":
		header.Links = []NavLink{
			{Href: routepath.AppVendorProducts, Label: T(loc, "core.nav.my_products")},
			{Href: routepath.AppVendorInventory, Label: T(loc, "core.nav.inventory")},
			{Href: routepath.AppVendorSettings, Label: T(loc, "core.nav.store")},
		}
	case "admin":
		header.Links = []NavLink{
			{Href: routepath.AppAdminUsers, Label: T(loc, "core.nav.users")},
		}
	default:
		header.Links = []NavLink{
			{Href: routepath.Products, Label: T(loc, "core.nav.products")},
			{Href: routepath.AppCart, Label: T(loc, "core.nav.cart")},
			{Href: routepath.AppWishlist, Label: T(loc, "core.nav.wishlist")},
			{Href: routepath.AppOrders, Label: T(loc, "core.nav.orders")},
		}
	}
	header.Links = markActive(header.Links, currentPath)
	return header
}

func markActive(links []NavLink, currentPath string) []NavLink {
	for i := range links {
		links[i].Active = currentPath == links[i].Href || strings.HasPrefix(currentPath, links[i].Href+"/")
	}
	return links
}

// Header renders the shared page header.
func Header(data HeaderData) templ.Component {
	return render("header", data)
}

// DashboardCardData describes one dashboard shortcut. Cards without an Href
// render disabled with a "coming soon" badge.
type DashboardCardData struct {
	Loc         Localizer
	Title       string
	Description string
	Icon        string
	Href        string
}

// ComingSoon reports whether the card has no destination yet.
func (c DashboardCardData) ComingSoon() bool {
	return strings.TrimSpace(c.Href) == ""
}

// DashboardCard renders one dashboard shortcut.
func DashboardCard(data DashboardCardData) templ.Component {
	return render("dashboard_card", data)
}

type cardSpec struct {
	key  string
	icon string
	href string
}

var dashboardCards = map[string][]cardSpec{
	"buyer": {
		{key: "browse_products", icon: "🛍", href: routepath.Products},
		{key: "my_orders", icon: "📦", href: routepath.AppOrders},
		{key: "shopping_cart", icon: "🛒", href: routepath.AppCart},
		{key: "wishlist", icon: "♥", href: routepath.AppWishlist},
		{key: "profile", icon: "👤", href: routepath.AppProfile},
		{key: "support", icon: "✉", href: routepath.Support},
	},
	"vendor": {
		{key: "vendor_products", icon: "🏷", href: routepath.AppVendorProducts},
		{key: "vendor_orders", icon: "📦"},
		{key: "inventory", icon: "📊", href: routepath.AppVendorInventory},
		{key: "analytics", icon: "📈"},
		{key: "reviews", icon: "★"},
		{key: "store_settings", icon: "⚙", href: routepath.AppVendorSettings},
	},
	"admin": {
		{key: "users", icon: "👥", href: routepath.AppAdminUsers},
		{key: "vendors", icon: "🏪", href: routepath.AppAdminUsers + "?" + routepath.AdminUsersRoleQueryKey + "=vendor"},
		{key: "admin_products", icon: "🏷", href: routepath.Products},
		{key: "admin_orders", icon: "📦"},
		{key: "analytics", icon: "📈"},
		{key: "categories", icon: "🗂"},
		{key: "disputes", icon: "⚖"},
		{key: "settings", icon: "⚙"},
		{key: "logs", icon: "📜"},
	},
}

// DashboardCardsFor returns the localized shortcut cards for role.
func DashboardCardsFor(loc Localizer, role string) []DashboardCardData {
	specs, ok := dashboardCards[role]
	if !ok {
		specs = dashboardCards["buyer"]
	}
	cards := make([]DashboardCardData, 0, len(specs))
	for _, spec := range specs {
		cards = append(cards, DashboardCardData{
			Loc:         loc,
			Title:       T(loc, "core.card."+spec.key+".title"),
			Description: T(loc, "core.card."+spec.key+".description"),
			Icon:        spec.icon,
			Href:        spec.href,
		})
	}
	return cards
}

// WelcomeBannerData drives the dashboard greeting.
type WelcomeBannerData struct {
	Greeting  string
	RoleLabel string
	Subtitle  string
}

// BuildWelcomeBanner greets name, falling back to a generic customer label.
func BuildWelcomeBanner(loc Localizer, name string, role string) WelcomeBannerData {
	if _, ok := dashboardCards[role]; !ok {
		role = "buyer"
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = T(loc, "core.welcome.fallback_name")
	}
	return WelcomeBannerData{
		Greeting:  T(loc, "core.welcome.greeting", name),
		RoleLabel: T(loc, "core.role."+role),
		Subtitle:  T(loc, "core.welcome.subtitle."+role),
	}
}

// WelcomeBanner renders the dashboard greeting.
func WelcomeBanner(data WelcomeBannerData) templ.Component {
	return render("welcome_banner", data)
}
