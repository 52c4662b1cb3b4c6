// Package templates renders storefront pages as templ components backed by
// embedded html/template files.
package templates

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/storefront/internal/platform/money"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"golang.org/x/text/language"
)

//go:embed html/*.html
var htmlFS embed.FS

var set = template.Must(template.New("storefront").Funcs(funcs()).ParseFS(htmlFS, "html/*.html"))

func funcs() template.FuncMap {
	return template.FuncMap{
		"t": func(loc Localizer, key string, args ...any) string {
			return T(loc, key, args...)
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"stockLevel": func(stock int) string {
			return string(money.StockLevelOf(stock))
		},
		"lineTotal": func(price float64, qty int) float64 {
			return price * float64(qty)
		},
		"card": func(page PageContext, product ProductCard, canShop bool) productCardView {
			return productCardView{Page: page, Product: product, CanShop: canShop}
		},
		"productURL":           routepath.Product,
		"productsURL":          routepath.ProductsSearch,
		"resetPasswordURL":     routepath.ResetPasswordWithToken,
		"cartItemURL":          routepath.AppCartItem,
		"cartQuantityURL":      routepath.AppCartItemQuantity,
		"cartRemoveURL":        routepath.AppCartItemRemove,
		"wishlistItemURL":      routepath.AppWishlistItem,
		"wishlistRemoveURL":    routepath.AppWishlistItemRemove,
		"wishlistMoveURL":      routepath.AppWishlistItemMoveToCart,
		"orderURL":             routepath.AppOrder,
		"ordersByStatusURL":    routepath.AppOrdersByStatus,
		"vendorProductEditURL": routepath.AppVendorProductEdit,
		"vendorProductDelURL":  routepath.AppVendorProductDelete,
		"adminUserToggleURL":   routepath.AppAdminUserToggle,
		"adminUserDeleteURL":   routepath.AppAdminUserDelete,
		"adminUserRoleURL":     routepath.AppAdminUserRole,
	}
}

// PageContext carries request-scoped rendering state shared by every page.
type PageContext struct {
	Loc   Localizer
	Lang  language.Tag
	Money money.Formatter
	Path  string
}

// Price formats amount in the page currency.
func (p PageContext) Price(amount float64) string {
	return p.Money.Format(amount)
}

// Date formats t for the page language.
func (p PageContext) Date(t time.Time) string {
	return money.FormatDate(t, p.Lang)
}

// T translates key for the page language.
func (p PageContext) T(key string, args ...any) string {
	return T(p.Loc, key, args...)
}

// Stock returns the localized stock label for n units.
func (p PageContext) Stock(n int) string {
	return money.StockLabel(p.Loc, n)
}

type productCardView struct {
	Page    PageContext
	Product ProductCard
	CanShop bool
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return set.ExecuteTemplate(w, name, data)
	})
}

func renderChildren(ctx context.Context) (template.HTML, error) {
	var body bytes.Buffer
	if err := templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), &body); err != nil {
		return "", err
	}
	return template.HTML(body.String()), nil
}
