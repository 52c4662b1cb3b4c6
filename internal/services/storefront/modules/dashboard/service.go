package dashboard

import (
	"context"
	"strconv"

	"github.com/louisbranch/storefront/internal/platform/money"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"golang.org/x/sync/errgroup"
)

// unavailableValue is shown for a stat whose source failed.
const unavailableValue = "-"

// UserStatus is the role and activity of one account.
type UserStatus struct {
	Role   string
	Active bool
}

// StatsGateway loads the counts shown on dashboards.
type StatsGateway interface {
	CartItemCount(ctx context.Context, token string) (int, error)
	WishlistCount(ctx context.Context, token string) (int, error)
	OrderCount(ctx context.Context, token string) (int, error)
	VendorStockLevels(ctx context.Context, token string) ([]int, error)
	UserStatuses(ctx context.Context, token string) ([]UserStatus, error)
}

// Stat is one dashboard tile. Value is unavailableValue when its source
// failed.
type Stat struct {
	LabelKey string
	Value    string
}

type service struct {
	gateway StatsGateway
}

func newService(gateway StatsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// statLoader fills one or more stat slots.
type statLoader struct {
	keys []string
	load func(ctx context.Context) ([]string, error)
}

// loadStats fetches the role's stats concurrently. A failing source only
// blanks its own tiles; a rejected token aborts the page.
func (s service) loadStats(ctx context.Context, token string, role identity.Role) ([]Stat, error) {
	loaders := s.loaders(token, role)
	values := make([][]string, len(loaders))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, loader := range loaders {
		group.Go(func() error {
			result, err := loader.load(groupCtx)
			if err != nil {
				if apperrors.KindOf(err) == apperrors.KindUnauthorized {
					return err
				}
				return nil
			}
			values[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	stats := []Stat{}
	for i, loader := range loaders {
		for j, key := range loader.keys {
			value := unavailableValue
			if j < len(values[i]) {
				value = values[i][j]
			}
			stats = append(stats, Stat{LabelKey: key, Value: value})
		}
	}
	return stats, nil
}

func count(load func(context.Context, string) (int, error), token string) func(context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		n, err := load(ctx, token)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(n)}, nil
	}
}

func (s service) loaders(token string, role identity.Role) []statLoader {
	switch role {
	case identity.RoleVendor:
		return []statLoader{{
			keys: []string{"core.stats.products", "core.stats.total_stock", "core.stats.low_stock"},
			load: func(ctx context.Context) ([]string, error) {
				levels, err := s.gateway.VendorStockLevels(ctx, token)
				if err != nil {
					return nil, err
				}
				total, low := 0, 0
				for _, stock := range levels {
					if stock > 0 {
						total += stock
					}
					if money.StockLevelOf(stock) == money.StockLow {
						low++
					}
				}
				return []string{strconv.Itoa(len(levels)), strconv.Itoa(total), strconv.Itoa(low)}, nil
			},
		}}
	case identity.RoleAdmin:
		return []statLoader{{
			keys: []string{"core.stats.buyers", "core.stats.vendors", "core.stats.admins", "core.stats.inactive"},
			load: func(ctx context.Context) ([]string, error) {
				users, err := s.gateway.UserStatuses(ctx, token)
				if err != nil {
					return nil, err
				}
				counts := map[identity.Role]int{}
				inactive := 0
				for _, user := range users {
					counts[identity.ParseRole(user.Role)]++
					if !user.Active {
						inactive++
					}
				}
				return []string{
					strconv.Itoa(counts[identity.RoleBuyer]),
					strconv.Itoa(counts[identity.RoleVendor]),
					strconv.Itoa(counts[identity.RoleAdmin]),
					strconv.Itoa(inactive),
				}, nil
			},
		}}
	default:
		return []statLoader{
			{keys: []string{"core.stats.cart_items"}, load: count(s.gateway.CartItemCount, token)},
			{keys: []string{"core.stats.wishlist"}, load: count(s.gateway.WishlistCount, token)},
			{keys: []string{"core.stats.orders"}, load: count(s.gateway.OrderCount, token)},
		}
	}
}
