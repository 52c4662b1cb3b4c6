package profile

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// BackendClient reads and updates the backend profile.
type BackendClient interface {
	Profile(ctx context.Context, token string) (backendapi.User, error)
	UpdateProfile(ctx context.Context, token string, update backendapi.ProfileUpdate) error
}

// NewAPIGateway builds the production profile gateway.
func NewAPIGateway(client BackendClient) ProfileGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client BackendClient
}

func (g apiGateway) Profile(ctx context.Context, token string) (Profile, error) {
	user, err := g.client.Profile(ctx, token)
	if err != nil {
		return Profile{}, err
	}
	profile := Profile{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		ImageURL: user.ImageURL,
	}
	if identity.ValidRole(user.Role) {
		profile.Role = identity.ParseRole(user.Role)
	}
	if user.Buyer != nil {
		profile.ShippingAddress = user.Buyer.ShippingAddress
		profile.BillingAddress = user.Buyer.BillingAddress
		profile.PaymentMethods = user.Buyer.PaymentMethods
	}
	if user.Seller != nil {
		profile.BusinessName = user.Seller.BusinessName
		profile.BusinessAddress = user.Seller.BusinessAddress
		profile.ContactNumber = user.Seller.ContactNumber
	}
	return profile, nil
}

func (g apiGateway) UpdateProfile(ctx context.Context, token string, update Update) error {
	out := backendapi.ProfileUpdate{Name: update.Name, ImageURL: update.ImageURL}
	if update.Image != nil {
		out.Image = &backendapi.ImageUpload{
			Filename:    update.Image.Filename,
			ContentType: update.Image.ContentType,
			Data:        update.Image.Data,
		}
	}
	buyer := backendapi.BuyerProfileUpdate{
		ShippingAddress: update.ShippingAddress,
		BillingAddress:  update.BillingAddress,
		PaymentMethods:  update.PaymentMethods,
	}
	if !buyer.Empty() {
		out.Buyer = &buyer
	}
	return g.client.UpdateProfile(ctx, token, out)
}
