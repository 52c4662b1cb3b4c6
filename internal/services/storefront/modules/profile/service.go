package profile

import (
	"context"
	"strings"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// Profile is the signed-in user as the backend reports it.
type Profile struct {
	ID              string
	Name            string
	Email           string
	Role            identity.Role
	ImageURL        string
	ShippingAddress string
	BillingAddress  string
	PaymentMethods  string
	BusinessName    string
	BusinessAddress string
	ContactNumber   string
}

// Image is an uploaded avatar.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Update carries changed fields only. Nil fields are left untouched.
type Update struct {
	Name            *string
	ImageURL        *string
	Image           *Image
	ShippingAddress *string
	BillingAddress  *string
	PaymentMethods  *string
}

// Empty reports whether nothing changed.
func (u Update) Empty() bool {
	return u.Name == nil && u.ImageURL == nil && u.Image == nil &&
		u.ShippingAddress == nil && u.BillingAddress == nil && u.PaymentMethods == nil
}

// Form is the submitted editor state.
type Form struct {
	Name            string
	ImageURL        string
	Image           *Image
	ShippingAddress string
	BillingAddress  string
	PaymentMethods  string
}

// ProfileGateway reads and updates the signed-in user.
type ProfileGateway interface {
	Profile(ctx context.Context, token string) (Profile, error)
	UpdateProfile(ctx context.Context, token string, update Update) error
}

// SessionRefresher replaces the user snapshot cached in a session.
type SessionRefresher interface {
	UpdateUser(ctx context.Context, sessionID string, viewer module.Viewer) error
}

type service struct {
	gateway  ProfileGateway
	sessions SessionRefresher
}

func newService(gateway ProfileGateway, sessions SessionRefresher) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, sessions: sessions}
}

func (s service) load(ctx context.Context, token string) (Profile, error) {
	return s.gateway.Profile(ctx, token)
}

// refreshSession writes profile into the session snapshot. The session role
// wins when the backend omits one.
func (s service) refreshSession(ctx context.Context, sessionID string, current module.Viewer, profile Profile) (module.Viewer, error) {
	viewer := current
	viewer.SignedIn = true
	if profile.ID != "" {
		viewer.UserID = profile.ID
	}
	if name := strings.TrimSpace(profile.Name); name != "" {
		viewer.Name = name
	}
	if email := strings.TrimSpace(profile.Email); email != "" {
		viewer.Email = email
	}
	if profile.Role != "" {
		viewer.Role = profile.Role.String()
	}
	viewer.ImageURL = strings.TrimSpace(profile.ImageURL)
	if s.sessions == nil || strings.TrimSpace(sessionID) == "" || viewer == current {
		return viewer, nil
	}
	return viewer, s.sessions.UpdateUser(ctx, sessionID, viewer)
}

// diff returns the fields of form that differ from current. Buyer fields are
// compared only for buyers. A blank name keeps the current one.
func diff(current Profile, form Form) Update {
	var update Update
	if name := strings.TrimSpace(form.Name); name != "" && name != current.Name {
		update.Name = &name
	}
	if form.Image != nil && len(form.Image.Data) > 0 {
		update.Image = form.Image
	} else if imageURL := strings.TrimSpace(form.ImageURL); imageURL != current.ImageURL {
		update.ImageURL = &imageURL
	}
	if current.Role != identity.RoleBuyer {
		return update
	}
	update.ShippingAddress = changed(current.ShippingAddress, form.ShippingAddress)
	update.BillingAddress = changed(current.BillingAddress, form.BillingAddress)
	update.PaymentMethods = changed(normalizeMethods(current.PaymentMethods), normalizeMethods(form.PaymentMethods))
	return update
}

func changed(current, submitted string) *string {
	submitted = strings.TrimSpace(submitted)
	if submitted == strings.TrimSpace(current) {
		return nil
	}
	return &submitted
}

// normalizeMethods canonicalizes a comma-separated payment method list.
func normalizeMethods(raw string) string {
	return strings.Join(SplitMethods(raw), ", ")
}

// SplitMethods splits a comma-separated payment method list.
func SplitMethods(raw string) []string {
	methods := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			methods = append(methods, part)
		}
	}
	return methods
}

// save sends the changed fields. An unchanged form is rejected. fallbackRole
// applies when the backend profile carries no role.
func (s service) save(ctx context.Context, token string, fallbackRole identity.Role, form Form) error {
	if form.Image != nil && !strings.HasPrefix(form.Image.ContentType, "image/") {
		return apperrors.EK(apperrors.KindInvalidInput, "account.profile.invalid_image", "upload must be an image")
	}
	current, err := s.gateway.Profile(ctx, token)
	if err != nil {
		return err
	}
	if current.Role == "" {
		current.Role = fallbackRole
	}
	update := diff(current, form)
	if update.Empty() {
		return apperrors.EK(apperrors.KindInvalidInput, "account.profile.no_changes", "no changes to update")
	}
	return s.gateway.UpdateProfile(ctx, token, update)
}
