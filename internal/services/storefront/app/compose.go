package app

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

const defaultLoginPath = routepath.Login

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	AuthRequired        func(*http.Request) bool
	ResolveRole         module.ResolveRole
	Forbidden           http.Handler
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	if err := ComposeInto(root, input); err != nil {
		return nil, err
	}
	return root, nil
}

// ComposeInto mounts module groups on an existing mux.
func ComposeInto(root *http.ServeMux, input ComposeInput) error {
	if root == nil {
		return fmt.Errorf("root mux is required")
	}
	if input.AuthRequired == nil {
		input.AuthRequired = func(*http.Request) bool { return false }
	}
	if input.ResolveRole == nil {
		input.ResolveRole = func(*http.Request) string { return "" }
	}
	if input.Forbidden == nil {
		input.Forbidden = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return fmt.Errorf("public module is nil")
		}
		if err := mountPublicModule(root, feature, seen); err != nil {
			return err
		}
	}

	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return fmt.Errorf("protected module is nil")
		}
		wrap := wrapProtectedModule(input, allowedRoles(feature))
		if err := mountProtectedModule(root, feature, seen, wrap); err != nil {
			return err
		}
	}
	return nil
}

func allowedRoles(feature module.Module) []string {
	restricted, ok := feature.(module.RoleRestricted)
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(restricted.AllowedRoles()))
	for _, role := range restricted.AllowedRoles() {
		if role = strings.ToLower(strings.TrimSpace(role)); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

func register(root *http.ServeMux, feature module.Module, pattern string, handler http.Handler, seen map[string]string) error {
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates path %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()
	root.Handle(pattern, handler)
	return nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	if mount.Prefix != "" {
		if err := register(root, feature, mount.Prefix, handler, seen); err != nil {
			return err
		}
		if alias := slashlessPrefixAlias(mount.Prefix); alias != "" {
			if err := register(root, feature, alias, handler, seen); err != nil {
				return err
			}
		}
	}
	for _, path := range mount.Paths {
		if err := register(root, feature, path, handler, seen); err != nil {
			return err
		}
	}
	return nil
}

func mountPublicModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	for _, path := range mountedPaths(mount) {
		if isProtectedPrefix(path) {
			return fmt.Errorf("module %q has protected path %q in public group", feature.ID(), path)
		}
	}
	return mountModule(root, feature, mount, seen, nil)
}

func mountProtectedModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	for _, path := range mountedPaths(mount) {
		if !isProtectedPrefix(path) {
			return fmt.Errorf("module %q must mount under /app/, got %q", feature.ID(), path)
		}
	}
	return mountModule(root, feature, mount, seen, wrap)
}

func mountedPaths(mount module.Mount) []string {
	paths := make([]string, 0, len(mount.Paths)+1)
	if mount.Prefix != "" {
		paths = append(paths, mount.Prefix)
	}
	return append(paths, mount.Paths...)
}

func isProtectedPrefix(prefix string) bool {
	return strings.HasPrefix(prefix, routepath.AppPrefix)
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Prefix == "" && len(mount.Paths) == 0 {
		return module.Mount{}, fmt.Errorf("mount module %q: prefix or paths are required", feature.ID())
	}
	if mount.Prefix != "" {
		if err := validatePrefix(mount.Prefix); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
		}
	}
	for _, path := range mount.Paths {
		if err := validatePath(path); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid path %q: %w", feature.ID(), path, err)
		}
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func validatePrefix(prefix string) error {
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func validatePath(path string) error {
	if strings.TrimSpace(path) != path || path == "" {
		return fmt.Errorf("path must be non-empty without surrounding whitespace")
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must begin with /")
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must not end with /")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	if prefix == routepath.Root || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

func requireAuth(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				httpx.WriteRedirect(w, r, defaultLoginPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requireRole(resolveRole module.ResolveRole, roles []string, forbidden http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(roles) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, strings.ToLower(strings.TrimSpace(resolveRole(r)))) {
				forbidden.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapProtectedModule(input ComposeInput, roles []string) func(http.Handler) http.Handler {
	authWrap := requireAuth(input.AuthRequired)
	roleWrap := requireRole(input.ResolveRole, roles, input.Forbidden)
	csrfWrap := requireCookieSessionSameOrigin(input.RequestSchemePolicy)
	return func(next http.Handler) http.Handler {
		return authWrap(roleWrap(csrfWrap(next)))
	}
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProof(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
