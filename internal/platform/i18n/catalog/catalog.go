// Package catalog loads the storefront's YAML message catalogs and registers
// them with golang.org/x/text/message.
//
// Catalogs live at locales/<locale>/<namespace>.yaml. Every key in a file is
// prefixed by its namespace, so "shop.yaml" only holds "shop.*" keys.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale holds the source text every other locale translates.
const BaseLocale = "en-US"

const pattern = "locales/*/*.yaml"

type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle is a validated set of locale catalogs.
type Bundle struct {
	messages   map[string]map[string]string
	namespaces map[string][]string
}

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustRegisterEmbedded()

// Default returns the embedded bundle. Its messages are registered with the
// x/text default catalog at package init.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS loads and validates every catalog file in fsys. All problems
// found are reported together.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{
		messages:   map[string]map[string]string{},
		namespaces: map[string][]string{},
	}
	var problems []error
	for _, p := range paths {
		if err := b.load(fsys, p); err != nil {
			problems = append(problems, err)
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		problems = append(problems, fmt.Errorf("base locale %s has no catalogs", BaseLocale))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) load(fsys fs.FS, p string) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse %s: %w", p, err)
	}
	locale, namespace, err := validate(p, f)
	if err != nil {
		return err
	}
	if slices.Contains(b.namespaces[locale], namespace) {
		return fmt.Errorf("%s: namespace %q repeated for %s", p, namespace, locale)
	}
	messages := b.messages[locale]
	if messages == nil {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	for key, text := range f.Messages {
		key = strings.TrimSpace(key)
		if _, dup := messages[key]; dup {
			return fmt.Errorf("%s: key %q repeated for %s", p, key, locale)
		}
		messages[key] = text
	}
	b.namespaces[locale] = append(b.namespaces[locale], namespace)
	return nil
}

// validate checks a decoded file against its path and returns the locale
// and namespace it declares.
func validate(p string, f file) (string, string, error) {
	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	locale := strings.TrimSpace(f.Locale)
	namespace := strings.TrimSpace(f.Namespace)

	switch {
	case locale != wantLocale:
		return "", "", fmt.Errorf("%s: locale %q, want %q", p, locale, wantLocale)
	case namespace != wantNamespace:
		return "", "", fmt.Errorf("%s: namespace %q, want %q", p, namespace, wantNamespace)
	case len(f.Messages) == 0:
		return "", "", fmt.Errorf("%s: no messages", p)
	}
	if _, err := language.Parse(locale); err != nil {
		return "", "", fmt.Errorf("%s: locale %q: %w", p, locale, err)
	}
	for key := range f.Messages {
		if !strings.HasPrefix(strings.TrimSpace(key), namespace+".") {
			return "", "", fmt.Errorf("%s: key %q outside namespace %q", p, key, namespace)
		}
	}
	return locale, namespace, nil
}

// Register publishes every message with x/text. A locale missing a key
// falls back to the base text, and each locale is also registered under its
// bare language ("pt" for "pt-BR").
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	base := b.messages[BaseLocale]
	for _, locale := range b.Locales() {
		tags, err := registrationTags(locale)
		if err != nil {
			return err
		}
		merged := make(map[string]string, len(base))
		maps.Copy(merged, base)
		maps.Copy(merged, b.messages[locale])
		for _, key := range slices.Sorted(maps.Keys(merged)) {
			for _, tag := range tags {
				if err := message.SetString(tag, key, merged[key]); err != nil {
					return fmt.Errorf("register %s %q: %w", tag, key, err)
				}
			}
		}
	}
	return nil
}

func registrationTags(locale string) ([]language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	tags := []language.Tag{tag}
	if lang, conf := tag.Base(); conf != language.No {
		if bare := language.Make(lang.String()); bare != tag {
			tags = append(tags, bare)
		}
	}
	return tags, nil
}

// Locales returns the loaded locales with BaseLocale first.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := slices.Sorted(maps.Keys(b.messages))
	if i := slices.Index(out, BaseLocale); i > 0 {
		out = slices.Insert(slices.Delete(out, i, i+1), 0, BaseLocale)
	}
	return out
}

// HasLocale reports whether locale has any catalogs.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Namespaces returns the sorted namespaces loaded for locale.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(slices.Values(b.namespaces[strings.TrimSpace(locale)]))
}

// Keys returns the sorted message keys of locale.
func (b *Bundle) Keys(locale string) []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.messages[strings.TrimSpace(locale)]))
}

// Missing returns the base keys locale does not translate.
func (b *Bundle) Missing(locale string) []string {
	if b == nil {
		return nil
	}
	own := b.messages[strings.TrimSpace(locale)]
	var out []string
	for _, key := range b.Keys(BaseLocale) {
		if _, ok := own[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}

// Message returns the text for key in locale, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if text, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return text, true
	}
	text, ok := b.messages[BaseLocale][key]
	return text, ok
}

func mustRegisterEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("load message catalogs: %v", err))
	}
	if err := b.Register(); err != nil {
		panic(fmt.Sprintf("register message catalogs: %v", err))
	}
	return b
}
