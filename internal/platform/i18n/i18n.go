// Package i18n defines the storefront's supported languages. A language is
// supported when the embedded message catalogs carry it.
package i18n

import (
	"strings"

	"github.com/louisbranch/storefront/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var supported = catalogTags(catalog.Default())

var matcher = language.NewMatcher(supported)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the default language.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag parses value and reports whether it maps to a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags returns the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// catalogTags lists the bundle's locales as tags, base locale first.
func catalogTags(bundle *catalog.Bundle) []language.Tag {
	locales := bundle.Locales()
	if len(locales) == 0 {
		return []language.Tag{language.MustParse(catalog.BaseLocale)}
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tags = append(tags, language.MustParse(locale))
	}
	return tags
}
