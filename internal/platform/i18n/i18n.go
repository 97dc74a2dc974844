// Package i18n defines the locales EventConnect serves and how request
// language preferences resolve to one of them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// supportedTags lists the locales with full message coverage. The first
// entry is the default and the fallback for unmatched preferences.
var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("pt-BR"),
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses a user-supplied locale value and reports whether it
// resolves to a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	for _, tag := range supportedTags {
		if parsed == tag {
			return tag, true
		}
	}
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if supportedBase, _ := tag.Base(); supportedBase == base {
			return tag, true
		}
	}
	return DefaultTag(), false
}

// MatchTags returns the supported tag that best matches the ordered
// preference list, falling back to the default.
func MatchTags(prefs []language.Tag) language.Tag {
	if len(prefs) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
