// Package i18nstatus renders translator-facing status artifacts for the
// embedded locale catalogs.
package i18nstatus

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	i18ncatalog "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/i18n/catalog"
)

// Config holds i18n status command configuration.
type Config struct {
	BaseLocale  string
	MarkdownOut string
	JSONOut     string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.BaseLocale, "base-locale", i18ncatalog.BaseLocale, "base locale used as translation source of truth")
	fs.StringVar(&cfg.MarkdownOut, "out", "docs/i18n-status.md", "markdown output path")
	fs.StringVar(&cfg.JSONOut, "json-out", "docs/i18n-status.json", "json output path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Report summarizes catalog coverage against the base locale.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
}

// LocaleStatus summarizes one locale's coverage.
type LocaleStatus struct {
	Locale      string            `json:"locale"`
	BaseKeys    int               `json:"base_keys"`
	Translated  int               `json:"translated"`
	Missing     int               `json:"missing"`
	Extra       int               `json:"extra"`
	Completion  float64           `json:"completion"`
	Namespaces  []NamespaceStatus `json:"namespaces"`
	MissingKeys []string          `json:"missing_keys"`
	ExtraKeys   []string          `json:"extra_keys"`
}

// NamespaceStatus summarizes one namespace within a locale.
type NamespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Missing    int     `json:"missing"`
	Extra      int     `json:"extra"`
	Completion float64 `json:"completion"`
}

// Run builds the coverage report from the embedded catalogs and writes the
// artifacts.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load locale catalogs: %w", err)
	}
	rep, err := Build(bundle, cfg.BaseLocale)
	if err != nil {
		return err
	}
	if err := writeArtifact(cfg.JSONOut, rep.JSON); err != nil {
		return err
	}
	if err := writeArtifact(cfg.MarkdownOut, rep.Markdown); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s and %s\n", cfg.MarkdownOut, cfg.JSONOut)
	return nil
}

// Build computes locale coverage against the base locale.
func Build(bundle *i18ncatalog.Bundle, baseLocale string) (Report, error) {
	if bundle == nil {
		return Report{}, errors.New("catalog bundle is required")
	}
	baseLocale = strings.TrimSpace(baseLocale)
	if baseLocale == "" {
		baseLocale = i18ncatalog.BaseLocale
	}
	if !bundle.HasLocale(baseLocale) {
		return Report{}, fmt.Errorf("base locale %q is missing from catalogs", baseLocale)
	}

	baseMessages := bundle.LocaleMessages(baseLocale)
	statuses := make([]LocaleStatus, 0)
	for _, locale := range bundle.Locales() {
		localeMessages := bundle.LocaleMessages(locale)
		missing := diffKeys(baseMessages, localeMessages)
		extra := diffKeys(localeMessages, baseMessages)
		translated := len(baseMessages) - len(missing)

		statuses = append(statuses, LocaleStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(baseMessages)),
			Namespaces:  namespaceStatuses(bundle, baseLocale, locale),
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Locale < statuses[j].Locale
	})

	return Report{BaseLocale: baseLocale, Locales: statuses}, nil
}

// JSON renders the report as an indented JSON document.
func (r Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

// Markdown renders the report as a translator-facing markdown document.
func (r Report) Markdown() ([]byte, error) {
	var b strings.Builder
	b.WriteString("# I18n Status\n\n")
	b.WriteString("Base locale: `" + r.BaseLocale + "`.\n\n")

	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range r.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
			locale.Locale, locale.BaseKeys, locale.Translated, locale.Missing, locale.Extra, locale.Completion)
	}

	for _, locale := range r.Locales {
		b.WriteString("\n## Locale: `" + locale.Locale + "`\n\n")
		b.WriteString("| Namespace | Base Keys | Translated | Missing | Extra | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
				ns.Namespace, ns.BaseKeys, ns.Translated, ns.Missing, ns.Extra, ns.Completion)
		}
		writeKeyList(&b, "Missing Keys", locale.MissingKeys)
		writeKeyList(&b, "Extra Keys", locale.ExtraKeys)
	}

	return []byte(b.String()), nil
}

func namespaceStatuses(bundle *i18ncatalog.Bundle, baseLocale string, locale string) []NamespaceStatus {
	union := map[string]struct{}{}
	for _, namespace := range bundle.Namespaces(baseLocale) {
		union[namespace] = struct{}{}
	}
	for _, namespace := range bundle.Namespaces(locale) {
		union[namespace] = struct{}{}
	}

	names := make([]string, 0, len(union))
	for namespace := range union {
		names = append(names, namespace)
	}
	sort.Strings(names)

	statuses := make([]NamespaceStatus, 0, len(names))
	for _, namespace := range names {
		baseNS := bundle.NamespaceMessages(baseLocale, namespace)
		localeNS := bundle.NamespaceMessages(locale, namespace)
		missing := diffKeys(baseNS, localeNS)
		translated := len(baseNS) - len(missing)
		statuses = append(statuses, NamespaceStatus{
			Namespace:  namespace,
			BaseKeys:   len(baseNS),
			Translated: translated,
			Missing:    len(missing),
			Extra:      len(diffKeys(localeNS, baseNS)),
			Completion: percent(translated, len(baseNS)),
		})
	}
	return statuses
}

// diffKeys returns the keys present in left but absent from right, sorted.
func diffKeys(left map[string]string, right map[string]string) []string {
	out := make([]string, 0)
	for key := range left {
		if _, ok := right[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}

func writeKeyList(b *strings.Builder, heading string, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.WriteString("\n### " + heading + "\n\n")
	for _, key := range keys {
		b.WriteString("- `" + key + "`\n")
	}
}

func writeArtifact(path string, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
