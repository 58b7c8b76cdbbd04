// Package i18n resolves phrase keys to localized strings. Locale files
// are embedded in the binary; lookups fall back to English and then to
// the key itself, so a missing phrase never breaks a reply.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Langs lists the supported locale codes in display order.
var Langs = []string{"en", "fa"}

type Translator struct {
	bundle *goi18n.Bundle
}

// New loads every embedded locale file into a bundle.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, lang := range Langs {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+lang+".json"); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", lang, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// T resolves key for lang, substituting the named template data.
func (t *Translator) T(lang, key string, data map[string]any) string {
	localizer := goi18n.NewLocalizer(t.bundle, lang, "en")
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
