// Package i18n resolves the labels and titles of the navigation shell from embedded message
// catalogues.
package i18n

import (
	"embed"
	"errors"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	//go:embed locales
	locales embed.FS

	errLoadCatalogue = errors.New("failed to load message catalogue")
)

// Translator looks up messages for a single locale, falling back to english.
type Translator struct {
	localizer *i18n.Localizer
	locale    string
}

func New(locale string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, errDir := locales.ReadDir("locales")
	if errDir != nil {
		return nil, errors.Join(errDir, errLoadCatalogue)
	}

	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+entry.Name()); err != nil {
			return nil, errors.Join(err, errLoadCatalogue)
		}
	}

	return &Translator{localizer: i18n.NewLocalizer(bundle, locale, language.English.String()), locale: locale}, nil
}

// Label returns the message for messageID. Unknown ids are returned unchanged so a missing
// translation never blanks a menu entry.
func (t *Translator) Label(messageID string) string {
	message, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		slog.Debug("Missing translation", slog.String("id", messageID),
			slog.String("locale", t.locale), slog.String("error", err.Error()))

		return messageID
	}

	return message
}

func (t *Translator) Locale() string {
	return t.locale
}
