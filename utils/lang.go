package utils

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	//go:embed locales/*.yaml
	locales embed.FS

	bundle *i18n.Bundle
)

// InitI18NBundle loads the built-in translations and, when i18n.dir is
// configured, the message files found there on top of them.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, f := range files {
		buf, err := locales.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			panic(err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, f.Name()); err != nil {
			panic(err)
		}
	}

	if dir := viper.GetString("i18n.dir"); dir != "" {
		bundle.MustLoadMessageFile(path.Join(dir, "en.yaml"))
		bundle.MustLoadMessageFile(path.Join(dir, "zh-TW.yaml"))
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle()
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize returns the translated message, or the id itself when no
// translation exists.
func Localize(l *i18n.Localizer, id string, data map[string]interface{}) string {
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
