// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated strings of ContaBancaria. It uses the
// go-i18n library to load the embedded YAML locale files; Brazilian
// Portuguese is the default language and English is available as an
// alternative.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// DefaultLang is used when no language is configured.
const DefaultLang = "pt-BR"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	locales   []string
)

// Init loads every embedded locale file and activates lang. Unknown
// languages fall back to DefaultLang through the localizer chain.
func Init(l string) {
	if l == "" {
		l = DefaultLang
	}

	b := i18n.NewBundle(language.MustParse(DefaultLang))
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	var found []string
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		found = append(found, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(found)

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l, DefaultLang)
	lang = l
	locales = found
}

// GetLang returns the active language tag as configured.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// GetAvailableLocales maps every embedded locale tag to its display name in
// its own language.
func GetAvailableLocales() map[string]string {
	ensureInit()

	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]string, len(locales))
	for _, tag := range locales {
		t, err := language.Parse(tag)
		if err != nil {
			out[tag] = tag
			continue
		}
		out[tag] = display.Self.Name(t)
	}
	return out
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied to the translated text with fmt.Sprintf.
// Unknown IDs are returned as-is.
func T(messageID string, args ...any) string {
	ensureInit()

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	mu.RLock()
	msg, err := localizer.Localize(cfg)
	mu.RUnlock()
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Printer returns an x/text message printer for the active language, used
// for locale aware number formatting.
func Printer() *message.Printer {
	tag, err := language.Parse(GetLang())
	if err != nil {
		tag = language.MustParse(DefaultLang)
	}
	return message.NewPrinter(tag)
}

func ensureInit() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init(DefaultLang)
	}
}
