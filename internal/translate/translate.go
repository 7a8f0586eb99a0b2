// Package translate formats user facing messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// messages are the en-US Sprintf() style keys used by the engine.
var messages = []string{
	"program exceeds available memory",
	"%d bytes, %d available",
	"loading program",
	"unsupported opcode",
	"unsupported opcode 0x%04X at 0x%04X",
	"stack overflow",
	"stack underflow",
	"address out of range",
	"vm halted",
	"vm halted: %v",
}

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("chopper: locale: %v", err)
	}

	cat := newCatalog()
	printer = message.NewPrinter(matchLocale(cat, locales), message.Catalog(cat))
}

// newCatalog registers every message for en-US, the fallback language.
func newCatalog() *catalog.Builder {
	cat := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for _, key := range messages {
		if err := cat.SetString(language.AmericanEnglish, key, key); err != nil {
			log.Printf("chopper: catalog %q: %v", key, err)
		}
	}
	return cat
}

// matchLocale picks the catalog language closest to the user's locales.
// Unparsable locales are skipped.
func matchLocale(cat catalog.Catalog, locales []string) language.Tag {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return language.AmericanEnglish
	}

	tag, _, _ := cat.Matcher().Match(tags...)
	return tag
}

// From formats an en-US Sprintf() style key for the detected locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
