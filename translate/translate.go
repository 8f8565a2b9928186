// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("regvm: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message language from a list of preferred
// BCP 47 tags. An empty list selects en-US.
func SetLanguage(languages ...string) {
	if len(languages) == 0 {
		languages = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(languages...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
