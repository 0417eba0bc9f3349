// Package translate renders user-facing text in the language of the
// person running the simulator.
//
// Message keys are en-US fmt formats. Numbers passed as %d are grouped
// by locale; callers that need exact digits pass them as strings.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// FALLBACK_LOCALE is used when the system reports no preference.
const FALLBACK_LOCALE = "en-US"

var printer = newPrinter()

func newPrinter() *message.Printer {
	preferred, err := locale.GetLocales()
	if err != nil {
		log.Printf("translate: %v", err)
	}

	preferred = append(preferred, FALLBACK_LOCALE)

	return message.NewPrinter(message.MatchLanguage(preferred...))
}

// From formats key with args in the user's language.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprint formats key with args in the user's language, writing to w.
func Fprint(w io.Writer, key message.Reference, args ...any) (err error) {
	_, err = printer.Fprintf(w, key, args...)
	return
}
