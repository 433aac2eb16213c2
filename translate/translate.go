// Package translate localizes user visible messages.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported languages. The first is the default.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var matcher = language.NewMatcher(supported)

var messages = catalog.NewBuilder()

var german = map[string]string{
	"error":                           "Fehler",
	"idle":                            "bereit",
	"running":                         "läuft",
	"waiting":                         "wartet",
	"state %d":                        "Zustand %d",
	"not running":                     "nicht aktiv",
	"division by zero":                "Division durch Null",
	"opcode invalid":                  "ungültiger Opcode",
	"opcode reserved":                 "reservierter Opcode",
	"bad opcode at %03d [%v]":         "falscher Opcode bei %03d [%v]",
	"line %d %v":                      "Zeile %d %v",
	"address %03d %v":                 "Adresse %03d %v",
	"line %d '%v' %v":                 "Zeile %d '%v' %v",
	"label %v missing":                "Marke %v fehlt",
	"label duplicated":                "Marke doppelt",
	"instruction invalid":             "ungültiger Befehl",
	"operand count":                   "falsche Anzahl Operanden",
	"operand invalid":                 "ungültiger Operand",
	"operand mode not encodable":      "Adressierungsart nicht kodierbar",
	"program exceeds memory":          "Programm passt nicht in den Speicher",
	"tick limit %d reached":           "Taktgrenze %d erreicht",
	"'%v' is not a number":            "'%v' ist keine Zahl",
	"'%v' is not a character":         "'%v' ist kein Zeichen",
	"$(%v) is not a valid expression": "$(%v) ist kein gültiger Ausdruck",
}

var printer atomic.Pointer[message.Printer]

func init() {
	for key, msg := range german {
		err := messages.SetString(language.German, key, msg)
		if err != nil {
			log.Printf("alek: catalog: %v", err)
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("alek: locale: %v", err)
	}

	SetLanguage(Match(locales...))
}

// Match the best supported language for a list of locales, in order of
// preference. Unparseable locales are ignored.
func Match(locales ...string) language.Tag {
	var tags []language.Tag
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err == nil {
			tags = append(tags, tag)
		}
	}

	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// SetLanguage selects the language of translated messages.
func SetLanguage(tag language.Tag) {
	printer.Store(message.NewPrinter(tag, message.Catalog(messages)))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
