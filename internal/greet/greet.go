// Package greet builds the greetings printed by the hello-world commands.
package greet

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultName is greeted when no name is given.
const DefaultName = "World"

var salutations = map[string]string{
	"bg": "Здравей",
	"de": "Hallo",
	"en": "Hello",
	"es": "Hola",
	"fr": "Bonjour",
	"it": "Ciao",
}

// Opts configures a greeting.
type Opts struct {
	Name  string
	Lang  string
	Shout bool
}

// Message returns the greeting for opts. Lang defaults to "en" and is
// matched case-insensitively.
func Message(opts Opts) (string, error) {
	lang := strings.ToLower(strings.TrimSpace(opts.Lang))
	if lang == "" {
		lang = "en"
	}

	salutation, ok := salutations[lang]
	if !ok {
		return "", fmt.Errorf("unsupported language %q, must be one of: %s", opts.Lang, strings.Join(Languages(), ", "))
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = DefaultName
	}

	msg := fmt.Sprintf("%s, %s!", salutation, name)
	if opts.Shout {
		msg = strings.ToUpper(msg)
	}

	return msg, nil
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(salutations))
	for lang := range salutations {
		langs = append(langs, lang)
	}

	slices.Sort(langs)

	return langs
}

// Salutation returns the salutation used for lang.
func Salutation(lang string) string {
	return salutations[strings.ToLower(lang)]
}
