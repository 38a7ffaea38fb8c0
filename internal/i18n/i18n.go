// Package i18n holds the supported locales and the translated page strings.
//
// English strings double as message keys, so an untranslated key renders as English.
// Keys are printf formats: a literal percent sign is written as %%.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	English = language.English
	Spanish = language.Spanish

	Default   = English
	Supported = []language.Tag{English, Spanish}
)

var (
	matcher  = language.NewMatcher(Supported)
	messages = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(Default))
	for key, text := range spanish {
		if err := b.SetString(Spanish, key, text); err != nil {
			panic("i18n: bad spanish message " + key + ": " + err.Error())
		}
	}
	return b
}

// Code is the URL prefix of a supported locale ("en", "es").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// FromPrefix resolves a path segment to a supported locale.
func FromPrefix(segment string) (language.Tag, bool) {
	for _, tag := range Supported {
		if Code(tag) == segment {
			return tag, true
		}
	}
	return language.Und, false
}

// Detect picks the best supported locale for an Accept-Language header.
func Detect(acceptLanguage string) language.Tag {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Localizer translates strings and builds links for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

func (l *Localizer) Tag() language.Tag { return l.tag }

func (l *Localizer) Code() string { return Code(l.tag) }

// T translates key, formatting args into it.
func (l *Localizer) T(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

// Path prefixes p with the locale segment unless the locale is the default.
func (l *Localizer) Path(p string) string {
	return LocalePath(l.tag, p)
}

// LocalePath builds the "as-needed" prefixed path for tag.
func LocalePath(tag language.Tag, p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if tag == Default {
		return p
	}
	if p == "/" {
		return "/" + Code(tag)
	}
	return "/" + Code(tag) + p
}

// StripPrefix removes a leading locale segment from p.
func StripPrefix(p string) (language.Tag, string, bool) {
	trimmed := strings.TrimPrefix(p, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	tag, ok := FromPrefix(segment)
	if !ok {
		return Default, p, false
	}
	return tag, "/" + rest, true
}
