package daterange

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/pkg/errors"
)

const (
	// Separator joins the two rendered sides of a range.
	Separator = " – "
	// DefaultPresentLabel is shown for an ongoing end bound.
	DefaultPresentLabel = "Present"
	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "en"
)

var translators = map[string]func() locales.Translator{
	"en":    en.New,
	"en_us": en_US.New,
	"en_gb": en_GB.New,
	"fr":    fr.New,
	"de":    de.New,
	"es":    es.New,
	"it":    it.New,
	"nl":    nl.New,
	"pt":    pt.New,
}

// Locales lists the supported locale names.
func Locales() []string {
	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Formatter renders bounds with locale-specific month names.
// A Formatter holds no mutable state and is safe for concurrent use.
type Formatter struct {
	Translator   locales.Translator
	PresentLabel string
}

// NewFormatter returns a Formatter for locale. Names are matched
// case-insensitively and "-" is accepted in place of "_" ("en-US").
func NewFormatter(locale string) (*Formatter, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"))
	if key == "" {
		key = DefaultLocale
	}
	newTranslator, ok := translators[key]
	if !ok {
		return nil, errors.Errorf("unsupported locale %q (supported: %s)", locale, strings.Join(Locales(), ", "))
	}
	return &Formatter{Translator: newTranslator(), PresentLabel: DefaultPresentLabel}, nil
}

var defaultFormatter = &Formatter{Translator: en.New(), PresentLabel: DefaultPresentLabel}

// Format renders start and end with the default English formatter.
func Format(start, end Bound) string {
	return defaultFormatter.Format(start, end)
}

// FormatStrings parses and renders start and end with the default English formatter.
func FormatStrings(start, end string) string {
	return defaultFormatter.FormatStrings(start, end)
}

// Format renders the range. Empty sides are dropped so no dangling separator
// is produced.
func (f *Formatter) Format(start, end Bound) string {
	sides := make([]string, 0, 2)
	// The sentinel only means something on the end bound.
	if start.Kind == Concrete {
		sides = append(sides, f.month(start))
	}
	switch end.Kind {
	case Concrete:
		sides = append(sides, f.month(end))
	case Ongoing:
		sides = append(sides, f.presentLabel())
	}
	return strings.Join(sides, Separator)
}

// FormatStrings is Format over the raw data form of both bounds.
func (f *Formatter) FormatStrings(start, end string) string {
	return f.Format(ParseBound(start), ParseBound(end))
}

func (f *Formatter) month(b Bound) string {
	tr := f.Translator
	if tr == nil {
		tr = defaultFormatter.Translator
	}
	return tr.MonthAbbreviated(b.Time.Month()) + " " + strconv.Itoa(b.Time.Year())
}

func (f *Formatter) presentLabel() string {
	if f.PresentLabel == "" {
		return DefaultPresentLabel
	}
	return f.PresentLabel
}
