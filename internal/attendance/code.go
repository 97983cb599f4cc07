package attendance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the meaning of an attendance code
type Kind int

const (
	KindNone Kind = iota
	KindWork
	KindCompRest
	KindWeekend
	KindWorkedWeekend
	KindUnrecognized
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindWork:
		return "work"
	case KindCompRest:
		return "comp-rest"
	case KindWeekend:
		return "weekend"
	case KindWorkedWeekend:
		return "worked-weekend"
	}
	return "unrecognized"
}

// Code is a single attendance mark for one day.
// The zero value means "no entry".
type Code struct {
	kind Kind
	text string
}

// Recognized codes
var (
	Work          = Code{kind: KindWork, text: "Я"}
	CompRest      = Code{kind: KindCompRest, text: "ОВ"}
	Weekend       = Code{kind: KindWeekend, text: "В"}
	WorkedWeekend = Code{kind: KindWorkedWeekend, text: "РВ"}
)

var known = map[string]Code{
	Work.text:          Work,
	CompRest.text:      CompRest,
	Weekend.text:       Weekend,
	WorkedWeekend.text: WorkedWeekend,
}

// ParseCode normalizes raw cell text into a Code.
// Unknown tokens keep their upper-cased text so they survive an export.
func ParseCode(raw string) Code {
	text := normalize(raw)
	if text == "" {
		return Code{}
	}
	if code, ok := known[text]; ok {
		return code
	}
	return Code{kind: KindUnrecognized, text: text}
}

// Kind returns the code meaning
func (c Code) Kind() Kind {
	return c.kind
}

// String returns the canonical upper-case text
func (c Code) String() string {
	return c.text
}

// IsEmpty reports whether the code carries no entry
func (c Code) IsEmpty() bool {
	return c.kind == KindNone
}

// shortcuts maps single quick-entry keys to codes.
// Latin R is accepted alongside Cyrillic Р.
var shortcuts = map[string]Code{
	"Я": Work,
	"В": Weekend,
	"О": CompRest,
	"R": WorkedWeekend,
	"Р": WorkedWeekend,
}

// FromShortcut resolves a quick-entry key (case-insensitive)
func FromShortcut(key string) (Code, bool) {
	code, ok := shortcuts[normalize(key)]
	return code, ok
}

func normalize(s string) string {
	// cases.Caser is stateful, so a new one per call
	return cases.Upper(language.Russian).String(strings.TrimSpace(s))
}
