package primitive

import (
	"fmt"
	"strings"
)

// CategoryEnum selects which textual representations a text widget may use
// when its value is written back into a non-string field.
type CategoryEnum int

const (
	CategoryTextNumber  CategoryEnum = 1 << iota // int, uint, float <-> string: textual number representation
	CategoryTextualBool                          // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                             // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryDuration                             // string(2h45m) <-> time.Duration: textual duration representation
	CategoryEnumString                           // string <-> named string type (checked with an IsValid method when present)

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var categoryNames = []struct {
	name     string
	category CategoryEnum
}{
	{"number", CategoryTextNumber},
	{"bool", CategoryTextualBool},
	{"datetime", CategoryDatetime},
	{"duration", CategoryDuration},
	{"enum", CategoryEnumString},
}

// Has reports whether every category in other is enabled in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

// ForKind returns the category a text conversion into kind belongs to.
// Plain strings need no category and report CategoryNone.
func ForKind(kind KindEnum) CategoryEnum {
	switch {
	case kind.IsNumber():
		return CategoryTextNumber
	case kind == KindBool:
		return CategoryTextualBool
	case kind == KindTime:
		return CategoryDatetime
	case kind == KindDuration:
		return CategoryDuration
	default:
		return CategoryNone
	}
}

func (c CategoryEnum) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryAll:
		return "all"
	}

	var parts []string
	for _, cn := range categoryNames {
		if c.Has(cn.category) {
			parts = append(parts, cn.name)
		}
	}

	return strings.Join(parts, ",")
}

// Decode parses a comma separated list of category names, as produced by
// String. It lets envdecode populate CategoryEnum fields directly.
func (c *CategoryEnum) Decode(s string) error {
	var res CategoryEnum

	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))

		switch part {
		case "":
			continue
		case "all":
			res |= CategoryAll
			continue
		case "none":
			continue
		}

		found := false
		for _, cn := range categoryNames {
			if cn.name == part {
				res |= cn.category
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("unknown text category %q", part)
		}
	}

	*c = res

	return nil
}
