package workout

import (
	"fmt"
	"strings"
)

type Category int

const (
	LowerBodyAbs Category = iota
	UpperBodyAbs
)

var Categories = []Category{LowerBodyAbs, UpperBodyAbs}

var categoryNames = map[Category]string{
	LowerBodyAbs: "Lower Body & Abs",
	UpperBodyAbs: "Upper Body & Abs",
}

// Identifiers accepted in addition to the display names.
var categoryIdents = map[string]Category{
	"lowerbodyabs": LowerBodyAbs,
	"upperbodyabs": UpperBodyAbs,
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory accepts "Lower Body & Abs" or "LowerBodyAbs", case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	if c, ok := categoryIdents[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}

// ParseDay accepts full day names and three-letter abbreviations.
func ParseDay(s string) (DayOfWeek, error) {
	s = strings.TrimSpace(s)
	for i, name := range dayNames {
		if strings.EqualFold(name, s) || (len(s) == 3 && strings.EqualFold(name[:3], s)) {
			return DayOfWeek(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

func (d DayOfWeek) MarshalText() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, fmt.Errorf("unknown day %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *DayOfWeek) UnmarshalText(text []byte) error {
	v, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
