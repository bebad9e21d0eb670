package booking

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// PresetFull renders "Friday March, 15, 2024 at 7:30PM".
	PresetFull = "full"
	// PresetMedium renders "Fr 03, 15, 2024 7:30PM". It is the default.
	PresetMedium = "medium"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "01, 02, 2006 3:04PM"
)

// Formatter renders show start times for display in Location.
type Formatter struct {
	Location *time.Location
}

// NewFormatter returns a Formatter rendering in loc, or UTC when loc is nil.
func NewFormatter(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{Location: loc}
}

func (f Formatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// Format renders t with the named preset. An empty preset means medium; any
// other unknown preset is used as a time layout.
func (f Formatter) Format(t time.Time, preset string) string {
	t = t.In(f.location())
	switch preset {
	case "", PresetMedium:
		return t.Weekday().String()[:2] + " " + t.Format(mediumLayout)
	case PresetFull:
		return t.Format(fullLayout)
	default:
		return t.Format(preset)
	}
}

// FormatValue accepts a time.Time, a *time.Time or a date string and renders
// it with preset. Strings without a zone are read in the formatter location.
func (f Formatter) FormatValue(value any, preset string) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return f.Format(v, preset), nil
	case *time.Time:
		if v == nil {
			return "", fmt.Errorf("format datetime: nil time")
		}
		return f.Format(*v, preset), nil
	case string:
		t, err := f.Parse(v)
		if err != nil {
			return "", err
		}
		return f.Format(t, preset), nil
	default:
		return "", fmt.Errorf("format datetime: unsupported value %T", value)
	}
}

// Parse reads an ISO-8601-like date string in the formatter location.
func (f Formatter) Parse(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, f.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", value, err)
	}
	return t, nil
}
