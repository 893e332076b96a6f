package entities

import "time"

const DateLayout = "2006-01-02"

// DaysFromPlanting derives the day count between a planting date and a
// harvest date. Nil when either date is absent or malformed. A harvest dated
// before its planting yields a negative count on purpose; the record is
// shown as entered, not clamped.
func DaysFromPlanting(planted *string, harvested string) *int {
	if planted == nil || *planted == "" || harvested == "" {
		return nil
	}
	p, err := time.Parse(DateLayout, *planted)
	if err != nil {
		return nil
	}
	h, err := time.Parse(DateLayout, harvested)
	if err != nil {
		return nil
	}
	d := int(h.Sub(p).Hours() / 24)
	return &d
}
