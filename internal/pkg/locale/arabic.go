package locale

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"
)

const (
	Invalid     = "غير صالح"
	Unspecified = "غير محدد"
)

var weekdayNames = [...]string{
	time.Sunday:    "الأحد",
	time.Monday:    "الاثنين",
	time.Tuesday:   "الثلاثاء",
	time.Wednesday: "الأربعاء",
	time.Thursday:  "الخميس",
	time.Friday:    "الجمعة",
	time.Saturday:  "السبت",
}

var monthNames = [...]string{
	time.January:   "يناير",
	time.February:  "فبراير",
	time.March:     "مارس",
	time.April:     "أبريل",
	time.May:       "مايو",
	time.June:      "يونيو",
	time.July:      "يوليو",
	time.August:    "أغسطس",
	time.September: "سبتمبر",
	time.October:   "أكتوبر",
	time.November:  "نوفمبر",
	time.December:  "ديسمبر",
}

var arabicIndicDigits = []rune("٠١٢٣٤٥٦٧٨٩")

// Arabic renders labels the way the patient portal shows them.
type Arabic struct{}

func NewArabic() Arabic {
	return Arabic{}
}

// DateLabel renders "<weekday> dd/MM/yyyy", e.g. "الاثنين 02/06/2025".
func (Arabic) DateLabel(t time.Time) string {
	return fmt.Sprintf("%s %s", weekdayNames[t.Weekday()], t.Format(constvars.LibyanDateLayout))
}

// TimeLabel renders a 12 hour clock with the short meridiem, e.g. "10:30 ص".
func (Arabic) TimeLabel(t time.Time) string {
	meridiem := "ص"
	if t.Hour() >= 12 {
		meridiem = "م"
	}
	return fmt.Sprintf("%s %s", t.Format("03:04"), meridiem)
}

// LongDate renders "d MMMM yyyy" with Arabic month names.
func (Arabic) LongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()], t.Year())
}

// FormatTimeToArabic renders HH:MM[:SS] with Arabic-Indic digits and the
// long meridiem, e.g. "١٠:٠٥ صباحاً".
func FormatTimeToArabic(input string) string {
	parsed, ok := parseClock(input)
	if !ok {
		return Invalid
	}
	meridiem := "صباحاً"
	if parsed.Hour() >= 12 {
		meridiem = "مساءً"
	}
	return fmt.Sprintf("%s %s", ToArabicDigits(parsed.Format("03:04")), meridiem)
}

// ToArabicDigits replaces ASCII digits with Arabic-Indic digits.
func ToArabicDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(arabicIndicDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseLibyanDate parses dd/MM/yyyy in loc.
func ParseLibyanDate(input string, loc *time.Location) (time.Time, bool) {
	parsed, err := time.ParseInLocation(constvars.LibyanDateLayout, strings.TrimSpace(input), loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func parseClock(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)
	for _, layout := range []string{constvars.ClockSecondLayout, constvars.ClockLayout} {
		if parsed, err := time.Parse(layout, input); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func WeekdayName(day time.Weekday) string {
	return weekdayNames[day]
}
