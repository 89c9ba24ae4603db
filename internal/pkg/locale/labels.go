package locale

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

var statusLabels = map[string]string{
	"active":     "نشط",
	"inactive":   "غير نشط",
	"pending":    "قيد الانتظار",
	"cancelled":  "ملغي",
	"completed":  "مكتمل",
	"failed":     "فشل",
	"processing": "قيد المعالجة",
	"draft":      "مسودة",
	"approved":   "موافق عليه",
	"rejected":   "مرفوض",
	"refunded":   "مسترد",
	"shipped":    "تم الشحن",
	"delivered":  "تم التسليم",
	"confirmed":  "مؤكد",
}

func StatusLabel(status string) string {
	if label, ok := statusLabels[strings.ToLower(strings.TrimSpace(status))]; ok {
		return label
	}
	return Unspecified
}

func GenderLabel(gender string) string {
	switch gender {
	case constvars.GenderMale:
		return "ذكر"
	case constvars.GenderFemale:
		return "أنثى"
	default:
		return Unspecified
	}
}

// TimeLeft describes how far an appointment on date (yyyy-MM-dd) at clock
// (HH:MM[:SS]) is from now, both read in now's location.
func (a Arabic) TimeLeft(date, clock string, now time.Time) string {
	day, err := time.ParseInLocation(constvars.DateKeyLayout, strings.TrimSpace(date), now.Location())
	if err != nil {
		return Invalid
	}
	wall, ok := parseClock(clock)
	if !ok {
		return Invalid
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, now.Location())

	switch {
	case sameDay(at, now):
		return inHoursAndMinutes(int(at.Sub(now) / time.Minute))
	case sameDay(at, now.AddDate(0, 0, 1)):
		return "غداً"
	case sameWeek(at, now):
		return "هذا الأسبوع"
	case at.Year() == now.Year() && at.Month() == now.Month():
		return "هذا الشهر"
	}
	return a.LongDate(at)
}

func inHoursAndMinutes(minutesLeft int) string {
	if minutesLeft <= 0 {
		return "الآن"
	}
	hours := minutesLeft / 60
	minutes := minutesLeft % 60

	var b strings.Builder
	b.WriteString("بعد ")
	if hours > 0 {
		b.WriteString(ToArabicDigits(strconv.Itoa(hours)))
		if hours == 1 {
			b.WriteString(" ساعة")
		} else {
			b.WriteString(" ساعات")
		}
	}
	if hours > 0 && minutes > 0 {
		b.WriteString(" و")
	}
	if minutes > 0 {
		b.WriteString(ToArabicDigits(strconv.Itoa(minutes)))
		b.WriteString(" دقيقة")
	}
	return b.String()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameWeek uses weeks starting on Sunday.
func sameWeek(a, b time.Time) bool {
	startOf := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
	}
	return startOf(a).Equal(startOf(b))
}
