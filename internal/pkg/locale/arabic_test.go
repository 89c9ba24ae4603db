package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArabicDateAndTimeLabels(t *testing.T) {
	arabic := NewArabic()
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "الاثنين 02/06/2025", arabic.DateLabel(monday))
	assert.Equal(t, "10:00 ص", arabic.TimeLabel(monday))
	assert.Equal(t, "02:30 م", arabic.TimeLabel(time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "12:00 م", arabic.TimeLabel(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2 يونيو 2025", arabic.LongDate(monday))
}

func TestFormatTimeToArabic(t *testing.T) {
	assert.Equal(t, "١٠:٠٥ صباحاً", FormatTimeToArabic("10:05"))
	assert.Equal(t, "٠٢:٣٠ مساءً", FormatTimeToArabic("14:30:00"))
	assert.Equal(t, Invalid, FormatTimeToArabic("soon"))
}

func TestStatusAndGenderLabels(t *testing.T) {
	assert.Equal(t, "قيد الانتظار", StatusLabel("pending"))
	assert.Equal(t, "مؤكد", StatusLabel("CONFIRMED"))
	assert.Equal(t, Unspecified, StatusLabel(""))
	assert.Equal(t, Unspecified, StatusLabel("unknown"))

	assert.Equal(t, "ذكر", GenderLabel("male"))
	assert.Equal(t, "أنثى", GenderLabel("female"))
	assert.Equal(t, Unspecified, GenderLabel(""))
}

func TestTimeLeft(t *testing.T) {
	arabic := NewArabic()
	// Wednesday 2025-06-04 09:00
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		date  string
		clock string
		want  string
	}{
		{name: "already started", date: "2025-06-04", clock: "08:30", want: "الآن"},
		{name: "minutes only", date: "2025-06-04", clock: "09:45", want: "بعد ٤٥ دقيقة"},
		{name: "one hour", date: "2025-06-04", clock: "10:00:00", want: "بعد ١ ساعة"},
		{name: "hours and minutes", date: "2025-06-04", clock: "11:30", want: "بعد ٢ ساعات و٣٠ دقيقة"},
		{name: "tomorrow", date: "2025-06-05", clock: "08:00", want: "غداً"},
		{name: "later this week", date: "2025-06-07", clock: "08:00", want: "هذا الأسبوع"},
		{name: "later this month", date: "2025-06-20", clock: "08:00", want: "هذا الشهر"},
		{name: "another month", date: "2025-07-15", clock: "08:00", want: "15 يوليو 2025"},
		{name: "bad date", date: "04/06/2025", clock: "08:00", want: Invalid},
		{name: "bad time", date: "2025-06-04", clock: "morning", want: Invalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, arabic.TimeLeft(tc.date, tc.clock, now))
		})
	}
}

func TestParseLibyanDate(t *testing.T) {
	parsed, ok := ParseLibyanDate("25/12/1990", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC), parsed)

	_, ok = ParseLibyanDate("1990-12-25", time.UTC)
	assert.False(t, ok)
	_, ok = ParseLibyanDate("31/02/1990", time.UTC)
	assert.False(t, ok)
}
