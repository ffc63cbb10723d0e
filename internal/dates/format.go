package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// FormatTime renders a 24-hour "H:MM"/"HH:MM" string for display: 12-hour
// with AM/PM for en-family locales, 24-hour otherwise.
//
// Malformed or out-of-range input is echoed back unchanged, as is the
// "24:00" sentinel. Stored data contains such values and the UI shows them
// as-is rather than failing.
func FormatTime(hhmm, locale string) string {
	if hhmm == "24:00" {
		return hhmm
	}

	m := clockPattern.FindStringSubmatch(hhmm)
	if m == nil {
		return hhmm
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return hhmm
	}

	if strings.HasPrefix(strings.ToLower(locale), "en") {
		t := time.Date(0, time.January, 1, hours, minutes, 0, 0, time.UTC)
		return t.Format("3:04 PM")
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

var weekdayNames = map[string][7]string{
	"es": {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"de": {"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
}

var monthNames = map[string][12]string{
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
}

// FormatDateWithWeekday renders a date with its full weekday and month name
// in the given locale's ordering:
//
//	es: "Lunes, 15 de mayo, 2023"
//	en: "Monday, May 15, 2023"
//	de: "Montag, 15. Mai 2023"
//
// The weekday's first letter is capitalized in every locale. Unknown locales
// fall back to Spanish, the site's primary language.
func FormatDateWithWeekday(t time.Time, locale string) string {
	if _, ok := weekdayNames[locale]; !ok {
		locale = "es"
	}

	weekday := capitalize(weekdayNames[locale][t.Weekday()])
	month := monthNames[locale][t.Month()-1]

	switch locale {
	case "en":
		return fmt.Sprintf("%s, %s %d, %d", weekday, month, t.Day(), t.Year())
	case "de":
		return fmt.Sprintf("%s, %d. %s %d", weekday, t.Day(), month, t.Year())
	default:
		return fmt.Sprintf("%s, %d de %s, %d", weekday, t.Day(), month, t.Year())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
