package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"hostel-portal/app/models"
)

// Funcs are the template helpers registered on the view engine.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"json": func(v interface{}) (template.JS, error) {
			b, err := json.Marshal(v)
			return template.JS(b), err
		},
		"date":     FormatDate,
		"datetime": FormatDateTime,
		"money":    FormatMoney,
		"add":      func(a, b int) int { return a + b },
		"lower":    strings.ToLower,
		"selected": func(a, b interface{}) template.HTMLAttr {
			if fmt.Sprint(a) == fmt.Sprint(b) {
				return "selected"
			}
			return ""
		},
	}
}

// FormatDate renders a time.Time, models.Date or date string as 02 Jan 2006.
func FormatDate(v interface{}) string {
	var t time.Time
	switch d := v.(type) {
	case time.Time:
		t = d
	case models.Date:
		t = d.Time
	case string:
		parsed, err := models.ParseDate(d)
		if err != nil {
			return d
		}
		t = parsed
	default:
		return ""
	}
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

// FormatDateTime renders a timestamp in the server's zone.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("02 Jan 2006, 3:04 PM")
}

// FormatMoney renders an amount with two decimals and thousands separators.
func FormatMoney(v interface{}) string {
	var f float64
	switch n := v.(type) {
	case models.FlexFloat:
		f = float64(n)
	case float64:
		f = n
	case int:
		f = float64(n)
	}
	s := fmt.Sprintf("%.2f", f)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
