package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostel-portal/app/models"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "25,000.00", FormatMoney(models.FlexFloat(25000)))
	assert.Equal(t, "999.50", FormatMoney(999.5))
	assert.Equal(t, "1,234,567.00", FormatMoney(1234567))
	assert.Equal(t, "-1,000.00", FormatMoney(-1000.0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "09 Mar 2026", FormatDate("2026-03-09"))
	assert.Equal(t, "09 Mar 2026", FormatDate(models.NewDate(time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "soon", FormatDate("soon"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Rooms - Hostel Portal", Title("Rooms"))
	assert.Equal(t, "Hostel Portal", Title(""))
}
