package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStatus(t *testing.T) {
	assert.Equal(t, RoomEmpty, Room{Capacity: 3}.Status())
	assert.Equal(t, RoomPartiallyFilled, Room{Capacity: 3, CurrentOccupancy: 2}.Status())
	assert.Equal(t, RoomFull, Room{Capacity: 3, CurrentOccupancy: 3}.Status())
	assert.Equal(t, RoomFull, Room{Capacity: 2, CurrentOccupancy: 5}.Status())
}

func TestStatuses(t *testing.T) {
	assert.True(t, ComplaintInProgress.Valid())
	assert.False(t, ComplaintStatus("Closed").Valid())

	assert.False(t, OutpassPending.Terminal())
	assert.True(t, OutpassApproved.Terminal())
	assert.True(t, OutpassRejected.Terminal())
	assert.Equal(t, "badge-gray", OutpassStatus("Lost").Badge())
}

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFeeNoticeEncodeDecode(t *testing.T) {
	n := FeeNotice{
		Title:     "Mess fee",
		Link:      "https://pay.example.com/mess",
		StartDate: day("2026-03-01"),
		EndDate:   day("2026-03-15"),
		Body:      "Pay before the window closes.\nLate fees apply.",
	}
	got, ok := DecodeFeeNotice(EncodeFeeNotice(n))
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestDecodeFeeNoticeRejects(t *testing.T) {
	for name, content := range map[string]string{
		"plain text":     "Water supply will be interrupted on Sunday.",
		"no link":        FeeNoticeMarker + "\nfrom: 2026-03-01\nto: 2026-03-02",
		"bad date":       FeeNoticeMarker + "\nlink: https://x\nfrom: soon\nto: 2026-03-02",
		"reversed range": FeeNoticeMarker + "\nlink: https://x\nfrom: 2026-03-05\nto: 2026-03-02",
	} {
		_, ok := DecodeFeeNotice(content)
		assert.False(t, ok, name)
	}
}

func TestFeeNoticeActiveOnIsInclusive(t *testing.T) {
	n := FeeNotice{StartDate: day("2026-03-01"), EndDate: day("2026-03-15")}
	assert.True(t, n.ActiveOn(time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)))
	assert.True(t, n.ActiveOn(time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)))
	assert.False(t, n.ActiveOn(day("2026-02-28")))
	assert.False(t, n.ActiveOn(day("2026-03-16")))
}

func TestClassifyAllPinsFeeNotices(t *testing.T) {
	notice := EncodeFeeNotice(FeeNotice{Link: "https://x", StartDate: day("2026-03-01"), EndDate: day("2026-03-02")})
	list := ClassifyAll([]Announcement{
		{ID: 1, Title: "Plain one", Content: "hello"},
		{ID: 2, Title: "Fee", Content: notice},
		{ID: 3, Title: "Plain two", Content: "bye"},
	})
	require.Len(t, list, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{list[0].ID, list[1].ID, list[2].ID})
	assert.True(t, list[0].Pinned())
	assert.Equal(t, "Fee", list[0].Notice.Title)
	assert.Equal(t, "hello", list[1].Text())
}

func TestFlexDecoding(t *testing.T) {
	var s struct {
		Year   FlexString `json:"year"`
		Amount FlexFloat  `json:"amount"`
		Paid   Date       `json:"paid"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"year": 2, "amount": "2500.50", "paid": "2026-03-14T10:00:00Z"}`), &s))
	assert.Equal(t, FlexString("2"), s.Year)
	assert.Equal(t, FlexFloat(2500.5), s.Amount)
	assert.Equal(t, "2026-03-14", s.Paid.String())

	require.NoError(t, json.Unmarshal([]byte(`{"year": "3rd", "amount": 10, "paid": ""}`), &s))
	assert.Equal(t, FlexString("3rd"), s.Year)
	assert.Equal(t, FlexFloat(10), s.Amount)
	assert.True(t, s.Paid.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"amount": "ten"}`), &s))
}

func TestAdminDisplayName(t *testing.T) {
	assert.Equal(t, "Warden", AdminProfile{Username: "admin", Name: "Warden"}.DisplayName())
	assert.Equal(t, "admin", AdminProfile{Username: "admin"}.DisplayName())
}
