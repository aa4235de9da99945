package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-portal/app/models"
)

func TestWriteOccupancy(t *testing.T) {
	rooms := []models.Room{
		{RoomNumber: "101", Capacity: 2, CurrentOccupancy: 2},
		{RoomNumber: "102", Capacity: 2, CurrentOccupancy: 1},
		{RoomNumber: "201", Capacity: 4},
	}
	var buf bytes.Buffer
	require.NoError(t, writeOccupancy(&buf, rooms))

	out := buf.String()
	assert.Contains(t, out, "FLOOR")
	assert.Regexp(t, `1\s+3\s+4\s+75%`, out)
	assert.Regexp(t, `2\s+0\s+4\s+0%`, out)
	assert.Regexp(t, `Full\s+1`, out)
	assert.Regexp(t, `Partially Filled\s+1`, out)
	assert.Regexp(t, `Empty\s+1`, out)
}

func TestCredentialsFromEnv(t *testing.T) {
	username, password = "", ""
	t.Setenv("HOSTEL_ADMIN_USERNAME", "warden")
	t.Setenv("HOSTEL_ADMIN_PASSWORD", "secret")

	u, p, err := credentials()
	require.NoError(t, err)
	assert.Equal(t, "warden", u)
	assert.Equal(t, "secret", p)

	t.Setenv("HOSTEL_ADMIN_PASSWORD", "")
	_, _, err = credentials()
	assert.Error(t, err)
}
