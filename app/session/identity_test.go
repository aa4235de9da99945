package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-portal/app/models"
)

type fakeProber struct {
	admin, student   bool
	adminN, studentN int
}

func (f *fakeProber) AdminProfile(ctx context.Context) (models.AdminProfile, error) {
	f.adminN++
	if !f.admin {
		return models.AdminProfile{}, errors.New("401")
	}
	return models.AdminProfile{Username: "warden"}, nil
}

func (f *fakeProber) StudentProfile(ctx context.Context) (models.Student, error) {
	f.studentN++
	if !f.student {
		return models.Student{}, errors.New("401")
	}
	return models.Student{Name: "Asha", RollNo: "21CS001"}, nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name             string
		prober           fakeProber
		want             State
		adminN, studentN int
	}{
		{"admin session", fakeProber{admin: true}, Admin, 1, 0},
		{"student session", fakeProber{student: true}, Student, 1, 1},
		{"both accepted prefers admin", fakeProber{admin: true, student: true}, Admin, 1, 0},
		{"no session", fakeProber{}, Anonymous, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.prober
			id := NewResolver().Resolve(context.Background(), &p)
			assert.Equal(t, tt.want, id.State)
			assert.Equal(t, tt.adminN, p.adminN)
			assert.Equal(t, tt.studentN, p.studentN)
		})
	}
}

func TestIdentityAccessors(t *testing.T) {
	id := NewResolver().Resolve(context.Background(), &fakeProber{student: true})
	require.NotNil(t, id.Student)
	assert.True(t, id.Authenticated())
	assert.Equal(t, "Asha", id.DisplayName())
	assert.Equal(t, "/student/dashboard", id.HomePath())

	anon := Identity{State: Anonymous}
	assert.False(t, anon.Authenticated())
	assert.Equal(t, "/auth/login", anon.HomePath())
	assert.False(t, Identity{}.Authenticated())
	assert.Equal(t, "resolving", Identity{}.State.String())
}
