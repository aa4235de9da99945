package session

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/logger"
	"hostel-portal/app/models"
)

// State is the outcome of identity resolution. Resolving is only observable
// before Resolve returns; the other three are terminal.
type State int

const (
	Resolving State = iota
	Admin
	Student
	Anonymous
)

func (s State) String() string {
	switch s {
	case Admin:
		return "admin"
	case Student:
		return "student"
	case Anonymous:
		return "anonymous"
	default:
		return "resolving"
	}
}

// Identity is who the current request belongs to.
type Identity struct {
	State   State
	Admin   *models.AdminProfile
	Student *models.Student
}

func (i Identity) Authenticated() bool {
	return i.State == Admin || i.State == Student
}

// DisplayName is the name shown in the page header.
func (i Identity) DisplayName() string {
	switch {
	case i.State == Admin && i.Admin != nil:
		return i.Admin.DisplayName()
	case i.State == Student && i.Student != nil:
		return i.Student.Name
	default:
		return ""
	}
}

// HomePath is the landing page for the role.
func (i Identity) HomePath() string {
	switch i.State {
	case Admin:
		return "/admin/dashboard"
	case Student:
		return "/student/dashboard"
	default:
		return "/auth/login"
	}
}

// Prober checks the backend session for each role.
type Prober interface {
	AdminProfile(ctx context.Context) (models.AdminProfile, error)
	StudentProfile(ctx context.Context) (models.Student, error)
}

// probe is one step of the resolution chain. An error falls through to the next step.
type probe struct {
	state State
	run   func(ctx context.Context, p Prober) (Identity, error)
}

// Resolver determines the role of a session by asking the backend, admin
// first and student second. Each role is probed at most once per Resolve.
type Resolver struct {
	chain []probe
}

func NewResolver() *Resolver {
	return &Resolver{chain: []probe{
		{state: Admin, run: func(ctx context.Context, p Prober) (Identity, error) {
			profile, err := p.AdminProfile(ctx)
			if err != nil {
				return Identity{}, err
			}
			return Identity{State: Admin, Admin: &profile}, nil
		}},
		{state: Student, run: func(ctx context.Context, p Prober) (Identity, error) {
			profile, err := p.StudentProfile(ctx)
			if err != nil {
				return Identity{}, err
			}
			return Identity{State: Student, Student: &profile}, nil
		}},
	}}
}

// Resolve walks the probe chain and returns the first role the backend
// accepts, or Anonymous when every probe fails.
func (r *Resolver) Resolve(ctx context.Context, p Prober) Identity {
	for _, step := range r.chain {
		id, err := step.run(ctx, p)
		if err == nil {
			return id
		}
		logger.Debug().Str("role", step.state.String()).Err(err).Msg("identity probe failed")
	}
	return Identity{State: Anonymous}
}

const localsKey = "identity"

// Store attaches the resolved identity to the request.
func Store(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

// FromCtx returns the identity resolved for this request, Anonymous if none.
func FromCtx(c *fiber.Ctx) Identity {
	if id, ok := c.Locals(localsKey).(Identity); ok {
		return id
	}
	return Identity{State: Anonymous}
}
