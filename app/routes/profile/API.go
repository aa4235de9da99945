package profile

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/forms"
	"hostel-portal/app/models"
	"hostel-portal/app/routes/web"
)

const profilePath = "/student/profile"

func render(c *fiber.Ctx, env *web.Env, status int, data fiber.Map) error {
	p, err := env.Backend(c).StudentProfile(web.Ctx(c))
	if err != nil {
		data["LoadError"] = web.LoadError(err, "Failed to load your profile. Please try logging in again.")
	} else {
		data["Profile"] = p
	}
	c.Status(status)
	return web.Page(c, "student/profile", "My Profile", "profile", data)
}

func profilePage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, env, fiber.StatusOK, fiber.Map{"PasswordOpen": c.Query("password") != ""})
	}
}

// changePasswordHandler never echoes submitted passwords back into the form.
func changePasswordHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindPassword(c), "Failed to change password.", func(ctx context.Context, d forms.PasswordDraft) (models.Message, error) {
			return backend.ChangeStudentPassword(ctx, d.OldPassword, d.NewPassword)
		})
		if out.Closed {
			return web.Redirect(c, profilePath, out.Message)
		}
		return render(c, env, web.FailureStatus(out.Err), fiber.Map{
			"PasswordOpen":  true,
			"PasswordError": out.Error,
		})
	}
}
