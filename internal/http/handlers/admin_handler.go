package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
)

type AdminHandler struct {
	Auth *services.AuthService
}

// GET /admin/users
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users := h.Auth.ListUsers()
	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"name":     u.Name,
			"dob":      u.DOB,
			"phone":    u.Phone,
			"location": u.Location,
			"role":     u.Role,
		})
	}
	return c.JSON(out)
}

// DELETE /admin/users/:phone
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	phone := c.Params("phone")
	if err := h.Auth.DeleteUser(phone); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "users.delete", map[string]any{"phone": phone})
	return c.JSON(fiber.Map{"ok": true})
}
