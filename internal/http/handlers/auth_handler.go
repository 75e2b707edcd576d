package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"grocerhub/internal/domain"
	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
	"grocerhub/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

type signupReq struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "invalid name")
	}
	dob, ok := validate.Date(req.DOB)
	if !ok {
		return badRequest(c, "invalid date of birth, use DD-MM-YYYY")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return badRequest(c, "invalid phone number")
	}
	if !validate.Password(req.Password) {
		return badRequest(c, "password needs 6+ characters with a letter and a digit")
	}
	u, err := h.Auth.Signup(name, dob, phone, req.Location, req.Password)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "auth.signup", map[string]any{"phone": u.Phone})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": u.Name, "phone": u.Phone})
}

type loginReq struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	sid := ensureSID(c)
	u, err := h.Auth.Login(sid, req.Phone, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"phone": req.Phone})
		return fail(c, err)
	}
	applog.Audit(c, "auth.login", map[string]any{"phone": u.Phone})
	return c.JSON(fiber.Map{"name": u.Name, "phone": u.Phone, "role": u.Role})
}

// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		h.Auth.Logout(sid)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GET /profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	return c.JSON(fiber.Map{
		"name": u.Name, "dob": u.DOB, "phone": u.Phone,
		"location": u.Location, "role": u.Role,
	})
}

type profileReq struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// PUT /profile. The phone number can never change here.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Name != "" {
		if _, ok := validate.Name(req.Name); !ok {
			return badRequest(c, "invalid name")
		}
	}
	if req.DOB != "" {
		if _, ok := validate.Date(req.DOB); !ok {
			return badRequest(c, "invalid date of birth")
		}
	}
	if req.Password != "" && !validate.Password(req.Password) {
		return badRequest(c, "password needs 6+ characters with a letter and a digit")
	}
	updated, err := h.Auth.UpdateProfile(u.Phone, req.Name, req.DOB, req.Location, req.Password)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "auth.profile.update", map[string]any{"phone": u.Phone})
	return c.JSON(fiber.Map{"name": updated.Name, "dob": updated.DOB, "location": updated.Location})
}
