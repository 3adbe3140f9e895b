// file: internals/helpers/academy_context.go
package helper

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware auth_academy.
const (
	LocUserID    = "user_id"
	LocAcademyID = "academy_id"
	LocRole      = "role"
)

// GetAcademyIDFromToken mengambil academy_id (tenant scope) dari Locals.
// Error 401 bila tidak ada, 400 bila bukan UUID.
func GetAcademyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocAcademyID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "academy_id tidak ditemukan di token")
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "academy_id pada token tidak valid")
	}
	return id, nil
}

// GetUserIDFromToken mengambil user_id dari Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id pada token tidak valid")
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari Locals ("" bila tidak ada).
func GetRoleFromToken(c *fiber.Ctx) string {
	if v := c.Locals(LocRole); v != nil {
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return ""
}
