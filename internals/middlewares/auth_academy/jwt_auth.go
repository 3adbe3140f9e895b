// file: internals/middlewares/auth_academy/jwt_auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "studioku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi token yang diterbitkan platform auth eksternal dan
// meng-hydrate Locals (user_id, academy_id, role) untuk helper downstream.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS YANG DIHARAPKAN HELPER ===

		// academy_id (tenant scope)
		if aid := strClaim(claims, "academy_id"); aid != "" {
			c.Locals(helper.LocAcademyID, aid)
		}

		// role
		if r := strClaim(claims, "role"); r != "" {
			c.Locals(helper.LocRole, r)
		}

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "user_id"))
		}

		// Validasi cepat user_id berbentuk UUID, biar fail-fast
		if v := c.Locals(helper.LocUserID); v != nil {
			if s, ok := v.(string); ok {
				if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
					return fiber.NewError(fiber.StatusUnauthorized, "user_id pada token tidak valid")
				}
			}
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
