package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Dashboard roles. Admin passes every role check.
const (
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
	RoleDoctor   = "doctor"
	RoleLab      = "lab"
	RolePharmacy = "pharmacy"
	RolePatient  = "patient"
)

// ValidRoles lists every role a login may select.
var ValidRoles = map[string]bool{
	RoleOwner:    true,
	RoleAdmin:    true,
	RoleDoctor:   true,
	RoleLab:      true,
	RolePharmacy: true,
	RolePatient:  true,
}

func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			for _, required := range roles {
				if role == required || role == RoleAdmin {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}
