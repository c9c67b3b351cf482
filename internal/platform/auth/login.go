package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LoginHandler issues role tokens. There is no credential store: any
// name/password is accepted and the caller simply selects a role, exactly as
// the dashboard's login screen works.
type LoginHandler struct {
	secret   string
	tokenTTL time.Duration
}

func NewLoginHandler(secret string) *LoginHandler {
	return &LoginHandler{secret: secret, tokenTTL: 24 * time.Hour}
}

func (h *LoginHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/auth/login", h.Login)
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *LoginHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ValidRoles[req.Role] {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role: "+req.Role)
	}
	if req.Name == "" {
		req.Name = "Guest"
	}

	now := time.Now()
	claims := &Claims{
		Name: req.Name,
		Role: req.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "sign token")
	}

	return c.JSON(http.StatusOK, loginResponse{Token: signed, Name: req.Name, Role: req.Role})
}
