// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"reportsys/internal/delivery/api/response"
	"reportsys/internal/domain/entity"
	"reportsys/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves login and registration.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// LoginRequest is the body of POST /api/account/login.
// Fields are not tag-validated: empty credentials must fail like any other bad login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RegisterStudentRequest is the body of POST /api/account/register/student.
type RegisterStudentRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterPrivilegedRequest is the body of POST /api/account/register/privileged.
// Role is the role ordinal: 1 for teacher, 2 for admin.
type RegisterPrivilegedRequest struct {
	Role     entity.Role `json:"role"`
	Name     string      `json:"name"`
	Surname  string      `json:"surname"`
	Email    string      `json:"email"`
	Degree   string      `json:"degree"`
	Position string      `json:"position"`
	Login    string      `json:"login" validate:"required"`
	Password string      `json:"password" validate:"required"`
}

// Login handles the login request and returns the issued token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// RegisterStudent handles registration of an ordinary user.
func (h *AccountHandler) RegisterStudent(c echo.Context) error {
	var req RegisterStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterStudent(c.Request().Context(), &usecase.RegisterStudentInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// RegisterTeacherOrAdmin handles registration of a privileged account.
func (h *AccountHandler) RegisterTeacherOrAdmin(c echo.Context) error {
	var req RegisterPrivilegedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterTeacherOrAdmin(c.Request().Context(), &usecase.RegisterPrivilegedInput{
		Role:     req.Role,
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Degree:   req.Degree,
		Position: req.Position,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
