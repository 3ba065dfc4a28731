package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/auth"
	"github.com/samurun/portfolio-api/internal/model"
	"github.com/samurun/portfolio-api/internal/repository"
)

// UserStore is the slice of the user repository the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (model.PublicUser, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler implements signup and login.
type AuthHandler struct {
	Users      UserStore
	JWTSecret  string
	BcryptCost int
}

func NewAuthHandler(users UserStore, jwtSecret string, bcryptCost int) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: jwtSecret, BcryptCost: bcryptCost}
}

type signupReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles POST /api/v1/auth/signup: hash the password, insert the
// user, return its public projection. A taken email is a 409.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx := c.Request().Context()
	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		return api.Conflict("Email already in use")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return err
	}

	user, err := h.Users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		// Lost the race against a concurrent signup with the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return api.Conflict("Email already in use")
		}
		return err
	}
	return api.Respond(c, http.StatusCreated, "User created successfully", user)
}

// Login handles POST /api/v1/auth/login: verify credentials and issue a
// signed token carrying the user's id and email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.Users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.Unauthorized("Invalid credentials")
		}
		return err
	}
	if !auth.VerifyPassword(user.Password, req.Password) {
		return api.Unauthorized("Invalid credentials")
	}

	token, err := auth.IssueToken(h.JWTSecret, user.ID, user.Email)
	if err != nil {
		return err
	}
	return api.Respond(c, http.StatusOK, "Login successful", echo.Map{"token": token})
}
