package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/model"
	"github.com/samurun/portfolio-api/internal/queue"
	"github.com/samurun/portfolio-api/internal/repository"
)

// TechStore is the slice of the tech repository the handlers need.
type TechStore interface {
	GetAll(ctx context.Context) ([]model.TechStack, error)
	GetByID(ctx context.Context, id int64) (model.TechStack, error)
	Create(ctx context.Context, name string) (model.TechStack, error)
	Delete(ctx context.Context, id int64) (model.TechStack, error)
}

// TechHandler implements CRUD for tech-stack entries.
type TechHandler struct {
	Techs   TechStore
	Publish EventPublisher
}

func NewTechHandler(techs TechStore, publish EventPublisher) *TechHandler {
	return &TechHandler{Techs: techs, Publish: publish}
}

type techReq struct {
	Name string `json:"name" validate:"required"`
}

// Create handles POST /api/v1/tech. A duplicate name is a 409, never a
// silent overwrite.
func (h *TechHandler) Create(c echo.Context) error {
	var req techReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tech, err := h.Techs.Create(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return api.Conflict("Tech stack already exists")
		}
		return err
	}
	h.Publish.publish("tech", queue.ActionCreated, tech.ID)
	return api.Respond(c, http.StatusCreated, "Tech stack created successfully", tech)
}

// GetAll handles GET /api/v1/tech.
func (h *TechHandler) GetAll(c echo.Context) error {
	items, err := h.Techs.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return api.Respond(c, http.StatusOK, "Tech stacks fetched successfully", items)
}

// GetByID handles GET /api/v1/tech/:id.
func (h *TechHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tech, err := h.Techs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.NotFound("Tech stack not found")
		}
		return err
	}
	return api.Respond(c, http.StatusOK, "Tech stack fetched successfully", tech)
}

// Delete handles DELETE /api/v1/tech/:id and returns the deleted record.
func (h *TechHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tech, err := h.Techs.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.NotFound("Tech stack not found")
		}
		return err
	}
	h.Publish.publish("tech", queue.ActionDeleted, tech.ID)
	return api.Respond(c, http.StatusOK, "Tech stack deleted successfully", tech)
}
