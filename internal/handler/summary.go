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

// SummaryStore is the slice of the summary repository the handlers need.
type SummaryStore interface {
	GetAll(ctx context.Context) ([]model.Summary, error)
	Create(ctx context.Context, title, description string) (model.Summary, error)
	Update(ctx context.Context, id int64, title, description string) (model.Summary, error)
}

// SummaryHandler implements create, list and update for summaries. No delete
// operation is exposed for this entity.
type SummaryHandler struct {
	Summaries SummaryStore
	Publish   EventPublisher
}

func NewSummaryHandler(summaries SummaryStore, publish EventPublisher) *SummaryHandler {
	return &SummaryHandler{Summaries: summaries, Publish: publish}
}

type summaryReq struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
}

// Create handles POST /api/v1/summary.
func (h *SummaryHandler) Create(c echo.Context) error {
	var req summaryReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.Summaries.Create(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return err
	}
	h.Publish.publish("summary", queue.ActionCreated, s.ID)
	return api.Respond(c, http.StatusCreated, "Summary created successfully", s)
}

// GetAll handles GET /api/v1/summary.
func (h *SummaryHandler) GetAll(c echo.Context) error {
	items, err := h.Summaries.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return api.Respond(c, http.StatusOK, "Summaries fetched successfully", items)
}

// Update handles PUT /api/v1/summary/:id.
func (h *SummaryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req summaryReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.Summaries.Update(c.Request().Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.NotFound("Summary not found")
		}
		return err
	}
	h.Publish.publish("summary", queue.ActionUpdated, s.ID)
	return api.Respond(c, http.StatusOK, "Summary updated successfully", s)
}
