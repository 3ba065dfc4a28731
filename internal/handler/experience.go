package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/model"
	"github.com/samurun/portfolio-api/internal/queue"
	"github.com/samurun/portfolio-api/internal/repository"
)

// defaultLogo is stored when a client omits the logo path.
const defaultLogo = "/images/company-logo.svg"

// ExperienceStore is the slice of the experience repository the handlers need.
type ExperienceStore interface {
	GetAll(ctx context.Context) ([]model.Experience, error)
	GetByID(ctx context.Context, id int64) (model.Experience, error)
	Create(ctx context.Context, in model.Experience) (model.Experience, error)
	Update(ctx context.Context, id int64, in model.Experience) (model.Experience, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ExperienceHandler implements full CRUD for experience entries.
type ExperienceHandler struct {
	Experiences ExperienceStore
	Publish     EventPublisher
}

func NewExperienceHandler(experiences ExperienceStore, publish EventPublisher) *ExperienceHandler {
	return &ExperienceHandler{Experiences: experiences, Publish: publish}
}

type experienceReq struct {
	Logo        string   `json:"logo"`
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Skills      []string `json:"skills"`
	IsRemote    bool     `json:"isRemote"`
}

// toModel normalizes the request into a persistable record: dates become
// RFC 3339 strings, missing logo and skills get their defaults.
func (r experienceReq) toModel() (model.Experience, error) {
	start, err := normalizeDate(r.StartDate)
	if err != nil {
		return model.Experience{}, &api.ValidationError{Fields: api.FieldErrors{"startDate": {"must be a valid date"}}}
	}
	end, err := normalizeDate(r.EndDate)
	if err != nil {
		return model.Experience{}, &api.ValidationError{Fields: api.FieldErrors{"endDate": {"must be a valid date"}}}
	}
	logo := r.Logo
	if logo == "" {
		logo = defaultLogo
	}
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return model.Experience{
		Logo:        logo,
		Company:     r.Company,
		Position:    r.Position,
		Type:        r.Type,
		StartDate:   start,
		EndDate:     end,
		Description: r.Description,
		Skills:      skills,
		IsRemote:    r.IsRemote,
	}, nil
}

// normalizeDate accepts a date or date-time value and returns it as an
// RFC 3339 UTC string.
func normalizeDate(raw string) (string, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", errors.New("unrecognized date format")
}

// Create handles POST /api/v1/experience.
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req experienceReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in, err := req.toModel()
	if err != nil {
		return err
	}

	exp, err := h.Experiences.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	h.Publish.publish("experience", queue.ActionCreated, exp.ID)
	return api.Respond(c, http.StatusCreated, "Experience created successfully", exp)
}

// GetAll handles GET /api/v1/experience.
func (h *ExperienceHandler) GetAll(c echo.Context) error {
	items, err := h.Experiences.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return api.Respond(c, http.StatusOK, "Experiences fetched successfully", items)
}

// GetByID handles GET /api/v1/experience/:id.
func (h *ExperienceHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	exp, err := h.Experiences.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.NotFound("Experience not found")
		}
		return err
	}
	return api.Respond(c, http.StatusOK, "Experience fetched successfully", exp)
}

// Update handles PUT /api/v1/experience/:id.
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req experienceReq
	if err := c.Bind(&req); err != nil {
		return api.ErrInvalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in, err := req.toModel()
	if err != nil {
		return err
	}

	exp, err := h.Experiences.Update(c.Request().Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.NotFound("Experience not found")
		}
		return err
	}
	h.Publish.publish("experience", queue.ActionUpdated, exp.ID)
	return api.Respond(c, http.StatusOK, "Experience updated successfully", exp)
}

// Delete handles DELETE /api/v1/experience/:id.
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	affected, err := h.Experiences.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Experience not found")
	}
	h.Publish.publish("experience", queue.ActionDeleted, id)
	return api.Respond(c, http.StatusOK, "Experience deleted successfully", nil)
}
