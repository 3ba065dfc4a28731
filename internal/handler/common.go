// Package handler contains the HTTP handlers. Each handler is a struct over
// a store interface so tests can substitute in-memory fakes for the Postgres
// repositories.
package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/queue"
)

// EventPublisher delivers a portfolio mutation event to the broker. It may
// be nil, in which case publishing is skipped entirely.
type EventPublisher func(ctx context.Context, ev queue.PortfolioEvent) error

// publish fires an event without blocking the response. Delivery errors are
// the publisher's problem (it logs them); the request has already succeeded.
func (p EventPublisher) publish(entity, action string, id int64) {
	if p == nil {
		return
	}
	ev := queue.PortfolioEvent{
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = p(context.Background(), ev) }()
}

// pathID parses the :id route parameter. A non-numeric id is a validation
// failure, matching how schema-validated params behave.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &api.ValidationError{Fields: api.FieldErrors{"id": {"must be a number"}}}
	}
	return id, nil
}
