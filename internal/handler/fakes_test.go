package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/auth"
	"github.com/samurun/portfolio-api/internal/handler"
	"github.com/samurun/portfolio-api/internal/model"
	"github.com/samurun/portfolio-api/internal/repository"
	"github.com/samurun/portfolio-api/internal/router"
)

const testSecret = "handler-test-secret"

// fakeUserStore is an in-memory stand-in for repository.UserRepo.
type fakeUserStore struct {
	users  []model.User
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, name, email, passwordHash string) (model.PublicUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return model.PublicUser{}, repository.ErrDuplicate
		}
	}
	f.nextID++
	u := model.User{ID: f.nextID, Name: name, Email: email, Password: passwordHash}
	f.users = append(f.users, u)
	return u.Public(), nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

// fakeTechStore is an in-memory stand-in for repository.TechRepo.
type fakeTechStore struct {
	items  []model.TechStack
	nextID int64
}

func (f *fakeTechStore) GetAll(context.Context) ([]model.TechStack, error) {
	return append([]model.TechStack{}, f.items...), nil
}

func (f *fakeTechStore) GetByID(_ context.Context, id int64) (model.TechStack, error) {
	for _, t := range f.items {
		if t.ID == id {
			return t, nil
		}
	}
	return model.TechStack{}, repository.ErrNotFound
}

func (f *fakeTechStore) Create(_ context.Context, name string) (model.TechStack, error) {
	for _, t := range f.items {
		if t.Name == name {
			return model.TechStack{}, repository.ErrDuplicate
		}
	}
	f.nextID++
	t := model.TechStack{ID: f.nextID, Name: name}
	f.items = append(f.items, t)
	return t, nil
}

func (f *fakeTechStore) Delete(_ context.Context, id int64) (model.TechStack, error) {
	for i, t := range f.items {
		if t.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return t, nil
		}
	}
	return model.TechStack{}, repository.ErrNotFound
}

// fakeSummaryStore is an in-memory stand-in for repository.SummaryRepo.
type fakeSummaryStore struct {
	items  []model.Summary
	nextID int64
}

func (f *fakeSummaryStore) GetAll(context.Context) ([]model.Summary, error) {
	return append([]model.Summary{}, f.items...), nil
}

func (f *fakeSummaryStore) Create(_ context.Context, title, description string) (model.Summary, error) {
	f.nextID++
	s := model.Summary{ID: f.nextID, Title: title, Description: description}
	f.items = append(f.items, s)
	return s, nil
}

func (f *fakeSummaryStore) Update(_ context.Context, id int64, title, description string) (model.Summary, error) {
	for i, s := range f.items {
		if s.ID == id {
			f.items[i].Title = title
			f.items[i].Description = description
			return f.items[i], nil
		}
	}
	return model.Summary{}, repository.ErrNotFound
}

// fakeExperienceStore is an in-memory stand-in for repository.ExperienceRepo.
type fakeExperienceStore struct {
	items  []model.Experience
	nextID int64
}

func (f *fakeExperienceStore) GetAll(context.Context) ([]model.Experience, error) {
	return append([]model.Experience{}, f.items...), nil
}

func (f *fakeExperienceStore) GetByID(_ context.Context, id int64) (model.Experience, error) {
	for _, e := range f.items {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Experience{}, repository.ErrNotFound
}

func (f *fakeExperienceStore) Create(_ context.Context, in model.Experience) (model.Experience, error) {
	f.nextID++
	in.ID = f.nextID
	f.items = append(f.items, in)
	return in, nil
}

func (f *fakeExperienceStore) Update(_ context.Context, id int64, in model.Experience) (model.Experience, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			in.ID = id
			f.items[i] = in
			return in, nil
		}
	}
	return model.Experience{}, repository.ErrNotFound
}

func (f *fakeExperienceStore) Delete(_ context.Context, id int64) (int64, error) {
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakes bundles every store behind one server instance.
type fakes struct {
	users       *fakeUserStore
	techs       *fakeTechStore
	summaries   *fakeSummaryStore
	experiences *fakeExperienceStore
}

// newServer wires the fakes into the real router, validator, auth gate and
// error mapper so tests exercise the same pipeline production requests see.
func newServer(t *testing.T) (*echo.Echo, *fakes) {
	t.Helper()
	f := &fakes{
		users:       &fakeUserStore{},
		techs:       &fakeTechStore{},
		summaries:   &fakeSummaryStore{},
		experiences: &fakeExperienceStore{},
	}
	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.HTTPErrorHandler
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(f.users, testSecret, 4),
		Tech:       handler.NewTechHandler(f.techs, nil),
		Summary:    handler.NewSummaryHandler(f.summaries, nil),
		Experience: handler.NewExperienceHandler(f.experiences, nil),
	}
	router.Register(e, h, testSecret)
	return e, f
}

// bearerToken issues a token the auth gate accepts.
func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, 1, "tester@example.com")
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional JSON body and bearer token and
// decodes the envelope from the response.
func doJSON(t *testing.T, e *echo.Echo, method, path, body, token string) (int, api.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp api.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}
