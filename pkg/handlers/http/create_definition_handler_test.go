package http

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/OpenFunnel/ActionGate/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCreateApp(t *testing.T, repo *mocks.Repository) *fiber.App {
	t.Helper()
	h := NewCreateDefinitionHandler(logrus.New(), repo)
	app := fiber.New()
	app.Post("/api/v1/definitions", h.Handle)
	return app
}

func TestCreateDefinition_Success(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	app := newCreateApp(t, repo)

	body := `{"slug":"ping","kind":"endpoint","method":"GET","actions":[{"type":"respond","config":{"body":"pong"}}]}`
	req := httptest.NewRequest("POST", "/api/v1/definitions", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "ping", decodeBody(t, resp)["slug"])
}

func TestCreateDefinition_MissingSlug(t *testing.T) {
	app := newCreateApp(t, mocks.NewRepository(t))

	req := httptest.NewRequest("POST", "/api/v1/definitions", bytes.NewReader([]byte(`{"kind":"endpoint"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateDefinition_DuplicateSlugConflicts(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_endpoint_definitions_slug" (SQLSTATE 23505)`))
	app := newCreateApp(t, repo)

	req := httptest.NewRequest("POST", "/api/v1/definitions", bytes.NewReader([]byte(`{"slug":"ping"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "Slug already exists", decodeBody(t, resp)["error"])
}
