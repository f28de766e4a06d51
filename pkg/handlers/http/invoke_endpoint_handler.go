package http

import (
	"errors"
	"strings"

	"github.com/OpenFunnel/ActionGate/pkg/app/definition"
	"github.com/OpenFunnel/ActionGate/pkg/common"
	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/OpenFunnel/ActionGate/pkg/infra/metrics"
	"github.com/OpenFunnel/ActionGate/pkg/pipeline"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const endpointSurface = "endpoint"

type invokeEndpointHandler struct {
	logger   *logrus.Logger
	finder   definition.Finder
	authGate *pipeline.AuthGate
	executor *pipeline.Executor
}

func NewInvokeEndpointHandler(
	logger *logrus.Logger,
	finder definition.Finder,
	authGate *pipeline.AuthGate,
	executor *pipeline.Executor,
) Handler {
	return &invokeEndpointHandler{
		logger:   logger,
		finder:   finder,
		authGate: authGate,
		executor: executor,
	}
}

// Handle serves GET|POST|PUT|DELETE /endpoints/:slug. The definition is
// resolved and evaluated exactly once per request; gate order is
// not-found, method, auth.
func (h *invokeEndpointHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	def, err := h.finder.FindBySlug(c.Context(), slug)
	if err != nil && !errors.Is(err, domain.ErrDefinitionNotFound) {
		// A store outage is not a missing definition; callers and
		// monitoring need to see the difference.
		h.logger.WithError(err).WithField("slug", slug).Error("failed to resolve endpoint definition")
		return h.respond(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to resolve endpoint"})
	}
	if err != nil || def == nil || !def.IsActive() || def.Kind != endpoint.EndpointKind {
		// One message whether the slug is unknown or the definition is
		// inactive; inactive definitions must not be enumerable.
		return h.respond(c, fiber.StatusNotFound, fiber.Map{"error": "Endpoint not found"})
	}

	if err := pipeline.CheckMethod(def, c.Method()); err != nil {
		var methodErr *pipeline.MethodNotAllowedError
		if errors.As(err, &methodErr) {
			return h.respond(c, fiber.StatusMethodNotAllowed, fiber.Map{"error": methodErr.Error()})
		}
		return h.respond(c, fiber.StatusMethodNotAllowed, fiber.Map{"error": err.Error()})
	}

	supplied := pipeline.SecretSource{
		HeaderSecret: c.Get(common.EndpointKeyHeader),
		QuerySecret:  c.Query(common.SecretQueryParam),
		AdminToken:   bearerToken(c),
	}
	if err := h.authGate.Authorize(def, supplied); err != nil {
		h.logger.WithField("slug", slug).Debug("endpoint auth denied")
		return h.respond(c, fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"})
	}

	rawBody := append([]byte(nil), c.Body()...)
	ws := pipeline.BuildWorkingSet(c.Method(), c.Get(fiber.HeaderContentType), rawBody, c.Queries())

	actions := pipeline.Compile([]byte(def.Actions))
	outcome, trace := h.executor.Execute(c.Context(), actions, ws, rawBody)
	if outcome == nil {
		outcome = pipeline.Synthesize(def.ResponseTemplate, trace)
	}
	return h.respond(c, outcome.StatusCode, outcome.Body)
}

func (h *invokeEndpointHandler) respond(c *fiber.Ctx, status int, body interface{}) error {
	metrics.RecordInvocation(endpointSurface, status)
	return c.Status(status).JSON(body)
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
