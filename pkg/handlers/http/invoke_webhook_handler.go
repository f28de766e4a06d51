package http

import (
	"errors"

	"github.com/OpenFunnel/ActionGate/pkg/app/definition"
	"github.com/OpenFunnel/ActionGate/pkg/common"
	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/OpenFunnel/ActionGate/pkg/infra/metrics"
	"github.com/OpenFunnel/ActionGate/pkg/pipeline"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const webhookSurface = "webhook"

type invokeWebhookHandler struct {
	logger   *logrus.Logger
	finder   definition.Finder
	authGate *pipeline.AuthGate
	executor *pipeline.Executor
}

func NewInvokeWebhookHandler(
	logger *logrus.Logger,
	finder definition.Finder,
	authGate *pipeline.AuthGate,
	executor *pipeline.Executor,
) Handler {
	return &invokeWebhookHandler{
		logger:   logger,
		finder:   finder,
		authGate: authGate,
		executor: executor,
	}
}

// Handle serves POST /webhooks/:slug. Webhooks run the same pipeline as
// custom endpoints; historically they carried a single action, which the
// unified model treats as a pipeline of length one. A webhook whose only
// configured action is unrecognized is reported to the operator instead of
// silently no-opping the side effect they configured.
func (h *invokeWebhookHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	def, err := h.finder.FindBySlug(c.Context(), slug)
	if err != nil && !errors.Is(err, domain.ErrDefinitionNotFound) {
		h.logger.WithError(err).WithField("slug", slug).Error("failed to resolve webhook definition")
		return h.respond(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to resolve endpoint"})
	}
	if err != nil || def == nil || !def.IsActive() || def.Kind != endpoint.WebhookKind {
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
		HeaderSecret: c.Get(common.WebhookSecretHeader),
		QuerySecret:  c.Query(common.SecretQueryParam),
		AdminToken:   bearerToken(c),
	}
	if err := h.authGate.Authorize(def, supplied); err != nil {
		h.logger.WithField("slug", slug).Debug("webhook auth denied")
		return h.respond(c, fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"})
	}

	rawBody := append([]byte(nil), c.Body()...)
	ws := pipeline.BuildWebhookWorkingSet(rawBody)

	actions := pipeline.Compile([]byte(def.Actions))
	if len(actions) == 1 && !pipeline.IsKnownType(actions[0].Type) {
		return h.respond(c, fiber.StatusBadRequest, fiber.Map{
			"error": "Unknown action type: " + actions[0].Type,
		})
	}

	outcome, trace := h.executor.Execute(c.Context(), actions, ws, rawBody)
	if outcome == nil {
		outcome = pipeline.Synthesize(def.ResponseTemplate, trace)
	}
	return h.respond(c, outcome.StatusCode, outcome.Body)
}

func (h *invokeWebhookHandler) respond(c *fiber.Ctx, status int, body interface{}) error {
	metrics.RecordInvocation(webhookSurface, status)
	return c.Status(status).JSON(body)
}
