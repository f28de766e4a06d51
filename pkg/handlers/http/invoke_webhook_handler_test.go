package http

import (
	"bytes"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/OpenFunnel/ActionGate/mocks"
	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/OpenFunnel/ActionGate/pkg/infra/crm"
	"github.com/OpenFunnel/ActionGate/pkg/pipeline"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWebhookApp(t *testing.T, finder *mocks.Finder, crmClient *mocks.Client) *fiber.App {
	t.Helper()
	logger := logrus.New()
	executor := pipeline.NewExecutor(logger, crmClient, nethttp.DefaultClient, "")
	h := NewInvokeWebhookHandler(logger, finder, pipeline.NewAuthGate(mocks.NewManager(t)), executor)

	app := fiber.New()
	app.Post("/webhooks/:slug", h.Handle)
	return app
}

func activeWebhook(slug, actions string) *endpoint.EndpointDefinition {
	return &endpoint.EndpointDefinition{
		Slug:    slug,
		Kind:    endpoint.WebhookKind,
		Method:  "POST",
		Status:  endpoint.StatusActive,
		Actions: domain.ActionsJSON(actions),
	}
}

func postJSON(app *fiber.App, path, body string, headers map[string]string) (*nethttp.Response, error) {
	req := httptest.NewRequest("POST", path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return app.Test(req)
}

func TestInvokeWebhook_UnknownSlugIs404(t *testing.T) {
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "missing").Return(nil, domain.ErrDefinitionNotFound)
	app := newWebhookApp(t, finder, mocks.NewClient(t))

	resp, err := postJSON(app, "/webhooks/missing", `{}`, nil)

	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestInvokeWebhook_StoreFailureIs500(t *testing.T) {
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "intake").
		Return(nil, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))
	app := newWebhookApp(t, finder, mocks.NewClient(t))

	resp, err := postJSON(app, "/webhooks/intake", `{}`, nil)

	assert.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Failed to resolve endpoint", decodeBody(t, resp)["error"])
}

func TestInvokeWebhook_EndpointKindNotServedHere(t *testing.T) {
	def := activeWebhook("crossed", "")
	def.Kind = endpoint.EndpointKind
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "crossed").Return(def, nil)
	app := newWebhookApp(t, finder, mocks.NewClient(t))

	resp, err := postJSON(app, "/webhooks/crossed", `{}`, nil)

	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestInvokeWebhook_SecretHeaderGate(t *testing.T) {
	def := activeWebhook("inbound", "")
	def.AuthType = endpoint.AuthHeader
	def.AuthSecret = "S3cr3t"
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "inbound").Return(def, nil)
	app := newWebhookApp(t, finder, mocks.NewClient(t))

	resp, err := postJSON(app, "/webhooks/inbound", `{}`, nil)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	resp, err = postJSON(app, "/webhooks/inbound", `{}`, map[string]string{"X-Webhook-Secret": "S3cr3t"})
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestInvokeWebhook_ForwardScenario(t *testing.T) {
	var forwarded []byte
	upstream := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		forwarded = buf.Bytes()
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer upstream.Close()

	def := activeWebhook("relay", `[{"type":"forward","config":{"targetUrl":"`+upstream.URL+`"}}]`)
	def.AuthType = endpoint.AuthHeader
	def.AuthSecret = "S3cr3t"
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "relay").Return(def, nil)
	app := newWebhookApp(t, finder, mocks.NewClient(t))

	resp, err := postJSON(app, "/webhooks/relay", `{"event":"order.created"}`, map[string]string{"X-Webhook-Secret": "S3cr3t"})

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "forward", body["action"])
	assert.Equal(t, float64(200), body["status"])
	assert.JSONEq(t, `{"event":"order.created"}`, string(forwarded))
}

func TestInvokeWebhook_SingleUnknownActionIsReported(t *testing.T) {
	def := activeWebhook("odd", `[{"type":"send_sms","config":{}}]`)
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "odd").Return(def, nil)
	app := newWebhookApp(t, finder, mocks.NewClient(t))

	resp, err := postJSON(app, "/webhooks/odd", `{}`, nil)

	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Unknown action type: send_sms", decodeBody(t, resp)["error"])
}

func TestInvokeWebhook_CRMContactPipeline(t *testing.T) {
	def := activeWebhook("signup", `[
		{"type":"transform","config":{"mapping":{"email":"user_email"}}},
		{"type":"validate","config":{"required":["email"]}},
		{"type":"crm_contact","config":{"locationId":"loc-1"}}
	]`)
	finder := mocks.NewFinder(t)
	finder.EXPECT().FindBySlug(mock.Anything, "signup").Return(def, nil)
	crmClient := mocks.NewClient(t)
	crmClient.EXPECT().CreateContact(mock.Anything, mock.MatchedBy(func(c *crm.Contact) bool {
		return c.Email == "a@b.c" && c.LocationID == "loc-1"
	})).Return("contact-7", nil)
	app := newWebhookApp(t, finder, crmClient)

	resp, err := postJSON(app, "/webhooks/signup", `{"user_email":"a@b.c"}`, nil)

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "contact-7", body["contactId"])
}
