package pipeline

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OpenFunnel/ActionGate/mocks"
	"github.com/OpenFunnel/ActionGate/pkg/infra/crm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newExecutor(crmClient crm.Client) *Executor {
	return NewExecutor(logrus.New(), crmClient, http.DefaultClient, "")
}

func compiledActions(actions string) []Action {
	return Compile([]byte(actions))
}

func TestExecute_EmptyActionsReturnsNoOutcome(t *testing.T) {
	e := newExecutor(nil)

	outcome, trace := e.Execute(context.Background(), compiledActions(""), WorkingSet{}, nil)

	assert.Nil(t, outcome)
	assert.Empty(t, trace)
}

func TestExecute_MalformedActionsDegradeToEmpty(t *testing.T) {
	e := newExecutor(nil)

	outcome, trace := e.Execute(context.Background(), compiledActions(`{"broken"`), WorkingSet{}, nil)

	assert.Nil(t, outcome)
	assert.Empty(t, trace)
}

func TestExecute_RespondIsTerminal(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[
		{"type":"respond","config":{"body":{"ok":true}}},
		{"type":"validate","config":{"required":["never"]}}
	]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.NotNil(t, outcome)
	assert.Equal(t, 200, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{"ok": true}, outcome.Body)
}

func TestExecute_RespondStringBodyParsedAsJSON(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"respond","config":{"body":"{\"pong\":true}"}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, map[string]interface{}{"pong": true}, outcome.Body)
}

func TestExecute_RespondPlainStringWrappedAsMessage(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"respond","config":{"body":"hello"}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, map[string]interface{}{"message": "hello"}, outcome.Body)
}

func TestExecute_ValidateFailsOnFirstMissingField(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"validate","config":{"required":["email","name"]}}]`)

	outcome, trace := e.Execute(context.Background(), actions, WorkingSet{"name": "ada"}, nil)

	assert.NotNil(t, outcome)
	assert.Equal(t, 400, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "Missing required field: email"}, outcome.Body)
	assert.Empty(t, trace)
}

func TestExecute_ValidateOrderIsDeclarationOrder(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"validate","config":{"required":["name","email"]}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, map[string]interface{}{"error": "Missing required field: name"}, outcome.Body)
}

func TestExecute_ValidateRejectsEmptyAndFalseValues(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"validate","config":{"required":["flag"]}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{"flag": false}, nil)

	assert.Equal(t, 400, outcome.StatusCode)
}

func TestExecute_ValidatePassRecordsTrace(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"validate","config":{"required":["email"]}}]`)

	outcome, trace := e.Execute(context.Background(), actions, WorkingSet{"email": "a@b.c"}, nil)

	assert.Nil(t, outcome)
	assert.Equal(t, Trace{{Type: ActionValidate, Passed: true}}, trace)
}

func TestExecute_TransformCopiesPresentSources(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"transform","config":{"mapping":{"email":"user_email","phone":"user_phone"}}}]`)
	ws := WorkingSet{"user_email": "a@b.c"}

	outcome, trace := e.Execute(context.Background(), actions, ws, nil)

	assert.Nil(t, outcome)
	assert.Equal(t, "a@b.c", ws["email"])
	_, phoneSet := ws["phone"]
	assert.False(t, phoneSet)
	assert.Len(t, trace, 1)
	assert.Equal(t, []string{"email"}, trace[0].Applied)
}

func TestExecute_TransformFeedsLaterValidate(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[
		{"type":"transform","config":{"mapping":{"email":"user_email"}}},
		{"type":"validate","config":{"required":["email"]}}
	]`)

	outcome, trace := e.Execute(context.Background(), actions, WorkingSet{"user_email": "a@b.c"}, nil)

	assert.Nil(t, outcome)
	assert.Len(t, trace, 2)
	assert.True(t, trace[1].Passed)
}

func TestExecute_UnknownActionIsRecordedNoOp(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[
		{"type":"send_sms","config":{}},
		{"type":"validate","config":{"required":[]}}
	]`)

	outcome, trace := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Nil(t, outcome)
	assert.Equal(t, StepResult{Type: "send_sms", Skipped: true}, trace[0])
	assert.True(t, trace[1].Passed)
}

func TestExecute_CRMContactSuccess(t *testing.T) {
	crmClient := mocks.NewClient(t)
	e := newExecutor(crmClient)
	actions := compiledActions(`[{"type":"crm_contact","config":{"locationId":"loc-1","fieldMap":{"company":"org"}}}]`)
	ws := WorkingSet{"firstName": "Ada", "email": "a@b.c", "org": "Analytical Engines"}

	crmClient.EXPECT().CreateContact(mock.Anything, mock.MatchedBy(func(c *crm.Contact) bool {
		return c.LocationID == "loc-1" &&
			c.FirstName == "Ada" &&
			c.Email == "a@b.c" &&
			c.CustomFields["company"] == "Analytical Engines"
	})).Return("contact-42", nil)

	outcome, _ := e.Execute(context.Background(), actions, ws, nil)

	assert.Equal(t, 200, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{
		"success":   true,
		"action":    "crm_contact",
		"contactId": "contact-42",
	}, outcome.Body)
}

func TestExecute_CRMContactFallsBackToDefaultLocation(t *testing.T) {
	crmClient := mocks.NewClient(t)
	e := NewExecutor(logrus.New(), crmClient, http.DefaultClient, "default-loc")
	actions := compiledActions(`[{"type":"crm_contact","config":{}}]`)

	crmClient.EXPECT().CreateContact(mock.Anything, mock.MatchedBy(func(c *crm.Contact) bool {
		return c.LocationID == "default-loc"
	})).Return("contact-1", nil)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 200, outcome.StatusCode)
}

func TestExecute_CRMContactMissingLocationIsServerError(t *testing.T) {
	e := newExecutor(mocks.NewClient(t))
	actions := compiledActions(`[{"type":"crm_contact","config":{}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 500, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "CRM location ID not configured"}, outcome.Body)
}

func TestExecute_CRMContactUpstreamFailure(t *testing.T) {
	crmClient := mocks.NewClient(t)
	e := newExecutor(crmClient)
	actions := compiledActions(`[{"type":"crm_contact","config":{"locationId":"loc-1"}}]`)

	crmClient.EXPECT().CreateContact(mock.Anything, mock.Anything).Return("", errors.New("crm returned status 500"))

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 502, outcome.StatusCode)
}

func TestExecute_CRMWorkflowSuccess(t *testing.T) {
	crmClient := mocks.NewClient(t)
	e := newExecutor(crmClient)
	actions := compiledActions(`[{"type":"crm_workflow","config":{"workflowId":"wf-1"}}]`)

	crmClient.EXPECT().EnrollWorkflow(mock.Anything, "contact-42", "wf-1").Return(nil)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{"contactId": "contact-42"}, nil)

	assert.Equal(t, 200, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{"success": true, "action": "crm_workflow"}, outcome.Body)
}

func TestExecute_CRMWorkflowMissingIdentifiers(t *testing.T) {
	e := newExecutor(mocks.NewClient(t))
	actions := compiledActions(`[{"type":"crm_workflow","config":{"workflowId":"wf-1"}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 400, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "workflowId and contactId required"}, outcome.Body)
}

func TestExecute_ForwardRepostsRawBody(t *testing.T) {
	var received []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer upstream.Close()

	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"forward","config":{"targetUrl":"` + upstream.URL + `"}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{"mutated": true}, []byte(`{"original":true}`))

	assert.Equal(t, 200, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{
		"success": true,
		"action":  "forward",
		"status":  202,
	}, outcome.Body)
	assert.JSONEq(t, `{"original":true}`, string(received))
}

func TestExecute_ForwardReportsDownstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"forward","config":{"targetUrl":"` + upstream.URL + `"}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 200, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{
		"success": false,
		"action":  "forward",
		"status":  500,
	}, outcome.Body)
}

func TestExecute_ForwardNetworkFailureReportedAs502(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"forward","config":{"targetUrl":"http://127.0.0.1:1"}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 200, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{
		"success": false,
		"action":  "forward",
		"status":  502,
	}, outcome.Body)
}

func TestExecute_ForwardMissingTargetIsServerError(t *testing.T) {
	e := newExecutor(nil)
	actions := compiledActions(`[{"type":"forward","config":{}}]`)

	outcome, _ := e.Execute(context.Background(), actions, WorkingSet{}, nil)

	assert.Equal(t, 500, outcome.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "Forward target URL not configured"}, outcome.Body)
}
