package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/OpenFunnel/ActionGate/pkg/infra/crm"
	"github.com/OpenFunnel/ActionGate/pkg/infra/metrics"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// Executor interprets a definition's compiled action sequence against the
// request working set. Execution is strictly sequential: later actions may
// depend on mutations made by earlier ones, and the first terminal action
// ends the request.
type Executor struct {
	logger            *logrus.Logger
	crmClient         crm.Client
	httpClient        *http.Client
	defaultLocationID string
}

func NewExecutor(
	logger *logrus.Logger,
	crmClient crm.Client,
	httpClient *http.Client,
	defaultLocationID string,
) *Executor {
	return &Executor{
		logger:            logger,
		crmClient:         crmClient,
		httpClient:        httpClient,
		defaultLocationID: defaultLocationID,
	}
}

// Execute runs a compiled action sequence in order, mutating the working
// set in place. The caller compiles the definition exactly once per
// request. rawBody is the original request body, untouched by transforms,
// for the forward action. A non-nil Outcome is terminal; a nil Outcome
// means every action continued and the caller should synthesize the
// response from the returned trace.
func (e *Executor) Execute(
	ctx context.Context,
	actions []Action,
	ws WorkingSet,
	rawBody []byte,
) (*Outcome, Trace) {
	trace := make(Trace, 0, len(actions))

	for _, action := range actions {
		var outcome *Outcome
		switch action.Type {
		case ActionRespond:
			outcome = e.respond(action)
		case ActionValidate:
			outcome = e.validate(action, ws, &trace)
		case ActionTransform:
			e.transform(action, ws, &trace)
		case ActionCRMContact:
			outcome = e.crmContact(ctx, action, ws)
		case ActionCRMWorkflow:
			outcome = e.crmWorkflow(ctx, action, ws)
		case ActionForward:
			outcome = e.forward(ctx, action, rawBody)
		default:
			trace = append(trace, StepResult{Type: action.Type, Skipped: true})
			metrics.RecordAction(action.Type, "skipped")
		}

		if outcome != nil {
			return outcome, trace
		}
	}

	return nil, trace
}

func (e *Executor) respond(action Action) *Outcome {
	var cfg RespondConfig
	e.decode(action, &cfg)
	metrics.RecordAction(ActionRespond, "applied")
	return &Outcome{StatusCode: 200, Body: respondBody(cfg.Body)}
}

// respondBody parses a string body as JSON, wrapping it as a message
// envelope when it is not valid JSON.
func respondBody(body interface{}) interface{} {
	s, ok := body.(string)
	if !ok {
		return body
	}
	var parsed interface{}
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return map[string]interface{}{"message": s}
	}
	return parsed
}

func (e *Executor) validate(action Action, ws WorkingSet, trace *Trace) *Outcome {
	var cfg ValidateConfig
	e.decode(action, &cfg)

	for _, field := range cfg.Required {
		if !Truthy(ws[field]) {
			metrics.RecordAction(ActionValidate, "failed")
			return &Outcome{
				StatusCode: 400,
				Body:       map[string]interface{}{"error": "Missing required field: " + field},
			}
		}
	}

	*trace = append(*trace, StepResult{Type: ActionValidate, Passed: true})
	metrics.RecordAction(ActionValidate, "passed")
	return nil
}

func (e *Executor) transform(action Action, ws WorkingSet, trace *Trace) {
	var cfg TransformConfig
	e.decode(action, &cfg)

	applied := make([]string, 0, len(cfg.Mapping))
	for target, source := range cfg.Mapping {
		value, ok := ws[source]
		if !ok {
			continue
		}
		ws[target] = value
		applied = append(applied, target)
	}

	*trace = append(*trace, StepResult{Type: ActionTransform, Applied: applied})
	metrics.RecordAction(ActionTransform, "applied")
}

// Working-set fields copied into the contact payload verbatim.
var contactPassThroughFields = []string{"firstName", "lastName", "email", "phone"}

func (e *Executor) crmContact(ctx context.Context, action Action, ws WorkingSet) *Outcome {
	var cfg CRMContactConfig
	e.decode(action, &cfg)

	locationID := cfg.LocationID
	if locationID == "" {
		locationID = e.defaultLocationID
	}
	if locationID == "" {
		metrics.RecordAction(ActionCRMContact, "error")
		return &Outcome{
			StatusCode: 500,
			Body:       map[string]interface{}{"error": "CRM location ID not configured"},
		}
	}

	contact := &crm.Contact{LocationID: locationID}
	for _, field := range contactPassThroughFields {
		if !Truthy(ws[field]) {
			continue
		}
		value := stringValue(ws[field])
		switch field {
		case "firstName":
			contact.FirstName = value
		case "lastName":
			contact.LastName = value
		case "email":
			contact.Email = value
		case "phone":
			contact.Phone = value
		}
	}
	if len(cfg.FieldMap) > 0 {
		contact.CustomFields = make(map[string]interface{}, len(cfg.FieldMap))
		for crmField, wsField := range cfg.FieldMap {
			if value, ok := ws[wsField]; ok {
				contact.CustomFields[crmField] = value
			}
		}
	}

	contactID, err := e.crmClient.CreateContact(ctx, contact)
	if err != nil {
		e.logger.WithError(err).Error("crm contact creation failed")
		metrics.RecordAction(ActionCRMContact, "error")
		return &Outcome{StatusCode: 502, Body: map[string]interface{}{"error": err.Error()}}
	}

	metrics.RecordAction(ActionCRMContact, "applied")
	return &Outcome{
		StatusCode: 200,
		Body: map[string]interface{}{
			"success":   true,
			"action":    ActionCRMContact,
			"contactId": contactID,
		},
	}
}

func (e *Executor) crmWorkflow(ctx context.Context, action Action, ws WorkingSet) *Outcome {
	var cfg CRMWorkflowConfig
	e.decode(action, &cfg)

	contactID := stringValue(ws["contactId"])
	if cfg.WorkflowID == "" || contactID == "" {
		metrics.RecordAction(ActionCRMWorkflow, "error")
		return &Outcome{
			StatusCode: 400,
			Body:       map[string]interface{}{"error": "workflowId and contactId required"},
		}
	}

	if err := e.crmClient.EnrollWorkflow(ctx, contactID, cfg.WorkflowID); err != nil {
		e.logger.WithError(err).Error("crm workflow enrollment failed")
		metrics.RecordAction(ActionCRMWorkflow, "error")
		return &Outcome{StatusCode: 502, Body: map[string]interface{}{"error": err.Error()}}
	}

	metrics.RecordAction(ActionCRMWorkflow, "applied")
	return &Outcome{
		StatusCode: 200,
		Body:       map[string]interface{}{"success": true, "action": ActionCRMWorkflow},
	}
}

func (e *Executor) forward(ctx context.Context, action Action, rawBody []byte) *Outcome {
	var cfg ForwardConfig
	e.decode(action, &cfg)

	if cfg.TargetURL == "" {
		metrics.RecordAction(ActionForward, "error")
		return &Outcome{
			StatusCode: 500,
			Body:       map[string]interface{}{"error": "Forward target URL not configured"},
		}
	}

	// The original raw body is re-posted, not the possibly-mutated working
	// set. Downstream failures are reported, never thrown.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.TargetURL, bytes.NewReader(rawBody))
	if err != nil {
		metrics.RecordAction(ActionForward, "error")
		return forwardResult(false, 502)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.WithError(err).WithField("target", cfg.TargetURL).Error("forward request failed")
		metrics.RecordAction(ActionForward, "error")
		return forwardResult(false, 502)
	}
	defer resp.Body.Close()

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if success {
		metrics.RecordAction(ActionForward, "applied")
	} else {
		metrics.RecordAction(ActionForward, "error")
	}
	return forwardResult(success, resp.StatusCode)
}

func forwardResult(success bool, status int) *Outcome {
	return &Outcome{
		StatusCode: 200,
		Body: map[string]interface{}{
			"success": success,
			"action":  ActionForward,
			"status":  status,
		},
	}
}

// decode fills a typed action config from its raw map. Decode failures are
// logged and leave zero values; the per-action missing-config checks then
// decide whether that is fatal.
func (e *Executor) decode(action Action, out interface{}) {
	if err := mapstructure.Decode(action.Config, out); err != nil {
		e.logger.WithError(err).WithField("action", action.Type).Warn("failed to decode action config")
	}
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(bytes.Trim(encoded, `"`))
	}
}
