package pipeline

// Action type tags. The set is closed: operator configuration selects from
// these variants and can never inject behavior outside them. Unknown tags
// execute as recorded no-ops.
const (
	ActionRespond     = "respond"
	ActionValidate    = "validate"
	ActionTransform   = "transform"
	ActionCRMContact  = "crm_contact"
	ActionCRMWorkflow = "crm_workflow"
	ActionForward     = "forward"
)

// Action is one compiled step of a definition's pipeline.
type Action struct {
	Type   string                 `json:"type"`
	Config map[string]interface{} `json:"config"`
}

func IsKnownType(actionType string) bool {
	switch actionType {
	case ActionRespond, ActionValidate, ActionTransform,
		ActionCRMContact, ActionCRMWorkflow, ActionForward:
		return true
	}
	return false
}

type RespondConfig struct {
	Body interface{} `mapstructure:"body"`
}

type ValidateConfig struct {
	Required []string `mapstructure:"required"`
}

type TransformConfig struct {
	// Mapping is target field -> source field within the working set.
	Mapping map[string]string `mapstructure:"mapping"`
}

type CRMContactConfig struct {
	LocationID string            `mapstructure:"locationId"`
	FieldMap   map[string]string `mapstructure:"fieldMap"`
}

type CRMWorkflowConfig struct {
	WorkflowID string `mapstructure:"workflowId"`
}

type ForwardConfig struct {
	TargetURL string `mapstructure:"targetUrl"`
}
