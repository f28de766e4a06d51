package request

import (
	"encoding/json"
	"fmt"

	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
)

type CreateDefinitionRequest struct {
	Slug             string          `json:"slug"`
	Name             string          `json:"name"`
	Kind             string          `json:"kind"`
	Method           string          `json:"method"`
	Status           string          `json:"status"`
	AuthType         string          `json:"auth_type"`
	AuthSecret       string          `json:"auth_secret"`
	Actions          json.RawMessage `json:"actions"`
	ResponseTemplate string          `json:"response_template"`
}

func (r *CreateDefinitionRequest) Validate() error {
	if r.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	return nil
}

func (r *CreateDefinitionRequest) ToDefinition() *endpoint.EndpointDefinition {
	return &endpoint.EndpointDefinition{
		Slug:             r.Slug,
		Name:             r.Name,
		Kind:             endpoint.Kind(r.Kind),
		Method:           r.Method,
		Status:           endpoint.Status(r.Status),
		AuthType:         endpoint.AuthType(r.AuthType),
		AuthSecret:       r.AuthSecret,
		Actions:          domain.ActionsJSON(r.Actions),
		ResponseTemplate: r.ResponseTemplate,
	}
}
