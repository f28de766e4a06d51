package request

import (
	"encoding/json"

	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
)

// UpdateDefinitionRequest carries partial updates; nil fields leave the
// stored value untouched.
type UpdateDefinitionRequest struct {
	Slug             *string         `json:"slug"`
	Name             *string         `json:"name"`
	Kind             *string         `json:"kind"`
	Method           *string         `json:"method"`
	Status           *string         `json:"status"`
	AuthType         *string         `json:"auth_type"`
	AuthSecret       *string         `json:"auth_secret"`
	Actions          json.RawMessage `json:"actions"`
	ResponseTemplate *string         `json:"response_template"`
}

func (r *UpdateDefinitionRequest) ApplyTo(definition *endpoint.EndpointDefinition) {
	if r.Slug != nil {
		definition.Slug = *r.Slug
	}
	if r.Name != nil {
		definition.Name = *r.Name
	}
	if r.Kind != nil {
		definition.Kind = endpoint.Kind(*r.Kind)
	}
	if r.Method != nil {
		definition.Method = *r.Method
	}
	if r.Status != nil {
		definition.Status = endpoint.Status(*r.Status)
	}
	if r.AuthType != nil {
		definition.AuthType = endpoint.AuthType(*r.AuthType)
	}
	if r.AuthSecret != nil {
		definition.AuthSecret = *r.AuthSecret
	}
	if r.Actions != nil {
		definition.Actions = domain.ActionsJSON(r.Actions)
	}
	if r.ResponseTemplate != nil {
		definition.ResponseTemplate = *r.ResponseTemplate
	}
}
