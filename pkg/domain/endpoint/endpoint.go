package endpoint

import (
	"fmt"
	"strings"
	"time"

	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Kind string

const (
	EndpointKind Kind = "endpoint"
	WebhookKind  Kind = "webhook"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthHeader AuthType = "header"
	AuthQuery  AuthType = "query"
	AuthAdmin  AuthType = "admin"
)

const MethodAny = "ANY"

// EndpointDefinition is one operator-authored row of the definition store:
// a named endpoint or webhook whose behavior is interpreted per request
// from its action list.
type EndpointDefinition struct {
	ID               uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	Slug             string             `json:"slug" gorm:"uniqueIndex;not null"`
	Name             string             `json:"name"`
	Kind             Kind               `json:"kind" gorm:"default:'endpoint';not null"`
	Method           string             `json:"method" gorm:"default:'ANY';not null"`
	Status           Status             `json:"status" gorm:"default:'active';not null"`
	AuthType         AuthType           `json:"auth_type" gorm:"default:'none';not null"`
	AuthSecret       string             `json:"auth_secret,omitempty"`
	Actions          domain.ActionsJSON `json:"actions" gorm:"type:jsonb"`
	ResponseTemplate string             `json:"response_template,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func (d *EndpointDefinition) IsActive() bool {
	return d.Status == StatusActive
}

// AllowsMethod reports whether the definition accepts the given HTTP verb.
func (d *EndpointDefinition) AllowsMethod(method string) bool {
	if d.Method == "" || d.Method == MethodAny {
		return true
	}
	return strings.EqualFold(d.Method, method)
}

func (d *EndpointDefinition) Validate() error {
	if d.Slug == "" {
		return fmt.Errorf("slug is required")
	}

	switch d.Kind {
	case EndpointKind, WebhookKind:
	default:
		return fmt.Errorf("invalid kind: %s", d.Kind)
	}

	validMethods := map[string]bool{
		"GET": true, "POST": true, "PUT": true, "DELETE": true, MethodAny: true,
	}
	if !validMethods[d.Method] {
		return fmt.Errorf("invalid HTTP method: %s", d.Method)
	}

	switch d.Status {
	case StatusActive, StatusInactive:
	default:
		return fmt.Errorf("invalid status: %s", d.Status)
	}

	switch d.AuthType {
	case AuthNone, AuthAdmin:
	case AuthHeader, AuthQuery:
		if d.AuthSecret == "" {
			return fmt.Errorf("auth_secret is required for %s auth", d.AuthType)
		}
	default:
		return fmt.Errorf("invalid auth_type: %s", d.AuthType)
	}

	return nil
}

func (d *EndpointDefinition) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if d.Kind == "" {
		d.Kind = EndpointKind
	}
	if d.Method == "" {
		d.Method = MethodAny
	}
	if d.Status == "" {
		d.Status = StatusActive
	}
	if d.AuthType == "" {
		d.AuthType = AuthNone
	}
	return d.Validate()
}

func (d *EndpointDefinition) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return d.Validate()
}

func (d *EndpointDefinition) TableName() string {
	return "endpoint_definitions"
}
