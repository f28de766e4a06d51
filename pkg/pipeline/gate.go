package pipeline

import (
	"errors"
	"fmt"

	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/OpenFunnel/ActionGate/pkg/infra/jwt"
)

var ErrUnauthorized = errors.New("unauthorized")

// MethodNotAllowedError carries both verbs so the boundary can name the
// expected one; this surface is operator-configured, not attacker-facing.
type MethodNotAllowedError struct {
	Received string
	Expected string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("Method %s not allowed. Expected: %s", e.Received, e.Expected)
}

// CheckMethod verifies the request verb against the definition's method
// constraint. Runs before auth since it is cheaper.
func CheckMethod(definition *endpoint.EndpointDefinition, method string) error {
	if definition.AllowsMethod(method) {
		return nil
	}
	return &MethodNotAllowedError{Received: method, Expected: definition.Method}
}

// SecretSource is the caller-supplied material the auth gate evaluates,
// extracted from the request by the surface handler.
type SecretSource struct {
	HeaderSecret string
	QuerySecret  string
	AdminToken   string
}

// AuthGate evaluates a definition's declared auth policy against the
// request before any action runs.
type AuthGate struct {
	jwtManager jwt.Manager
}

func NewAuthGate(jwtManager jwt.Manager) *AuthGate {
	return &AuthGate{jwtManager: jwtManager}
}

// Authorize returns nil when the request satisfies the definition's auth
// policy. Secret comparisons fail closed: a definition without a stored
// secret can never match, and an empty supplied secret never matches.
func (g *AuthGate) Authorize(definition *endpoint.EndpointDefinition, supplied SecretSource) error {
	switch definition.AuthType {
	case endpoint.AuthNone, "":
		return nil
	case endpoint.AuthHeader:
		return compareSecret(definition.AuthSecret, supplied.HeaderSecret)
	case endpoint.AuthQuery:
		return compareSecret(definition.AuthSecret, supplied.QuerySecret)
	case endpoint.AuthAdmin:
		if supplied.AdminToken == "" {
			return ErrUnauthorized
		}
		if err := g.jwtManager.ValidateToken(supplied.AdminToken); err != nil {
			return ErrUnauthorized
		}
		return nil
	default:
		return ErrUnauthorized
	}
}

func compareSecret(stored, supplied string) error {
	if stored == "" || supplied == "" {
		return ErrUnauthorized
	}
	if stored != supplied {
		return ErrUnauthorized
	}
	return nil
}
