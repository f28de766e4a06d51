package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/OpenFunnel/ActionGate/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Contact is the payload for a CRM contact-create call.
type Contact struct {
	LocationID   string                 `json:"locationId"`
	FirstName    string                 `json:"firstName,omitempty"`
	LastName     string                 `json:"lastName,omitempty"`
	Email        string                 `json:"email,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	CustomFields map[string]interface{} `json:"customFields,omitempty"`
}

//go:generate mockery --name=Client --dir=. --output=../../../mocks --filename=crm_client_mock.go --case=underscore --with-expecter
type Client interface {
	CreateContact(ctx context.Context, contact *Contact) (string, error)
	EnrollWorkflow(ctx context.Context, contactID, workflowID string) error
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// NewClient builds the HTTP CRM client. Calls are single round trips with
// no retry; a circuit breaker sheds load when the CRM is down so request
// handling fails fast instead of stacking up timeouts.
func NewClient(cfg config.CRMConfig, logger *logrus.Logger) Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "crm",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		logger:     logger,
	}
}

type createContactResponse struct {
	ID      string `json:"id"`
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

func (c *client) CreateContact(ctx context.Context, contact *Contact) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/contacts", contact)
	if err != nil {
		return "", err
	}

	var parsed createContactResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode contact response: %w", err)
	}
	if parsed.Contact.ID != "" {
		return parsed.Contact.ID, nil
	}
	return parsed.ID, nil
}

func (c *client) EnrollWorkflow(ctx context.Context, contactID, workflowID string) error {
	path := fmt.Sprintf("/contacts/%s/workflow/%s", contactID, workflowID)
	_, err := c.do(ctx, http.MethodPost, path, map[string]string{})
	return err
}

func (c *client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode crm payload: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.logger.WithFields(logrus.Fields{
				"status": resp.StatusCode,
				"path":   path,
			}).Error("crm request failed")
			return nil, fmt.Errorf("crm returned status %d", resp.StatusCode)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected crm response type %T", result)
	}
	return body, nil
}
