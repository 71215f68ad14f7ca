package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/luxerealty/luxerealty-backend/pkg/config"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

var (
	errAPIKeyRequired = errors.New("resend api key is required")
	errLoggerRequired = errors.New("resend logger is required")
)

// Client wraps the Resend email API with centralized auth, logging, and error mapping.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	defaultFrom string
	logger      *logger.Logger
}

// SendParams describes a single outbound email.
type SendParams struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// SendResult carries the provider-assigned message id.
type SendResult struct {
	ID string `json:"id"`
}

func NewClient(ctx context.Context, cfg config.ResendConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		baseURL:     baseURL,
		apiKey:      apiKey,
		defaultFrom: strings.TrimSpace(cfg.DefaultFrom),
		logger:      logg,
	}

	logg.Info(ctx, "resend client initialized")
	return c, nil
}

// DefaultFrom reports the configured sender identity.
func (c *Client) DefaultFrom() string {
	if c == nil {
		return ""
	}
	return c.defaultFrom
}

// Send delivers one email through the Resend API.
func (c *Client) Send(ctx context.Context, params SendParams) (*SendResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "resend client not initialized")
	}
	if len(params.To) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email recipient is required")
	}
	if strings.TrimSpace(params.Subject) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email subject is required")
	}
	from := strings.TrimSpace(params.From)
	if from == "" {
		from = c.defaultFrom
	}
	if from == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email sender is required")
	}

	body := map[string]any{
		"from":    from,
		"to":      params.To,
		"subject": params.Subject,
		"html":    params.HTML,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding email payload")
	}

	c.log(ctx, "request", "send_email", map[string]any{
		"to":      params.To,
		"subject": params.Subject,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building email request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "send_email", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resend send_email failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log(ctx, "error", "send_email", map[string]any{
			"error":  strings.TrimSpace(string(raw)),
			"status": resp.StatusCode,
		})
		code := domainCodeForStatus(resp.StatusCode)
		return nil, pkgerrors.Wrap(code, fmt.Errorf("resend returned %s", resp.Status), "resend send_email failed").
			WithDetails(extractProviderMessage(raw))
	}

	var result SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding resend response")
	}

	c.log(ctx, "response", "send_email", map[string]any{"message_id": result.ID})
	return &result, nil
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = c.redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("resend %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("resend %s", phase))
	}
}

func (c *Client) redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"to", "email", "token", "key", "secret"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

func extractProviderMessage(raw []byte) any {
	var payload struct {
		Message string `json:"message"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		return nil
	}
	return map[string]string{"provider_message": payload.Message, "provider_error": payload.Name}
}

func domainCodeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return pkgerrors.CodeValidation
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}
