package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// Client executes compiled queries against the ledger index
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// Execute runs the query and returns the decoded connection
	Execute(ctx context.Context, q *Query) (*Connection, error)
}

// GraphQLRequest is the body POSTed to the ledger index
type GraphQLRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []graphQLError             `json:"errors"`
}

type client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	endpoint   string
	timeout    time.Duration
}

// NewClient creates a ledger client that talks to the GraphQL endpoint.
// A zero timeout leaves the deadline to the caller's context.
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, endpoint string, timeout time.Duration) Client {
	return &client{
		httpClient: httpClient,
		json:       json,
		endpoint:   endpoint,
		timeout:    timeout,
	}
}

func (c *client) Execute(ctx context.Context, q *Query) (*Connection, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := c.json.Marshal(GraphQLRequest{Query: q.String(), OperationName: q.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger request: %w", err)
	}

	logger.DebugCtx(ctx, "executing ledger query", zap.String("operation", q.Name), zap.String("root", string(q.Root)))

	respBody, err := c.httpClient.Post(ctx, c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstreamTimeout, q.Name, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstreamUnavailable, q.Name, err)
	}

	var resp graphQLResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal ledger response: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		return nil, fmt.Errorf("%w: ledger errors: %s", domain.ErrUpstreamUnavailable, strings.Join(messages, "; "))
	}

	raw, ok := resp.Data[string(q.Root)]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%w: ledger response has no %s", domain.ErrUpstreamUnavailable, q.Root)
	}

	var conn Connection
	if err := c.json.Unmarshal(raw, &conn); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s connection: %w", domain.ErrUpstreamUnavailable, q.Root, err)
	}
	return &conn, nil
}
