package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/ledger-forms/internal/logging"
)

const maxErrorBody = 4 << 10

// API is the set of backend calls the forms depend on.
type API interface {
	ListContacts(ctx context.Context) ([]Contact, error)
	CreateCategory(ctx context.Context, create CategoryCreate) (*Category, error)
	CreateExpense(ctx context.Context, create ExpenseCreate) error
	UpdateExpense(ctx context.Context, id string, update ExpenseUpdate) error
	CreateBorrowLend(ctx context.Context, create BorrowLendCreate) error
	UpdateBorrowLend(ctx context.Context, id string, update BorrowLendUpdate) error
}

// Client talks JSON to the ledger backend. It satisfies API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		logger: logger,
	}
}

func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if err := c.do(ctx, "ListContacts", http.MethodGet, "/api/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// CreateCategory posts a category. Any 2xx counts as created; when the body
// is empty or not a category the returned *Category is nil.
func (c *Client) CreateCategory(ctx context.Context, create CategoryCreate) (*Category, error) {
	var category Category
	err := c.do(ctx, "CreateCategory", http.MethodPost, "/api/categories", create, &category)
	if IsKind(err, KindDecode) {
		c.logger.WithError(err).Warn("Client.CreateCategory.created without a readable body")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateExpense(ctx context.Context, create ExpenseCreate) error {
	if create.Participants == nil {
		create.Participants = []Participant{}
	}
	return c.do(ctx, "CreateExpense", http.MethodPost, "/api/expenses", create, nil)
}

func (c *Client) UpdateExpense(ctx context.Context, id string, update ExpenseUpdate) error {
	return c.do(ctx, "UpdateExpense", http.MethodPut, "/api/expenses/"+url.PathEscape(id), update, nil)
}

func (c *Client) CreateBorrowLend(ctx context.Context, create BorrowLendCreate) error {
	if create.Participants == nil {
		create.Participants = []Participant{}
	}
	return c.do(ctx, "CreateBorrowLend", http.MethodPost, "/api/borrow-lend", create, nil)
}

func (c *Client) UpdateBorrowLend(ctx context.Context, id string, update BorrowLendUpdate) error {
	return c.do(ctx, "UpdateBorrowLend", http.MethodPut, "/api/borrow-lend/"+url.PathEscape(id), update, nil)
}

// do sends one request. A nil out skips response decoding.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddToExistingTiming("requestMs")()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Kind: KindEncode, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.Must(uuid.NewV4()).String()
	req.Header.Set("X-Request-ID", requestID)

	entry := c.logger.WithFields(logrus.Fields{
		"op":        op,
		"method":    method,
		"path":      path,
		"requestID": requestID,
	})
	if body != nil && c.logger.IsLevelEnabled(logrus.DebugLevel) {
		entry.Debugf("Client.%s.body %s", op, spew.Sdump(body))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Warnf("Client.%s.transport error", op)
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	entry = entry.WithFields(logrus.Fields{
		"status":    resp.StatusCode,
		"requestMs": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		entry.WithField("body", string(snippet)).Warnf("Client.%s.unexpected status", op)
		return &Error{Op: op, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			entry.WithError(err).Warnf("Client.%s.decode error", op)
			return &Error{Op: op, Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
		}
	}

	entry.Debugf("Client.%s.complete", op)
	return nil
}
