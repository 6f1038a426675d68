package argilla

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"AnnotationDashboard/internal/models"
)

const (
	defaultRequestTimeout = 30 * time.Second
	recordsPageSize       = 100
)

// Client talks to the annotation platform's REST API. It is the data
// layer of the service: every dashboard render goes through it and
// nothing is cached between calls.
type Client struct {
	baseURL     string
	apiKey      string
	bearerToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

func NewClient(baseURL, apiKey, bearerToken string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: defaultRequestTimeout},
		logger:      logger,
	}
}

// Ping verifies the configured credentials against the platform. It is
// called once at startup so a bad URL or key fails fast instead of on
// the first page load.
func (c *Client) Ping(ctx context.Context) error {
	var payload workspacesPayload
	if err := c.get(ctx, "/api/v1/workspaces", nil, &payload); err != nil {
		return fmt.Errorf("platform ping failed: %w", err)
	}
	return nil
}

func (c *Client) GetDataset(ctx context.Context, name, workspace string) (*models.Dataset, error) {
	workspaceID, err := c.findWorkspaceID(ctx, workspace)
	if err != nil {
		return nil, err
	}

	var payload datasetsPayload
	if err := c.get(ctx, "/api/v1/me/datasets", nil, &payload); err != nil {
		return nil, err
	}

	for _, item := range payload.Items {
		if item.Name == name && item.WorkspaceID == workspaceID {
			return &models.Dataset{
				ID:        item.ID,
				Name:      item.Name,
				Workspace: workspace,
			}, nil
		}
	}

	return nil, fmt.Errorf("dataset %q in workspace %q: %w", name, workspace, models.ErrDatasetNotFound)
}

// ListRecords pages through every record of the dataset, including its
// responses. An empty status requests all records; otherwise only
// records whose responses carry that status are returned.
func (c *Client) ListRecords(ctx context.Context, datasetID uuid.UUID, status string) ([]models.Record, error) {
	var records []models.Record
	offset := 0

	for {
		page, err := c.recordsPage(ctx, datasetID, status, offset, recordsPageSize)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			records = append(records, convertRecord(item))
		}

		offset += len(page.Items)
		c.logger.Debug("Fetched records page", "dataset", datasetID, "offset", offset, "total", page.Total)

		if len(page.Items) < recordsPageSize || offset >= page.Total {
			break
		}
	}

	return records, nil
}

// CountRecords returns the number of records matching the status
// without transferring them; only the page envelope's total is used.
func (c *Client) CountRecords(ctx context.Context, datasetID uuid.UUID, status string) (int, error) {
	page, err := c.recordsPage(ctx, datasetID, status, 0, 1)
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}

func (c *Client) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var payload userPayload
	err := c.get(ctx, "/api/v1/users/"+userID.String(), nil, &payload)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", userID, models.ErrUserNotFound)
		}
		return nil, err
	}

	return &models.User{ID: payload.ID, Username: payload.Username}, nil
}

func (c *Client) findWorkspaceID(ctx context.Context, workspace string) (uuid.UUID, error) {
	var payload workspacesPayload
	if err := c.get(ctx, "/api/v1/workspaces", nil, &payload); err != nil {
		return uuid.Nil, err
	}

	for _, item := range payload.Items {
		if item.Name == workspace {
			return item.ID, nil
		}
	}

	return uuid.Nil, fmt.Errorf("workspace %q: %w", workspace, models.ErrWorkspaceNotFound)
}

func (c *Client) recordsPage(ctx context.Context, datasetID uuid.UUID, status string, offset, limit int) (*recordsPayload, error) {
	query := url.Values{}
	query.Set("include", "responses")
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("response_status", status)
	}

	var payload recordsPayload
	path := fmt.Sprintf("/api/v1/datasets/%s/records", datasetID)
	if err := c.get(ctx, path, query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	req.Header.Set("X-Argilla-Api-Key", c.apiKey)
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}

	return nil
}

func (c *Client) decodeError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &apiError{status: resp.StatusCode, path: path, detail: payload.Detail}
	}

	return &apiError{status: resp.StatusCode, path: path, detail: http.StatusText(resp.StatusCode)}
}

type apiError struct {
	status int
	path   string
	detail string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("platform API GET %s: %d %s", e.path, e.status, e.detail)
}

func isNotFound(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.status == http.StatusNotFound
}

func convertRecord(item recordItem) models.Record {
	record := models.Record{
		ID:        item.ID,
		Responses: make([]models.Response, 0, len(item.Responses)),
	}
	for _, response := range item.Responses {
		record.Responses = append(record.Responses, models.Response{
			ID:     response.ID,
			UserID: response.UserID,
			Status: response.Status,
		})
	}
	return record
}
