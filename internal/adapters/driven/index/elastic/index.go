package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// maxReportedFailures bounds the item errors quoted in a bulk failure.
const maxReportedFailures = 3

// DeleteIfExists drops the index. A missing index is not an error.
func (c *Client) DeleteIfExists(ctx context.Context, name string) error {
	_, err := c.do(ctx, http.MethodDelete, indexPath(name), "", nil, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return fmt.Errorf("delete index %s: %w", name, err)
	}
	return nil
}

// Create ensures the index exists with a mapping derived from props.
// An existing index is left untouched.
func (c *Client) Create(ctx context.Context, name string, props []domain.Property) error {
	resp, err := c.do(ctx, http.MethodHead, indexPath(name), "", nil, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	if resp.status == http.StatusOK {
		logger.Debug("index %s already exists", name)
		return nil
	}

	body, err := json.Marshal(indexBody(props))
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	resp, err = c.do(ctx, http.MethodPut, indexPath(name), "application/json", body, http.StatusOK, http.StatusBadRequest)
	if err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	if resp.status == http.StatusBadRequest {
		// Another writer may have created it between HEAD and PUT.
		if bytes.Contains(resp.body, []byte("resource_already_exists_exception")) {
			return nil
		}
		return fmt.Errorf("create index %s: %w: %s", name, domain.ErrInvalidInput, string(resp.body))
	}
	return nil
}

// bulkResponse is the subset of the bulk API response we inspect.
type bulkResponse struct {
	Errors bool                         `json:"errors"`
	Items  []map[string]bulkItemOutcome `json:"items"`
}

type bulkItemOutcome struct {
	ID     string     `json:"_id"`
	Status int        `json:"status"`
	Error  *bulkError `json:"error,omitempty"`
}

type bulkError struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Upsert submits docs in one bulk request, replacing documents by id.
func (c *Client) Upsert(ctx context.Context, name string, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	body, err := bulkBody(name, docs)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/_bulk", "application/x-ndjson", body, http.StatusOK)
	if err != nil {
		return fmt.Errorf("bulk upsert: %w", err)
	}

	var result bulkResponse
	if err := json.Unmarshal(resp.body, &result); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if !result.Errors {
		return nil
	}

	var failures []string
	failed := 0
	for _, item := range result.Items {
		for _, outcome := range item {
			if outcome.Error == nil {
				continue
			}
			failed++
			if len(failures) < maxReportedFailures {
				failures = append(failures, fmt.Sprintf("%s: %s: %s", outcome.ID, outcome.Error.Type, outcome.Error.Reason))
			}
		}
	}
	return fmt.Errorf("%w: %d of %d documents failed (%s)",
		domain.ErrBulkRejected, failed, len(docs), strings.Join(failures, "; "))
}

// bulkBody encodes docs as NDJSON index actions.
func bulkBody(name string, docs []domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, doc := range docs {
		action := map[string]any{
			"index": map[string]any{"_index": name, "_id": doc.ID},
		}
		if err := enc.Encode(action); err != nil {
			return nil, fmt.Errorf("encode bulk action: %w", err)
		}
		fields := doc.Fields
		if fields == nil {
			fields = map[string]any{}
		}
		if err := enc.Encode(fields); err != nil {
			return nil, fmt.Errorf("encode document %s: %w", doc.ID, err)
		}
	}
	return buf.Bytes(), nil
}

func indexPath(name string) string {
	return "/" + url.PathEscape(name)
}
