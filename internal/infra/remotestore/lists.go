package remotestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Ensure Lists implements domain.ListAdapter.
var _ domain.ListAdapter = (*Lists)(nil)

// Lists is the remote adapter for the list collection.
type Lists struct {
	client *Client
}

// NewLists creates a list adapter over the given client.
func NewLists(client *Client) *Lists {
	return &Lists{client: client}
}

// FetchAll loads every list record from the service.
func (a *Lists) FetchAll(ctx context.Context) ([]domain.List, error) {
	env, err := a.client.do(ctx, http.MethodGet, a.client.recordsURL(listTable), nil)
	if err != nil {
		return nil, err
	}

	var records []listRecord
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, fmt.Errorf("%w: decode records: %v", domain.ErrBackendUnavailable, err)
		}
	}
	lists := make([]domain.List, 0, len(records))
	for _, r := range records {
		lists = append(lists, decodeList(r))
	}
	return lists, nil
}

// CreateRecord persists one record and returns the stored version.
func (a *Lists) CreateRecord(ctx context.Context, l domain.List) (*domain.List, error) {
	body := map[string]any{"records": []listRecord{encodeList(l)}}
	env, err := a.client.do(ctx, http.MethodPost, a.client.recordsURL(listTable), body)
	if err != nil {
		return nil, err
	}

	for _, r := range env.Results {
		if !r.Success {
			return nil, fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, r.Message)
		}
		var rec listRecord
		if err := json.Unmarshal(r.Data, &rec); err != nil {
			return nil, fmt.Errorf("%w: decode record: %v", domain.ErrBackendUnavailable, err)
		}
		created := decodeList(rec)
		return &created, nil
	}
	return nil, fmt.Errorf("%w: empty batch response", domain.ErrBackendUnavailable)
}

// UpdateRecord replaces the record with the matching ID, yielding nil
// without error when the service reports the record missing.
func (a *Lists) UpdateRecord(ctx context.Context, l domain.List) (*domain.List, error) {
	body := map[string]any{"records": []listRecord{encodeList(l)}}
	env, err := a.client.do(ctx, http.MethodPut, a.client.recordsURL(listTable), body)
	if err != nil {
		return nil, err
	}

	for _, r := range env.Results {
		if !r.Success {
			a.client.logger.Warn("list update rejected", "id", l.ID, "message", r.Message)
			return nil, nil
		}
		var rec listRecord
		if err := json.Unmarshal(r.Data, &rec); err != nil {
			return nil, fmt.Errorf("%w: decode record: %v", domain.ErrBackendUnavailable, err)
		}
		updated := decodeList(rec)
		return &updated, nil
	}
	return nil, nil
}

// DeleteRecords removes the records with the given IDs.
func (a *Lists) DeleteRecords(ctx context.Context, ids []int) (bool, error) {
	body := map[string]any{"RecordIds": ids}
	env, err := a.client.do(ctx, http.MethodDelete, a.client.recordsURL(listTable), body)
	if err != nil {
		return false, err
	}

	for _, r := range env.Results {
		if !r.Success {
			a.client.logger.Warn("list delete rejected", "message", r.Message)
			return false, nil
		}
	}
	return len(env.Results) > 0, nil
}
