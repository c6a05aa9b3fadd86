package remotestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Ensure Tasks implements domain.TaskAdapter.
var _ domain.TaskAdapter = (*Tasks)(nil)

// Tasks is the remote adapter for the task collection.
type Tasks struct {
	client *Client
}

// NewTasks creates a task adapter over the given client.
func NewTasks(client *Client) *Tasks {
	return &Tasks{client: client}
}

// FetchAll loads every task record from the service.
func (a *Tasks) FetchAll(ctx context.Context) ([]domain.Task, error) {
	env, err := a.client.do(ctx, http.MethodGet, a.client.recordsURL(taskTable), nil)
	if err != nil {
		return nil, err
	}

	var records []taskRecord
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, fmt.Errorf("%w: decode records: %v", domain.ErrBackendUnavailable, err)
		}
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, decodeTask(r))
	}
	return tasks, nil
}

// CreateRecord persists one record and returns the stored version.
func (a *Tasks) CreateRecord(ctx context.Context, t domain.Task) (*domain.Task, error) {
	result, err := a.CreateRecords(ctx, []domain.Task{t})
	if err != nil {
		return nil, err
	}
	if len(result.Created) == 0 {
		msg := "record rejected"
		if len(result.Failed) > 0 && result.Failed[0].Message != "" {
			msg = result.Failed[0].Message
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, msg)
	}
	return &result.Created[0], nil
}

// CreateRecords persists several records in one request. Records that
// fail are reported individually; the rest stay committed.
func (a *Tasks) CreateRecords(ctx context.Context, ts []domain.Task) (*domain.TaskBatchResult, error) {
	records := make([]taskRecord, 0, len(ts))
	for _, t := range ts {
		records = append(records, encodeTask(t))
	}

	body := map[string]any{"records": records}
	env, err := a.client.do(ctx, http.MethodPost, a.client.recordsURL(taskTable), body)
	if err != nil {
		return nil, err
	}

	result := &domain.TaskBatchResult{Failed: batchErrors(env.Results)}
	for _, r := range env.Results {
		if !r.Success {
			continue
		}
		var rec taskRecord
		if err := json.Unmarshal(r.Data, &rec); err != nil {
			continue
		}
		result.Created = append(result.Created, decodeTask(rec))
	}
	return result, nil
}

// UpdateRecord replaces the record with the matching ID. A per-record
// failure (for example an unknown ID) yields nil without error, which
// the store reads as "operation did not apply".
func (a *Tasks) UpdateRecord(ctx context.Context, t domain.Task) (*domain.Task, error) {
	body := map[string]any{"records": []taskRecord{encodeTask(t)}}
	env, err := a.client.do(ctx, http.MethodPut, a.client.recordsURL(taskTable), body)
	if err != nil {
		return nil, err
	}

	for _, r := range env.Results {
		if !r.Success {
			a.client.logger.Warn("task update rejected", "id", t.ID, "message", r.Message)
			return nil, nil
		}
		var rec taskRecord
		if err := json.Unmarshal(r.Data, &rec); err != nil {
			return nil, fmt.Errorf("%w: decode record: %v", domain.ErrBackendUnavailable, err)
		}
		updated := decodeTask(rec)
		return &updated, nil
	}
	return nil, nil
}

// DeleteRecords removes the records with the given IDs. Returns true
// only when every requested record was deleted.
func (a *Tasks) DeleteRecords(ctx context.Context, ids []int) (bool, error) {
	body := map[string]any{"RecordIds": ids}
	env, err := a.client.do(ctx, http.MethodDelete, a.client.recordsURL(taskTable), body)
	if err != nil {
		return false, err
	}

	for _, r := range env.Results {
		if !r.Success {
			a.client.logger.Warn("task delete rejected", "message", r.Message)
			return false, nil
		}
	}
	return len(env.Results) > 0, nil
}
