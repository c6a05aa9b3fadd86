package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// taskDraft is one entry of a YAML import file.
//
// Format:
//
//	- title: Prepare slides
//	  description: For the Monday review
//	  priority: high
//	  due: 2025-07-01
//	  list: "1"
//	- title: Order standing desk
//	  list: "2"
type taskDraft struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	Due         string `yaml:"due"`
	List        string `yaml:"list"`
}

// ImportTasksInput contains the raw import file content.
type ImportTasksInput struct {
	Content []byte
}

// ImportTasksOutput reports created records and per-draft failures.
// Created records stay committed even when later drafts fail.
type ImportTasksOutput struct {
	Created []domain.Task
	Failed  []domain.BatchError
	Total   int
}

// ImportTasks is the use case for bulk-creating tasks from a file.
type ImportTasks struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskStore, logger domain.Logger) *ImportTasks {
	return &ImportTasks{tasks: tasks, logger: orNop(logger)}
}

// Execute parses the drafts and creates them as one batch. Drafts that
// fail to convert or validate are reported individually; the rest are
// committed.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := parseDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ImportTasksOutput{Total: len(drafts)}

	inputs := make([]domain.TaskInput, 0, len(drafts))
	origIndex := make([]int, 0, len(drafts))
	for i, draft := range drafts {
		input, err := draftToInput(draft)
		if err != nil {
			out.Failed = append(out.Failed, domain.BatchError{Index: i, Message: err.Error()})
			continue
		}
		inputs = append(inputs, input)
		origIndex = append(origIndex, i)
	}

	if len(inputs) > 0 {
		result, err := uc.tasks.CreateBatch(ctx, inputs)
		if err != nil {
			return nil, fmt.Errorf("import tasks: %w", err)
		}
		out.Created = result.Created
		for _, failed := range result.Failed {
			failed.Index = origIndex[failed.Index]
			out.Failed = append(out.Failed, failed)
		}
	}

	uc.logger.Info("import finished", "total", out.Total, "created", len(out.Created), "failed", len(out.Failed))
	return out, nil
}

func parseDrafts(content []byte) ([]taskDraft, error) {
	if len(content) == 0 {
		return nil, domain.ErrEmptyFile
	}
	var drafts []taskDraft
	if err := yaml.Unmarshal(content, &drafts); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(drafts) == 0 {
		return nil, domain.ErrNoTasksInFile
	}
	return drafts, nil
}

func draftToInput(draft taskDraft) (domain.TaskInput, error) {
	priority, err := domain.ParsePriority(draft.Priority)
	if err != nil {
		return domain.TaskInput{}, fmt.Errorf("%w: %q", err, draft.Priority)
	}

	input := domain.TaskInput{
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    priority,
		ListID:      draft.List,
	}
	if draft.Due != "" {
		due, err := parseDueDate(draft.Due)
		if err != nil {
			return domain.TaskInput{}, err
		}
		input.DueDate = &due
	}
	return input, nil
}

// parseDueDate accepts a bare date or a full RFC 3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q", s)
	}
	return t, nil
}
