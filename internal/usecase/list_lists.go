package usecase

import (
	"context"
	"errors"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// ListListsOutput contains every list with a fresh derived count.
type ListListsOutput struct {
	Lists []domain.List
}

// ListLists is the use case for listing lists with current counts.
type ListLists struct {
	lists  domain.ListStore
	logger domain.Logger
}

// NewListLists creates a new ListLists use case.
func NewListLists(lists domain.ListStore, logger domain.Logger) *ListLists {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ListLists{lists: lists, logger: logger}
}

// Execute returns the lists ordered by ascending order, degrading to an
// empty result on backend failure.
func (uc *ListLists) Execute(ctx context.Context) (*ListListsOutput, error) {
	lists, err := uc.lists.GetAll(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			uc.logger.Warn("list query degraded to empty result", "error", err)
			return &ListListsOutput{Lists: []domain.List{}}, nil
		}
		return nil, err
	}
	return &ListListsOutput{Lists: lists}, nil
}
