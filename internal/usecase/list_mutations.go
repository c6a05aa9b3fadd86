package usecase

import (
	"context"
	"fmt"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// CreateListInput contains the parameters for creating a list.
type CreateListInput struct {
	Name  string
	Color string
	Icon  string
}

// CreateListOutput contains the created list.
type CreateListOutput struct {
	List *domain.List
}

// CreateList is the use case for creating a list.
type CreateList struct {
	lists domain.ListStore
}

// NewCreateList creates a new CreateList use case.
func NewCreateList(lists domain.ListStore) *CreateList {
	return &CreateList{lists: lists}
}

// Execute creates the list.
func (uc *CreateList) Execute(ctx context.Context, in CreateListInput) (*CreateListOutput, error) {
	list, err := uc.lists.Create(ctx, domain.ListInput{Name: in.Name, Color: in.Color, Icon: in.Icon})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return &CreateListOutput{List: list}, nil
}

// UpdateListInput contains the parameters for patching a list.
type UpdateListInput struct {
	Patch  domain.ListPatch
	ListID int
}

// UpdateListOutput contains the updated list.
type UpdateListOutput struct {
	List *domain.List
}

// UpdateList is the use case for partially updating a list.
type UpdateList struct {
	lists domain.ListStore
}

// NewUpdateList creates a new UpdateList use case.
func NewUpdateList(lists domain.ListStore) *UpdateList {
	return &UpdateList{lists: lists}
}

// Execute applies the patch.
func (uc *UpdateList) Execute(ctx context.Context, in UpdateListInput) (*UpdateListOutput, error) {
	list, err := uc.lists.Update(ctx, in.ListID, in.Patch)
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	return &UpdateListOutput{List: list}, nil
}

// DeleteListInput contains the parameters for deleting a list.
type DeleteListInput struct {
	ListID int
}

// DeleteList is the use case for deleting a list. Tasks referencing the
// list are deliberately left orphaned.
type DeleteList struct {
	lists domain.ListStore
}

// NewDeleteList creates a new DeleteList use case.
func NewDeleteList(lists domain.ListStore) *DeleteList {
	return &DeleteList{lists: lists}
}

// Execute deletes the list.
func (uc *DeleteList) Execute(ctx context.Context, in DeleteListInput) error {
	if err := uc.lists.Delete(ctx, in.ListID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
