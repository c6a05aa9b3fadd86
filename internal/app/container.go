// Package app provides the dependency injection container for the
// application. Stores are constructed once per process with their
// persistence adapter injected; there are no module-level singletons.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/apper-canvas/boosttaskflow/internal/infra/config"
	"github.com/apper-canvas/boosttaskflow/internal/infra/localstore"
	"github.com/apper-canvas/boosttaskflow/internal/infra/logging"
	"github.com/apper-canvas/boosttaskflow/internal/infra/remotestore"
	"github.com/apper-canvas/boosttaskflow/internal/store"
	"github.com/apper-canvas/boosttaskflow/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds port implementations and factory methods for use cases.
type Container struct {
	Tasks  domain.TaskStore
	Lists  domain.ListStore
	Clock  domain.Clock
	Logger domain.Logger
	Config *config.Config
}

// New creates a Container from the configuration file, selecting the
// persistence backend at construction time.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Container from an explicit configuration.
func NewWithConfig(cfg *config.Config) (*Container, error) {
	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))
	clock := domain.RealClock{}
	latency := store.DefaultLatency().Scale(cfg.LatencyScale)

	taskAdapter, listAdapter, err := buildAdapters(cfg, logger)
	if err != nil {
		return nil, err
	}

	tasks := store.NewTaskStore(taskAdapter, clock, logger, latency)
	lists := store.NewListStore(listAdapter, tasks, clock, logger, latency)

	return &Container{
		Tasks:  tasks,
		Lists:  lists,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(tasks domain.TaskStore, lists domain.ListStore, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{Tasks: tasks, Lists: lists, Clock: clock, Logger: logger}
}

// buildAdapters selects the persistence variant. Business logic never
// branches on the backend again after this point.
func buildAdapters(cfg *config.Config, logger domain.Logger) (domain.TaskAdapter, domain.ListAdapter, error) {
	switch cfg.Backend {
	case config.BackendRemote:
		client := remotestore.NewClient(cfg.Remote.BaseURL, cfg.Remote.APIKey, cfg.Remote.ProjectID, logger)
		return remotestore.NewTasks(client), remotestore.NewLists(client), nil
	case config.BackendLocal:
		taskAdapter, err := localstore.NewTasks(filepath.Join(cfg.DataDir, "tasks.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("open task store: %w", err)
		}
		listAdapter, err := localstore.NewLists(filepath.Join(cfg.DataDir, "lists.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("open list store: %w", err)
		}
		return taskAdapter, listAdapter, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// UseCase factory methods

// QueryTasksUseCase returns a new QueryTasks use case.
func (c *Container) QueryTasksUseCase() *usecase.QueryTasks {
	return usecase.NewQueryTasks(c.Tasks, c.Lists, c.Clock, c.Logger)
}

// ListListsUseCase returns a new ListLists use case.
func (c *Container) ListListsUseCase() *usecase.ListLists {
	return usecase.NewListLists(c.Lists, c.Logger)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Lists, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Lists, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Lists, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Lists, c.Logger)
}

// CreateListUseCase returns a new CreateList use case.
func (c *Container) CreateListUseCase() *usecase.CreateList {
	return usecase.NewCreateList(c.Lists)
}

// UpdateListUseCase returns a new UpdateList use case.
func (c *Container) UpdateListUseCase() *usecase.UpdateList {
	return usecase.NewUpdateList(c.Lists)
}

// DeleteListUseCase returns a new DeleteList use case.
func (c *Container) DeleteListUseCase() *usecase.DeleteList {
	return usecase.NewDeleteList(c.Lists)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Logger)
}
