package localstore

import _ "embed"

// Bundled default datasets, loaded when no snapshot exists yet.
var (
	//go:embed seed_tasks.json
	seedTasks []byte

	//go:embed seed_lists.json
	seedLists []byte
)
