package repositories

import "context"

// Store aggregates all catalog repositories. There is no cross-catalog
// transaction support: every operation is all-or-nothing against a single
// catalog, and references between catalogs (module_id, user_id) are weak.
type Store interface {
	Users() UserRepository
	Modules() ModuleRepository
	Questions() QuestionRepository
	Results() ResultRepository
	Glossary() GlossaryRepository
	Parts() PartRepository
	Materials() MaterialRepository
	Progress() ProgressRepository

	// Health check
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
