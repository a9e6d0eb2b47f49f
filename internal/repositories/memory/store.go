package memory

import (
	"context"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
)

// Store is the volatile, single-process catalog store. It is constructed
// explicitly at startup, seeded once, and handed to the service layer;
// discarding it discards all state. Each catalog guards its own table
// with one mutex, which is all the serialization the synchronous call
// contract requires.
type Store struct {
	users     *userRepository
	modules   *moduleRepository
	questions *questionRepository
	results   *resultRepository
	glossary  *glossaryRepository
	parts     *partRepository
	materials *materialRepository
	progress  *progressRepository
}

// NewStore creates an empty store with every catalog's id counter at 1.
func NewStore() *Store {
	return &Store{
		users:     &userRepository{table: newTable[models.User]()},
		modules:   &moduleRepository{table: newTable[models.Module]()},
		questions: &questionRepository{table: newTable[models.QuizQuestion]()},
		results:   &resultRepository{table: newTable[models.QuizResult]()},
		glossary:  &glossaryRepository{table: newTable[models.GlossaryTerm]()},
		parts:     &partRepository{table: newTable[models.PrinterPart]()},
		materials: &materialRepository{table: newTable[models.Material]()},
		progress:  &progressRepository{table: newTable[models.Progress]()},
	}
}

func (s *Store) Users() repositories.UserRepository         { return s.users }
func (s *Store) Modules() repositories.ModuleRepository     { return s.modules }
func (s *Store) Questions() repositories.QuestionRepository { return s.questions }
func (s *Store) Results() repositories.ResultRepository     { return s.results }
func (s *Store) Glossary() repositories.GlossaryRepository  { return s.glossary }
func (s *Store) Parts() repositories.PartRepository         { return s.parts }
func (s *Store) Materials() repositories.MaterialRepository { return s.materials }
func (s *Store) Progress() repositories.ProgressRepository  { return s.progress }

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }
