package models

import "time"

// QuizQuestion is a multiple-choice question belonging to one module.
// CorrectOption is an index into Options.
type QuizQuestion struct {
	ID            uint     `json:"id"`
	ModuleID      uint     `json:"module_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Explanation   string   `json:"explanation"`
}

// QuizResult records one scored submission. Results are appended and never
// mutated or deleted.
type QuizResult struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ModuleID    uint      `json:"module_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}
