package models

import "time"

// Progress is the per-(user, module) tracking row. At most one row exists
// per pair. TimeSpent is cumulative seconds across all visits; Completed
// and LastAccessed reflect only the most recent visit.
type Progress struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ModuleID     uint      `json:"module_id"`
	Completed    bool      `json:"completed"`
	LastAccessed time.Time `json:"last_accessed"`
	TimeSpent    int       `json:"time_spent"`
}
