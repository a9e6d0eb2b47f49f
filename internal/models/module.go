package models

type ModuleType string

const (
	ModuleIntro     ModuleType = "intro"
	ModulePrinter   ModuleType = "printer"
	ModuleMaterials ModuleType = "materials"
	ModuleProcess   ModuleType = "process"
	ModuleDesign    ModuleType = "design"
)

type ModuleLevel string

const (
	LevelBeginner     ModuleLevel = "beginner"
	LevelIntermediate ModuleLevel = "intermediate"
	LevelAdvanced     ModuleLevel = "advanced"
)

// ModuleSection is one titled block of lesson text.
type ModuleSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ModuleContent struct {
	Sections []ModuleSection `json:"sections"`
}

// Module is a learning module in the catalog. DisplayOrder is assigned at
// seed time and is the sole sort key for listings.
type Module struct {
	ID               uint          `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Content          ModuleContent `json:"content"`
	Type             ModuleType    `json:"type"`
	Level            ModuleLevel   `json:"level"`
	DisplayOrder     int           `json:"order"`
	EstimatedMinutes int           `json:"estimated_minutes"`
	ImageURL         *string       `json:"image_url,omitempty"`
}
