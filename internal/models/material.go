package models

// Material is one filament type in the comparison table. Difficulty,
// Strength and Flexibility are 1-5 ratings.
type Material struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	FullName       string `json:"full_name"`
	Difficulty     int    `json:"difficulty"`
	Strength       int    `json:"strength"`
	Flexibility    int    `json:"flexibility"`
	Temperature    string `json:"temperature"`
	BedTemperature string `json:"bed_temperature"`
	UseCases       string `json:"use_cases"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
}
