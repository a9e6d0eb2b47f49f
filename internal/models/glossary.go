package models

type TermCategory string

const (
	CategoryPrinterPart TermCategory = "printer_part"
	CategoryProcess     TermCategory = "process"
	CategoryMaterial    TermCategory = "material"
	CategoryTechnical   TermCategory = "technical"
)

// GlossaryTerm is one dictionary entry. Terms are unique, case-sensitively.
type GlossaryTerm struct {
	ID         uint         `json:"id"`
	Term       string       `json:"term"`
	Definition string       `json:"definition"`
	Category   TermCategory `json:"category"`
}
