package models

// PartPosition places a part on the anatomy diagram, in percentage
// coordinates relative to the image (0-100 on both axes).
type PartPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PrinterPart struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Function    string       `json:"function"`
	Position    PartPosition `json:"position"`
}
