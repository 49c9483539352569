package models

// Standard represents a single TEKS curriculum standard
type Standard struct {
	ID          string `json:"id" db:"id"`                   // e.g. "5.2A"
	Code        string `json:"code" db:"code"`               // Display form, e.g. "5.2(A)"
	Category    string `json:"category" db:"category"`       // e.g. "Number & Operations"
	Description string `json:"description" db:"description"` // What the standard covers
}
