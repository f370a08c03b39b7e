package model

// Report is a denormalized reference to a selectable data product.
// Type is a free-text report category, unrelated to AlertType.
type Report struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Geography string `json:"geography"`
	Commodity string `json:"commodity"`
	Type      string `json:"type"`
}
