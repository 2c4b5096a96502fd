package models

// Category groups items. Slug is derived server-side and never client-writable.
type Category struct {
	ID           string `json:"_id,omitempty"`
	CategoryName string `json:"categoryname"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Slug         string `json:"slug"`
}

// CategoryPayload is the create/update request body (no id, no slug).
type CategoryPayload struct {
	CategoryName string `json:"categoryname"`
	Description  string `json:"description"`
	Image        string `json:"image"`
}
