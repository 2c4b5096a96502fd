package models

// Tag is a free-form label. Items reference tags by name, not by id.
type Tag struct {
	ID          string `json:"_id"`
	TagName     string `json:"tagname"`
	Description string `json:"description"`
}

// TagPayload is the create/update request body.
type TagPayload struct {
	TagName     string `json:"tagname"`
	Description string `json:"description"`
}
