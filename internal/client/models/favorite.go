package models

// FavoriteUser is the denormalized owner snapshot inside a favorite.
type FavoriteUser struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Age       int    `json:"age"`
}

// FavoriteItem is the denormalized item snapshot inside a favorite.
type FavoriteItem struct {
	ID          string `json:"_id"`
	WebsiteName string `json:"websitename"`
	Image       string `json:"image"`
}

// Favorite links a customer to an item. Read-only for this client.
type Favorite struct {
	ID      string       `json:"_id"`
	User    FavoriteUser `json:"userId"`
	Item    FavoriteItem `json:"itemId"`
	AddedAt string       `json:"addedAt"`
}
