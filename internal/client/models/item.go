// Package models defines the wire types of the directory admin API. Field
// names follow the backend's JSON exactly (mongo-style "_id", "websitename",
// ...); changing them breaks the contract.
package models

// MobileApp holds the optional store links of a listed website.
type MobileApp struct {
	AppStore  string `json:"appStore,omitempty"`
	PlayStore string `json:"playStore,omitempty"`
}

// SEO is derived server-side and never written by the client.
type SEO struct {
	Slug     string   `json:"slug"`
	Keywords []string `json:"keywords"`
}

// Item is a website listing as the server returns it.
type Item struct {
	ID             string    `json:"_id"`
	ItemID         int       `json:"item_id"`
	WebsiteName    string    `json:"websitename"`
	WebsiteURL     string    `json:"websiteUrl"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	Category       string    `json:"category"`
	AI             bool      `json:"ai"`
	PricingType    string    `json:"pricingType"`
	PricingDetails string    `json:"pricingDetails"`
	Tags           []string  `json:"tags"`
	Rating         float64   `json:"rating"`
	Features       []string  `json:"features"`
	Country        string    `json:"country"`
	Adult          bool      `json:"adult"`
	MobileApp      MobileApp `json:"mobileApp"`
	SEO            SEO       `json:"seo"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// ItemPayload is the create/update request body. Tags and Features travel as
// single comma-joined strings; use JoinLabels/SplitLabels at the boundary.
// MobileApp here is a presence flag, not the link pair.
type ItemPayload struct {
	WebsiteName    string  `json:"websitename"`
	WebsiteURL     string  `json:"websiteUrl"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	MobileApp      bool    `json:"mobileApp"`
	Image          string  `json:"image"`
	AI             bool    `json:"ai"`
	PricingType    string  `json:"pricingType"`
	PricingDetails string  `json:"pricingDetails"`
	Tags           string  `json:"tags"`
	Rating         float64 `json:"rating"`
	Features       string  `json:"features"`
	Country        string  `json:"country"`
}

// Pricing classifications accepted by the backend.
const (
	PricingFree     = "free"
	PricingPaid     = "paid"
	PricingFreemium = "freemium"
)

// ItemPage is one page of the paginated items listing.
type ItemPage struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}
