package models

// LoginHistory is one remembered customer login.
type LoginHistory struct {
	ID         string `json:"_id"`
	Device     string `json:"device"`
	Browser    string `json:"browser"`
	OS         string `json:"os"`
	IP         string `json:"ip"`
	LoggedInAt string `json:"loggedInAt"`
}

// Customer is an end-user account. IsActive and IsBlocked are independent
// booleans; a customer can be both, and display logic gives blocked priority.
// Password is the server-side hash, opaque to this client.
type Customer struct {
	ID              string         `json:"_id"`
	FirstName       string         `json:"firstname"`
	LastName        string         `json:"lastname"`
	Email           string         `json:"email"`
	Mobile          string         `json:"mobile"`
	Password        string         `json:"password"`
	DOB             string         `json:"dob"`
	TermsConditions bool           `json:"terms_conditions"`
	IsActive        bool           `json:"isActive"`
	IsBlocked       bool           `json:"isBlocked"`
	Preferences     string         `json:"preferences"`
	LoginHistory    []LoginHistory `json:"loginHistory"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
}

// CustomerUpdate carries the editable subset of Customer for partial updates.
// Zero-valued fields are omitted from the request body.
type CustomerUpdate struct {
	FirstName   string `json:"firstname,omitempty"`
	LastName    string `json:"lastname,omitempty"`
	Email       string `json:"email,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	DOB         string `json:"dob,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}
