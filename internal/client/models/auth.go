package models

// AdminUser is the authenticated staff profile returned by login.
type AdminUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	FullName string   `json:"fullName"`
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Admin   AdminUser `json:"admin"`
}

type RegisterPayload struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type RegisterResponse struct {
	Message string    `json:"message"`
	Admin   AdminUser `json:"admin"`
}
