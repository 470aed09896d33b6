package domain

// Role is a user's functional profile.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleSales     Role = "SALES"
	RoleStock     Role = "STOCK"
	RolePurchases Role = "PURCHASES"
)

// User represents an operator of the application.
type User struct {
	UserID string `json:"userID" validate:"required"` // Primary Key (e.g., UUID)
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Role   Role   `json:"role" validate:"required,oneof=ADMIN SALES STOCK PURCHASES"`
	Active bool   `json:"active"`
}

// Validate checks the user's required fields.
func (u User) Validate() error {
	return validateStruct(u)
}
