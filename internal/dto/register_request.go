// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email" example:"alice@example.com"`
	Username  string `json:"username" validate:"required,min=3" example:"alice"`
	Password  string `json:"password" validate:"required,min=6" example:"Secret123!"`
	FirstName string `json:"firstName" validate:"required" example:"Alice"`
	LastName  string `json:"lastName" validate:"required" example:"Liddell"`
}
