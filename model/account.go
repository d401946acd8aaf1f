package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email    string `gorm:"index" validate:"omitempty,email" json:"email"`
	Password string `gorm:"not null" validate:"required,min=6,max=72" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Email    string `validate:"omitempty,email" json:"email"`
	Password string `validate:"required,min=6,max=72" json:"password"`
	Role     string `json:"role"` // ADMIN, EDITOR
}

type SetPasswordInput struct {
	AccountId   uint   `validate:"required,gt=0" json:"accountId"`
	NewPassword string `validate:"required,min=6,max=72" json:"newPassword"`
}

// DataProxyInput is the generic admin-data proxy request body.
type DataProxyInput struct {
	Operation string         `json:"operation"` // insert, update, delete, select, rpc
	Table     string         `json:"table,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Match     map[string]any `json:"match,omitempty"`
	Function  string         `json:"function,omitempty"` // rpc only
}
