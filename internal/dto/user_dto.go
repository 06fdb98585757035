package dto

// Password fields are write-only: they never appear in responses, and when
// either is set the two must match.

type CreateUserRequest struct {
	Username        string  `json:"username"         validate:"required,min=1,max=150"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Role            string  `json:"role"             validate:"required,oneof=admin employee"`
	Password        string  `json:"password"         validate:"omitempty,min=8"`
	PasswordConfirm string  `json:"password_confirm" validate:"omitempty,min=8"`
}

type UpdateUserRequest struct {
	Username        string  `json:"username"         validate:"omitempty,min=1,max=150"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Role            string  `json:"role"             validate:"omitempty,oneof=admin employee"`
	Password        string  `json:"password"         validate:"omitempty,min=8"`
	PasswordConfirm string  `json:"password_confirm" validate:"omitempty,min=8"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
}
