package model

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}

// RegisterReq requires a password with at least one lower, one upper,
// one digit and one symbol; the "password" rule is registered in the
// validation package.
type RegisterReq struct {
	Name     string `json:"name" validate:"required,min=3,max=128"`
	Email    string `json:"email" validate:"required,min=7,max=69,email"`
	Password string `json:"password" validate:"required,password"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}
