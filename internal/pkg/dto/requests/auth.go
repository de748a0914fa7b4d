package requests

type RegisterUser struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Subscription string `json:"subscription" validate:"omitempty,oneof=starter pro business"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ResendVerification struct {
	Email string `json:"email"`
}
