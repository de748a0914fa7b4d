package requests

type UpsertContact struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Favorite *bool  `json:"favorite"`
}

// UpdateFavorite uses a pointer so an absent field can be told apart from false.
type UpdateFavorite struct {
	Favorite *bool `json:"favorite"`
}
