package responses

type RegisterUser struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

type LoginUser struct {
	Token        string `json:"token"`
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}
