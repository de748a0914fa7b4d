package responses

type CurrentUser struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

type UpdateAvatar struct {
	AvatarURL string `json:"avatarURL"`
}
