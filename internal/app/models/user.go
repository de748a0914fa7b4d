package models

// User is the sole persistent entity of the auth core. Password always holds
// the bcrypt hash, never the plaintext. Token holds the most recently issued
// session JWT and is empty while logged out. VerificationToken is non-empty
// only until the verification link is consumed.
type User struct {
	ID                string `bson:"_id,omitempty"`
	Email             string `bson:"email"`
	Password          string `bson:"password"`
	Subscription      string `bson:"subscription"`
	AvatarURL         string `bson:"avatarURL"`
	Verify            bool   `bson:"verify"`
	VerificationToken string `bson:"verificationToken"`
	Token             string `bson:"token"`
	TimeModel         `bson:",inline"`
}
