package models

// Contact belongs to the user referenced by Owner; queries are always scoped
// to the acting user.
type Contact struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Favorite  bool   `bson:"favorite" json:"favorite"`
	Owner     string `bson:"owner" json:"-"`
	TimeModel `bson:",inline" json:"-"`
}
