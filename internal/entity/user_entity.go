package entity

import "time"

const (
	UserRoleUser      = "user"
	UserRoleOfficiant = "officiant"
	UserRoleAdmin     = "admin"
)

type User struct {
	Id           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"password" json:"-"` // Don't expose password in JSON
	Name         string    `bson:"name" json:"name"`
	Partner1     string    `bson:"partner1,omitempty" json:"partner1,omitempty"`
	Partner2     string    `bson:"partner2,omitempty" json:"partner2,omitempty"`
	Role         string    `bson:"role" json:"role"`
	IsVerified   bool      `bson:"isVerified" json:"isVerified"`
	RefreshToken string    `bson:"-" json:"-"`

	// Officiant profile, empty for couples.
	Specialization string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	ProfilePicture string   `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Bio            string   `bson:"bio,omitempty" json:"bio,omitempty"`
	BookingPackage string   `bson:"bookingPackage,omitempty" json:"bookingPackage,omitempty"`
	Languages      []string `bson:"languages,omitempty" json:"languages,omitempty"`
	Location       string   `bson:"location,omitempty" json:"location,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UserIndexFilter struct {
	Ids  []string `bson:"ids"`
	Role string   `bson:"role"`
}
