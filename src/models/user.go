package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a login account. RefID points at the mentor or student profile
// behind the account, depending on Role.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // accepted from clients, never returned
	Role     string             `bson:"role" json:"role"`            // "Mentor", "Student", "Admin"
	RefID    primitive.ObjectID `bson:"refId" json:"refId"`
	Name     string             `bson:"-" json:"name"`
}
