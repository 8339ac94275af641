package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorProfile is maintained by the mentor from their dashboard; the
// matching engine only ever reads it.
type MentorProfile struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"userId,omitempty" json:"userId"`
	Name               string             `bson:"name" json:"name" validate:"required"`
	Email              string             `bson:"email" json:"email" validate:"required,email"`
	Company            string             `bson:"company" json:"company"`
	Skills             []string           `bson:"skills" json:"skills"`
	AreasOfExpertise   []string           `bson:"areasOfExpertise" json:"areasOfExpertise"`
	Industries         []string           `bson:"industries" json:"industries"`
	PreferredHelpTypes []string           `bson:"preferredHelpTypes" json:"preferredHelpTypes"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
}
