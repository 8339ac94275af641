package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentProfile is owned by student self-service; ActivityScore is
// recomputed elsewhere from platform engagement (0-100).
type StudentProfile struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Skills            []string           `bson:"skills" json:"skills"`
	Interests         []string           `bson:"interests" json:"interests"`
	CareerGoals       []string           `bson:"careerGoals" json:"careerGoals"`
	GraduationYear    *int               `bson:"graduationYear,omitempty" json:"graduationYear,omitempty"`
	ActivityScore     float64            `bson:"activityScore" json:"activityScore"`
	SeekingMentorship bool               `bson:"seekingMentorship" json:"seekingMentorship"`
}
