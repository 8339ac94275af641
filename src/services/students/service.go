package students

import (
	"context"
	"errors"
	"time"

	DB "github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetStudentProfileByID loads one student profile.
func GetStudentProfileByID(id string) (*models.StudentProfile, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	var profile models.StudentProfile
	err = DB.StudentProfileCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetSeekingStudents lists everyone currently opted into mentorship.
func GetSeekingStudents() ([]models.StudentProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.StudentProfileCollection.Find(ctx, bson.M{"seekingMentorship": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.StudentProfile
	for cursor.Next(ctx) {
		var p models.StudentProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, cursor.Err()
}

// UpdateMentorshipPreferences is the student self-service write: skills,
// interests, goals, graduation year and the seekingMentorship flag. The
// activity score is owned by activity tracking and cannot be set here.
func UpdateMentorshipPreferences(id string, profile *models.StudentProfile) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid student ID")
	}

	update := bson.M{"$set": bson.M{
		"skills":            profile.Skills,
		"interests":         profile.Interests,
		"careerGoals":       profile.CareerGoals,
		"graduationYear":    profile.GraduationYear,
		"seekingMentorship": profile.SeekingMentorship,
	}}

	res, err := DB.StudentProfileCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
