package mentors

import (
	"context"
	"errors"
	"time"

	DB "github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

// CreateMentorProfile validates and inserts a new mentor profile.
func CreateMentorProfile(mentor *models.MentorProfile) error {
	if err := validate.Struct(mentor); err != nil {
		return err
	}

	mentor.ID = primitive.NewObjectID()
	_, err := DB.MentorCollection.InsertOne(context.Background(), mentor)
	return err
}

// GetMentorByID loads one mentor profile.
func GetMentorByID(id string) (*models.MentorProfile, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid mentor ID")
	}

	var mentor models.MentorProfile
	err = DB.MentorCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&mentor)
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// GetActiveMentors lists mentors currently participating in the program.
func GetActiveMentors() ([]models.MentorProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.MentorCollection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mentors []models.MentorProfile
	for cursor.Next(ctx) {
		var m models.MentorProfile
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	return mentors, cursor.Err()
}

// UpdateMentorProfile validates and replaces the editable fields.
func UpdateMentorProfile(id string, mentor *models.MentorProfile) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid mentor ID")
	}
	if err := validate.Struct(mentor); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":               mentor.Name,
		"email":              mentor.Email,
		"company":            mentor.Company,
		"skills":             mentor.Skills,
		"areasOfExpertise":   mentor.AreasOfExpertise,
		"industries":         mentor.Industries,
		"preferredHelpTypes": mentor.PreferredHelpTypes,
		"isActive":           mentor.IsActive,
	}}

	res, err := DB.MentorCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeactivateMentor flips isActive off; the matching engine stops proposing
// candidates for the mentor immediately.
func DeactivateMentor(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid mentor ID")
	}

	_, err = DB.MentorCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	return err
}
