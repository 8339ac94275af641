package services

import (
	"context"
	"errors"
	"strings"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser checks the credentials and returns the account with the
// display name pulled from the profile behind it.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	result := &models.User{
		ID:    dbUser.ID,
		Email: dbUser.Email,
		Role:  dbUser.Role,
		RefID: dbUser.RefID,
	}

	// Display name lives on the profile, not the account.
	switch dbUser.Role {
	case "Mentor":
		var mentor models.MentorProfile
		if err := database.MentorCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&mentor); err == nil {
			result.Name = mentor.Name
		}
	case "Student":
		var student models.StudentProfile
		if err := database.StudentProfileCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&student); err == nil {
			result.Name = student.Name
		}
	}

	return result, nil
}

// HashPassword wraps bcrypt for account creation.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
