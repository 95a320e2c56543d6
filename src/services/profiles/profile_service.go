package profiles

import (
	"context"
	"errors"
	"time"

	"studyabroad-backend/src/database"
	"studyabroad-backend/src/models"
	"studyabroad-backend/src/services/extraction"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrUserNotFound = errors.New("user not found")

// GetUser - ดึงบัญชีพร้อม profile ตาม ID
func GetUser(userID string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile applies a client-form update to the stored profile and
// persists the merged result. The read-merge-write is request-scoped;
// concurrent updates to the same account are last-write-wins.
func UpdateUserProfile(userID string, req models.ProfileUpdateRequest) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.Profile = ApplyClientUpdate(user.Profile, req)
	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}

	return persist(user)
}

// IngestCandidate merges a PDF-extracted candidate onto the stored profile
// and persists it.
func IngestCandidate(userID string, cand extraction.CandidateProfile) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.Profile = ApplyCandidate(user.Profile, cand)
	return persist(user)
}

func persist(user *models.User) (*models.User, error) {
	user.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":      user.Name,
		"email":     user.Email,
		"profile":   user.Profile,
		"updatedAt": user.UpdatedAt,
	}}

	_, err := database.UserCollection.UpdateOne(context.Background(), bson.M{"_id": user.ID}, update)
	if err != nil {
		return nil, err
	}
	return user, nil
}
