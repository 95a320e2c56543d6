package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studyabroad-backend/src/database"
	"studyabroad-backend/src/models"
	"studyabroad-backend/src/services/profiles"
	"studyabroad-backend/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsValidationError reports whether err came from request validation, so
// controllers can keep bad input (400) apart from storage faults (500).
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// RegisterRequest ข้อมูลสมัครสมาชิก
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// RegisterUser validates the payload, rejects duplicate emails, hashes the
// password and creates the account with an empty applicant profile.
func RegisterUser(req RegisterRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	ctx := context.Background()
	email := strings.ToLower(req.Email)

	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      profiles.DefaultRole(req.Role),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks email + password. Both a missing account and a
// wrong password come back as the same error so the response never leaks
// which one failed.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("❌ login lookup failed: %v\n", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// IsRateLimited reports whether this email used up its login attempts.
func IsRateLimited(email string) bool {
	return utils.IsLoginRateLimited(strings.ToLower(email))
}

// GetRemainingCooldownTime คำนวณเวลาที่เหลือก่อนลองใหม่ได้
func GetRemainingCooldownTime(email string) time.Duration {
	return utils.LoginCooldownRemaining(strings.ToLower(email))
}

// LogLoginAttempt records the outcome of a login for rate limiting.
func LogLoginAttempt(email, ip string, success bool) {
	email = strings.ToLower(email)
	if success {
		utils.ResetLoginAttempts(email)
		log.Printf("✅ login ok: %s from %s\n", email, ip)
		return
	}
	utils.RecordLoginFailure(email)
	log.Printf("⚠️ login failed: %s from %s\n", email, ip)
}
