package services

import (
	"context"
	"time"

	"studyabroad-backend/src/database"
	"studyabroad-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAllUniversities - ดึงรายการมหาวิทยาลัยทั้งหมด
func GetAllUniversities() ([]models.University, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.UniversityCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	universities := []models.University{}
	for cursor.Next(ctx) {
		var uni models.University
		if err := cursor.Decode(&uni); err != nil {
			return nil, err
		}
		universities = append(universities, uni)
	}

	return universities, nil
}

// CreateUniversity inserts a new listing owned by the creating admin.
// Listings are immutable after creation; there is no update path.
func CreateUniversity(req models.UniversityRequest, createdBy primitive.ObjectID) (*models.University, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	gapAccepted := req.GapAccepted
	if gapAccepted == "" {
		gapAccepted = "No"
	}

	now := time.Now()
	uni := models.University{
		ID:      primitive.NewObjectID(),
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Ranking: req.Ranking,
		Website: req.Website,

		CourseName:  req.CourseName,
		CourseLevel: req.CourseLevel,
		Duration:    req.Duration,
		TuitionFee:  req.TuitionFee,
		Intakes:     req.Intakes,

		MinCgpa:             req.MinCgpa,
		AcceptedDegrees:     req.AcceptedDegrees,
		AcceptedBackgrounds: req.AcceptedBackgrounds,
		MaxBacklogs:         req.MaxBacklogs,
		GapAccepted:         gapAccepted,
		GapLimit:            req.GapLimit,

		EnglishTests:    req.EnglishTests,
		MinScoreOverall: req.MinScoreOverall,
		MinScoreSection: req.MinScoreSection,

		CasPriority:        req.CasPriority,
		InternalProcessing: req.InternalProcessing,
		Tags:               req.Tags,

		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := database.UniversityCollection.InsertOne(context.Background(), uni); err != nil {
		return nil, err
	}
	return &uni, nil
}
