package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// University รายการมหาวิทยาลัย/หลักสูตร
type University struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// University info
	Name    string `bson:"name" json:"name"`
	Country string `bson:"country" json:"country"`
	City    string `bson:"city" json:"city"`
	Ranking string `bson:"ranking,omitempty" json:"ranking"`
	Website string `bson:"website,omitempty" json:"website"`

	// Course details
	CourseName  string `bson:"courseName" json:"courseName"`
	CourseLevel string `bson:"courseLevel" json:"courseLevel"`
	Duration    string `bson:"duration,omitempty" json:"duration"`
	TuitionFee  string `bson:"tuitionFee,omitempty" json:"tuitionFee"`
	Intakes     string `bson:"intakes,omitempty" json:"intakes"`

	// Admission rules
	MinCgpa             string `bson:"minCgpa,omitempty" json:"minCgpa"`
	AcceptedDegrees     string `bson:"acceptedDegrees,omitempty" json:"acceptedDegrees"`
	AcceptedBackgrounds string `bson:"acceptedBackgrounds,omitempty" json:"acceptedBackgrounds"`
	MaxBacklogs         int    `bson:"maxBacklogs,omitempty" json:"maxBacklogs"`
	GapAccepted         string `bson:"gapAccepted" json:"gapAccepted"` // "Yes" or "No"
	GapLimit            int    `bson:"gapLimit,omitempty" json:"gapLimit"`

	// English requirements
	EnglishTests    string `bson:"englishTests,omitempty" json:"englishTests"`
	MinScoreOverall string `bson:"minScoreOverall,omitempty" json:"minScoreOverall"`
	MinScoreSection string `bson:"minScoreSection,omitempty" json:"minScoreSection"`

	// Additional
	CasPriority        string   `bson:"casPriority,omitempty" json:"casPriority"`
	InternalProcessing string   `bson:"internalProcessing,omitempty" json:"internalProcessing"`
	Tags               []string `bson:"tags,omitempty" json:"tags"`

	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// UniversityRequest คำขอสร้างรายการใหม่ (admin เท่านั้น)
type UniversityRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
	Ranking string `json:"ranking"`
	Website string `json:"website"`

	CourseName  string `json:"courseName" validate:"required"`
	CourseLevel string `json:"courseLevel" validate:"required"`
	Duration    string `json:"duration"`
	TuitionFee  string `json:"tuitionFee"`
	Intakes     string `json:"intakes"`

	MinCgpa             string `json:"minCgpa"`
	AcceptedDegrees     string `json:"acceptedDegrees"`
	AcceptedBackgrounds string `json:"acceptedBackgrounds"`
	MaxBacklogs         int    `json:"maxBacklogs"`
	GapAccepted         string `json:"gapAccepted" validate:"omitempty,oneof=Yes No"`
	GapLimit            int    `json:"gapLimit"`

	EnglishTests    string `json:"englishTests"`
	MinScoreOverall string `json:"minScoreOverall"`
	MinScoreSection string `json:"minScoreSection"`

	CasPriority        string   `json:"casPriority"`
	InternalProcessing string   `json:"internalProcessing"`
	Tags               []string `json:"tags"`
}
