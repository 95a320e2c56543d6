package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User บัญชีผู้ใช้ (student / admin / agent)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // ✅ accepted from frontend, never sent back
	Role     string             `bson:"role" json:"role"`

	Profile ApplicantProfile `bson:"profile" json:"profile"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// ApplicantProfile is the single persisted profile shape. Tri-state booleans
// are *bool so nil means "not provided" and survives partial updates.
type ApplicantProfile struct {
	// Personal information
	FirstName            string `bson:"firstName,omitempty" json:"firstName"`
	MiddleName           string `bson:"middleName,omitempty" json:"middleName"`
	LastName             string `bson:"lastName,omitempty" json:"lastName"`
	Dob                  string `bson:"dob,omitempty" json:"dob"`
	FirstLanguage        string `bson:"firstLanguage,omitempty" json:"firstLanguage"`
	Citizenship          string `bson:"citizenship,omitempty" json:"citizenship"`
	PassportNumber       string `bson:"passportNumber,omitempty" json:"passportNumber"`
	PassportExpiry       string `bson:"passportExpiry,omitempty" json:"passportExpiry"`
	PassportPlaceOfBirth string `bson:"passportPlaceOfBirth,omitempty" json:"passportPlaceOfBirth"`
	Gender               string `bson:"gender,omitempty" json:"gender"`
	MaritalStatus        string `bson:"maritalStatus,omitempty" json:"maritalStatus"`
	Phone                string `bson:"phone,omitempty" json:"phone"`
	StudentEmail         string `bson:"studentEmail,omitempty" json:"studentEmail"`

	Address          Address          `bson:"address,omitempty" json:"address"`
	Background       Background       `bson:"background,omitempty" json:"background"`
	HighestEducation HighestEducation `bson:"highestEducation,omitempty" json:"highestEducation"`
	SchoolHistory    []SchoolRecord   `bson:"schoolHistory,omitempty" json:"schoolHistory"`
	TestScores       TestScores       `bson:"testScores,omitempty" json:"testScores"`
	Additional       Additional       `bson:"additionalDetails,omitempty" json:"additionalDetails"`
}

// Address ที่อยู่
type Address struct {
	Street   string `bson:"street,omitempty" json:"street"`
	City     string `bson:"city,omitempty" json:"city"`
	Province string `bson:"province,omitempty" json:"province"`
	ZipCode  string `bson:"zipCode,omitempty" json:"zipCode"`
	Country  string `bson:"country,omitempty" json:"country"`
}

// Background วีซ่าและใบอนุญาต
type Background struct {
	VisaRefusal    *bool  `bson:"visaRefusal,omitempty" json:"visaRefusal"`
	HasValidPermit *bool  `bson:"hasValidPermit,omitempty" json:"hasValidPermit"`
	PermitDetails  string `bson:"permitDetails,omitempty" json:"permitDetails"`
}

// HighestEducation วุฒิการศึกษาสูงสุด
type HighestEducation struct {
	Country       string `bson:"country,omitempty" json:"country"`
	Level         string `bson:"level,omitempty" json:"level"`
	GradingScheme string `bson:"gradingScheme,omitempty" json:"gradingScheme"`
	GradeAverage  string `bson:"gradeAverage,omitempty" json:"gradeAverage"`
	Graduated     *bool  `bson:"graduated,omitempty" json:"graduated"`
}

// SchoolRecord ประวัติสถานศึกษาหนึ่งแห่ง
type SchoolRecord struct {
	Country              string  `bson:"country,omitempty" json:"country"`
	Name                 string  `bson:"name,omitempty" json:"name"`
	Level                string  `bson:"level,omitempty" json:"level"`
	GradingScheme        string  `bson:"gradingScheme,omitempty" json:"gradingScheme"`
	Language             string  `bson:"language,omitempty" json:"language"`
	From                 string  `bson:"from,omitempty" json:"from"`
	To                   string  `bson:"to,omitempty" json:"to"`
	Degree               string  `bson:"degree,omitempty" json:"degree"`
	Graduated            *bool   `bson:"graduated,omitempty" json:"graduated"`
	GraduationDate       string  `bson:"graduationDate,omitempty" json:"graduationDate"`
	CertificateAvailable *bool   `bson:"certificateAvailable,omitempty" json:"certificateAvailable"`
	Address              Address `bson:"address,omitempty" json:"address"`
}

// TestScores คะแนนสอบ
type TestScores struct {
	ProofAvailable       *bool  `bson:"proofAvailable,omitempty" json:"proofAvailable"`
	ConditionalAdmission *bool  `bson:"conditionalAdmission,omitempty" json:"conditionalAdmission"`
	LanguageStatus       string `bson:"languageStatus,omitempty" json:"languageStatus"`
	GreScore             string `bson:"greScore,omitempty" json:"greScore"`
	GmatScore            string `bson:"gmatScore,omitempty" json:"gmatScore"`
	HasGreScores         *bool  `bson:"hasGreScores,omitempty" json:"hasGreScores"`
	HasGmatScores        *bool  `bson:"hasGmatScores,omitempty" json:"hasGmatScores"`
	OpenToLanguageCourse *bool  `bson:"openToLanguageCourse,omitempty" json:"openToLanguageCourse"`
}

// Additional ข้อมูลเพิ่มเติม
type Additional struct {
	EmergencyContacts string `bson:"emergencyContacts,omitempty" json:"emergencyContacts"`
	Notes             string `bson:"notes,omitempty" json:"notes"`
}
