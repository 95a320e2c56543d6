package models

import "encoding/json"

// FlexBool is a tri-state boolean field as sent by the client form. It
// accepts JSON booleans, strings ("true"/"yes"/"No"/...), and null. Absent
// and explicit-null fields both stay in the zero state and coerce to
// unknown. Coercion itself lives in services/profiles.CoerceBool; FlexBool
// only records the raw value.
type FlexBool struct {
	raw any // nil, bool, or string
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	f.raw = nil

	if string(data) == "null" {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		f.raw = b
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f.raw = s
	return nil
}

// MarshalJSON renders the raw value back out unchanged.
func (f FlexBool) MarshalJSON() ([]byte, error) {
	if f.raw == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.raw)
}

// Raw returns the undecoded value: nil, bool, or string.
func (f FlexBool) Raw() any { return f.raw }

// ProfileUpdateRequest is the client-form shape for profile writes. Every
// section is a pointer: nil means the section was omitted and the stored
// section must stay untouched.
type ProfileUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`

	PersonalInfo      *PersonalInfoPayload   `json:"personalInfo"`
	AddressDetails    *AddressPayload        `json:"addressDetails"`
	BackgroundInfo    *BackgroundPayload     `json:"backgroundInfo"`
	EducationDetails  *EducationPayload      `json:"educationDetails"`
	SchoolHistory     *[]SchoolRecordPayload `json:"schoolHistory"`
	TestScores        *TestScoresPayload     `json:"testScores"`
	AdditionalDetails *AdditionalPayload     `json:"additionalDetails"`
}

// PersonalInfoPayload ข้อมูลส่วนตัวจากฟอร์ม
type PersonalInfoPayload struct {
	FirstName            *string `json:"firstName"`
	MiddleName           *string `json:"middleName"`
	LastName             *string `json:"lastName"`
	Dob                  *string `json:"dob"`
	FirstLanguage        *string `json:"firstLanguage"`
	Citizenship          *string `json:"citizenship"`
	PassportNumber       *string `json:"passportNumber"`
	PassportExpiry       *string `json:"passportExpiry"`
	PassportPlaceOfBirth *string `json:"passportPlaceOfBirth"`
	Gender               *string `json:"gender"`
	MaritalStatus        *string `json:"maritalStatus"`
	Phone                *string `json:"phone"`
	StudentEmail         *string `json:"studentEmail"`
}

type AddressPayload struct {
	Street   *string `json:"street"`
	City     *string `json:"city"`
	Province *string `json:"province"`
	ZipCode  *string `json:"zipCode"`
	Country  *string `json:"country"`
}

type BackgroundPayload struct {
	VisaRefusal    FlexBool `json:"visaRefusal"`
	HasValidPermit FlexBool `json:"hasValidPermit"`
	PermitDetails  *string  `json:"permitDetails"`
}

type EducationPayload struct {
	Country       *string  `json:"country"`
	Level         *string  `json:"level"`
	GradingScheme *string  `json:"gradingScheme"`
	GradeAverage  *string  `json:"gradeAverage"`
	Graduated     FlexBool `json:"graduated"`
}

type SchoolRecordPayload struct {
	Country              *string        `json:"country"`
	Name                 *string        `json:"name"`
	Level                *string        `json:"level"`
	GradingScheme        *string        `json:"gradingScheme"`
	Language             *string        `json:"language"`
	From                 *string        `json:"from"`
	To                   *string        `json:"to"`
	Degree               *string        `json:"degree"`
	Graduated            FlexBool       `json:"graduated"`
	GraduationDate       *string        `json:"graduationDate"`
	CertificateAvailable FlexBool       `json:"certificateAvailable"`
	Address              AddressPayload `json:"address"`
}

type TestScoresPayload struct {
	ProofAvailable       FlexBool `json:"proofAvailable"`
	ConditionalAdmission FlexBool `json:"conditionalAdmission"`
	LanguageStatus       *string  `json:"languageStatus"`
	GreScore             *string  `json:"greScore"`
	GmatScore            *string  `json:"gmatScore"`
	HasGreScores         FlexBool `json:"hasGreScores"`
	HasGmatScores        FlexBool `json:"hasGmatScores"`
	OpenToLanguageCourse FlexBool `json:"openToLanguageCourse"`
}

type AdditionalPayload struct {
	EmergencyContacts *string `json:"emergencyContacts"`
	Notes             *string `json:"notes"`
}

// ProfileResponse is the client-facing projection of a stored profile.
// Tri-state flags are rendered "Yes"/"No"/"" except conditionalAdmission,
// which the historical client consumes raw.
type ProfileResponse struct {
	PersonalInfo      PersonalInfoView   `json:"personalInfo"`
	AddressDetails    AddressView        `json:"addressDetails"`
	BackgroundInfo    BackgroundView     `json:"backgroundInfo"`
	EducationDetails  EducationView      `json:"educationDetails"`
	SchoolHistory     []SchoolRecordView `json:"schoolHistory"`
	TestScores        TestScoresView     `json:"testScores"`
	AdditionalDetails AdditionalView     `json:"additionalDetails"`
}

type PersonalInfoView struct {
	FirstName            string `json:"firstName"`
	MiddleName           string `json:"middleName"`
	LastName             string `json:"lastName"`
	Dob                  string `json:"dob"`
	FirstLanguage        string `json:"firstLanguage"`
	Citizenship          string `json:"citizenship"`
	PassportNumber       string `json:"passportNumber"`
	PassportExpiry       string `json:"passportExpiry"`
	PassportPlaceOfBirth string `json:"passportPlaceOfBirth"`
	Gender               string `json:"gender"`
	MaritalStatus        string `json:"maritalStatus"`
	Phone                string `json:"phone"`
	StudentEmail         string `json:"studentEmail"`
}

type AddressView struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Province string `json:"province"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

type BackgroundView struct {
	VisaRefusal    string `json:"visaRefusal"`
	HasValidPermit string `json:"hasValidPermit"`
	PermitDetails  string `json:"permitDetails"`
}

type EducationView struct {
	Country       string `json:"country"`
	Level         string `json:"level"`
	GradingScheme string `json:"gradingScheme"`
	GradeAverage  string `json:"gradeAverage"`
	Graduated     string `json:"graduated"`
}

type SchoolRecordView struct {
	Country              string      `json:"country"`
	Name                 string      `json:"name"`
	Level                string      `json:"level"`
	GradingScheme        string      `json:"gradingScheme"`
	Language             string      `json:"language"`
	From                 string      `json:"from"`
	To                   string      `json:"to"`
	Degree               string      `json:"degree"`
	Graduated            string      `json:"graduated"`
	GraduationDate       string      `json:"graduationDate"`
	CertificateAvailable string      `json:"certificateAvailable"`
	Address              AddressView `json:"address"`
}

type TestScoresView struct {
	ProofAvailable       string `json:"proofAvailable"`
	ConditionalAdmission *bool  `json:"conditionalAdmission"` // raw tri-state, historical contract
	LanguageStatus       string `json:"languageStatus"`
	GreScore             string `json:"greScore"`
	GmatScore            string `json:"gmatScore"`
	HasGreScores         string `json:"hasGreScores"`
	HasGmatScores        string `json:"hasGmatScores"`
	OpenToLanguageCourse string `json:"openToLanguageCourse"`
}

type AdditionalView struct {
	EmergencyContacts string `json:"emergencyContacts"`
	Notes             string `json:"notes"`
}
