package profiles

import (
	"studyabroad-backend/src/models"
)

// ApplyClientUpdate merges a client-form payload onto a stored profile,
// section by section. A nil section leaves the stored section untouched.
// Within a present section a nil field keeps the stored value while a
// non-nil field overwrites it, so an explicitly sent empty string clears.
// Tri-state booleans only overwrite when they coerce to true or false.
func ApplyClientUpdate(stored models.ApplicantProfile, req models.ProfileUpdateRequest) models.ApplicantProfile {
	merged := stored

	if p := req.PersonalInfo; p != nil {
		setString(&merged.FirstName, p.FirstName)
		setString(&merged.MiddleName, p.MiddleName)
		setString(&merged.LastName, p.LastName)
		setString(&merged.Dob, p.Dob)
		setString(&merged.FirstLanguage, p.FirstLanguage)
		setString(&merged.Citizenship, p.Citizenship)
		setString(&merged.PassportNumber, p.PassportNumber)
		setString(&merged.PassportExpiry, p.PassportExpiry)
		setString(&merged.PassportPlaceOfBirth, p.PassportPlaceOfBirth)
		setString(&merged.Gender, p.Gender)
		setString(&merged.MaritalStatus, p.MaritalStatus)
		setString(&merged.Phone, p.Phone)
		setString(&merged.StudentEmail, p.StudentEmail)
	}

	if a := req.AddressDetails; a != nil {
		merged.Address = mergeAddress(merged.Address, *a)
	}

	if b := req.BackgroundInfo; b != nil {
		setTriState(&merged.Background.VisaRefusal, b.VisaRefusal)
		setTriState(&merged.Background.HasValidPermit, b.HasValidPermit)
		setString(&merged.Background.PermitDetails, b.PermitDetails)
	}

	if e := req.EducationDetails; e != nil {
		setString(&merged.HighestEducation.Country, e.Country)
		setString(&merged.HighestEducation.Level, e.Level)
		setString(&merged.HighestEducation.GradingScheme, e.GradingScheme)
		setString(&merged.HighestEducation.GradeAverage, e.GradeAverage)
		setTriState(&merged.HighestEducation.Graduated, e.Graduated)
	}

	// School history is replaced wholesale, never merged entry by entry.
	if req.SchoolHistory != nil {
		records := make([]models.SchoolRecord, 0, len(*req.SchoolHistory))
		for _, rec := range *req.SchoolHistory {
			records = append(records, mapSchoolRecord(rec))
		}
		merged.SchoolHistory = records
	}

	if t := req.TestScores; t != nil {
		setTriState(&merged.TestScores.ProofAvailable, t.ProofAvailable)
		setTriState(&merged.TestScores.ConditionalAdmission, t.ConditionalAdmission)
		setString(&merged.TestScores.LanguageStatus, t.LanguageStatus)
		setString(&merged.TestScores.GreScore, t.GreScore)
		setString(&merged.TestScores.GmatScore, t.GmatScore)
		setTriState(&merged.TestScores.HasGreScores, t.HasGreScores)
		setTriState(&merged.TestScores.HasGmatScores, t.HasGmatScores)
		setTriState(&merged.TestScores.OpenToLanguageCourse, t.OpenToLanguageCourse)
	}

	if d := req.AdditionalDetails; d != nil {
		setString(&merged.Additional.EmergencyContacts, d.EmergencyContacts)
		setString(&merged.Additional.Notes, d.Notes)
	}

	return merged
}

func mergeAddress(stored models.Address, in models.AddressPayload) models.Address {
	setString(&stored.Street, in.Street)
	setString(&stored.City, in.City)
	setString(&stored.Province, in.Province)
	setString(&stored.ZipCode, in.ZipCode)
	setString(&stored.Country, in.Country)
	return stored
}

func mapSchoolRecord(in models.SchoolRecordPayload) models.SchoolRecord {
	return models.SchoolRecord{
		Country:              strVal(in.Country),
		Name:                 strVal(in.Name),
		Level:                strVal(in.Level),
		GradingScheme:        strVal(in.GradingScheme),
		Language:             strVal(in.Language),
		From:                 strVal(in.From),
		To:                   strVal(in.To),
		Degree:               strVal(in.Degree),
		Graduated:            CoerceBool(in.Graduated.Raw()),
		GraduationDate:       strVal(in.GraduationDate),
		CertificateAvailable: CoerceBool(in.CertificateAvailable.Raw()),
		Address: models.Address{
			Street:   strVal(in.Address.Street),
			City:     strVal(in.Address.City),
			Province: strVal(in.Address.Province),
			ZipCode:  strVal(in.Address.ZipCode),
			Country:  strVal(in.Address.Country),
		},
	}
}

// setString overwrites only when the client actually sent the field.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setTriState overwrites only when the value coerces to true or false;
// unknown keeps whatever was stored before.
func setTriState(dst **bool, f models.FlexBool) {
	if v := CoerceBool(f.Raw()); v != nil {
		*dst = v
	}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
