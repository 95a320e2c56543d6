package profiles

import (
	"studyabroad-backend/src/models"
)

// ProjectForClient maps a stored profile onto the client-form shape, the
// structural inverse of ApplyClientUpdate. Tri-state flags render as
// "Yes"/"No"/"" except conditionalAdmission, which the historical client
// still consumes as a raw tri-state value. Missing sections come back as
// empty leaves, never an error.
func ProjectForClient(p models.ApplicantProfile) models.ProfileResponse {
	history := make([]models.SchoolRecordView, 0, len(p.SchoolHistory))
	for _, rec := range p.SchoolHistory {
		history = append(history, projectSchoolRecord(rec))
	}

	return models.ProfileResponse{
		PersonalInfo: models.PersonalInfoView{
			FirstName:            p.FirstName,
			MiddleName:           p.MiddleName,
			LastName:             p.LastName,
			Dob:                  p.Dob,
			FirstLanguage:        p.FirstLanguage,
			Citizenship:          p.Citizenship,
			PassportNumber:       p.PassportNumber,
			PassportExpiry:       p.PassportExpiry,
			PassportPlaceOfBirth: p.PassportPlaceOfBirth,
			Gender:               p.Gender,
			MaritalStatus:        p.MaritalStatus,
			Phone:                p.Phone,
			StudentEmail:         p.StudentEmail,
		},
		AddressDetails: projectAddress(p.Address),
		BackgroundInfo: models.BackgroundView{
			VisaRefusal:    FormatTriState(p.Background.VisaRefusal),
			HasValidPermit: FormatTriState(p.Background.HasValidPermit),
			PermitDetails:  p.Background.PermitDetails,
		},
		EducationDetails: models.EducationView{
			Country:       p.HighestEducation.Country,
			Level:         p.HighestEducation.Level,
			GradingScheme: p.HighestEducation.GradingScheme,
			GradeAverage:  p.HighestEducation.GradeAverage,
			Graduated:     FormatTriState(p.HighestEducation.Graduated),
		},
		SchoolHistory: history,
		TestScores: models.TestScoresView{
			ProofAvailable:       FormatTriState(p.TestScores.ProofAvailable),
			ConditionalAdmission: p.TestScores.ConditionalAdmission,
			LanguageStatus:       p.TestScores.LanguageStatus,
			GreScore:             p.TestScores.GreScore,
			GmatScore:            p.TestScores.GmatScore,
			HasGreScores:         FormatTriState(p.TestScores.HasGreScores),
			HasGmatScores:        FormatTriState(p.TestScores.HasGmatScores),
			OpenToLanguageCourse: FormatTriState(p.TestScores.OpenToLanguageCourse),
		},
		AdditionalDetails: models.AdditionalView{
			EmergencyContacts: p.Additional.EmergencyContacts,
			Notes:             p.Additional.Notes,
		},
	}
}

func projectAddress(a models.Address) models.AddressView {
	return models.AddressView{
		Street:   a.Street,
		City:     a.City,
		Province: a.Province,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
	}
}

func projectSchoolRecord(rec models.SchoolRecord) models.SchoolRecordView {
	return models.SchoolRecordView{
		Country:              rec.Country,
		Name:                 rec.Name,
		Level:                rec.Level,
		GradingScheme:        rec.GradingScheme,
		Language:             rec.Language,
		From:                 rec.From,
		To:                   rec.To,
		Degree:               rec.Degree,
		Graduated:            FormatTriState(rec.Graduated),
		GraduationDate:       rec.GraduationDate,
		CertificateAvailable: FormatTriState(rec.CertificateAvailable),
		Address:              projectAddress(rec.Address),
	}
}
