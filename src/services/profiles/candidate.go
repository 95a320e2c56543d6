package profiles

import (
	"studyabroad-backend/src/models"
	"studyabroad-backend/src/services/extraction"
)

// ApplyCandidate merges an extracted candidate profile onto the stored
// profile. Captured fields overwrite; nil fields keep what is stored. The
// single education block replaces school history only when the extractor
// actually matched something there, so a label-free document cannot wipe
// an existing history. The GRE/GMAT presence flags always write, false
// included — that is the extractor's weaker contract.
func ApplyCandidate(stored models.ApplicantProfile, c extraction.CandidateProfile) models.ApplicantProfile {
	merged := stored

	setString(&merged.FirstName, c.FirstName)
	setString(&merged.MiddleName, c.MiddleName)
	setString(&merged.LastName, c.LastName)
	setString(&merged.Dob, c.Dob)
	setString(&merged.FirstLanguage, c.FirstLanguage)
	setString(&merged.Citizenship, c.Citizenship)

	setString(&merged.Address.Street, c.Address.Street)
	setString(&merged.Address.City, c.Address.City)
	setString(&merged.Address.Province, c.Address.Province)
	setString(&merged.Address.ZipCode, c.Address.PostalCode)

	if hasEducation(c.Education) {
		graduated := c.Education.Graduated
		merged.SchoolHistory = []models.SchoolRecord{{
			Name:      strVal(c.Education.Institution),
			Degree:    strVal(c.Education.Degree),
			From:      strVal(c.Education.FromDate),
			To:        strVal(c.Education.ToDate),
			Graduated: &graduated,
		}}
	}

	gre := c.Gre
	gmat := c.Gmat
	merged.TestScores.HasGreScores = &gre
	merged.TestScores.HasGmatScores = &gmat

	return merged
}

func hasEducation(e extraction.CandidateEducation) bool {
	return e.Institution != nil || e.Degree != nil || e.FromDate != nil || e.ToDate != nil || e.Graduated
}
