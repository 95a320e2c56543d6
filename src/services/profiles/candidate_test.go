package profiles

import (
	"testing"

	"studyabroad-backend/src/services/extraction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCandidateMergesCapturedFields(t *testing.T) {
	stored := sampleProfile()

	cand := extraction.CandidateProfile{
		FirstName:   strPtr("Asha"),
		MiddleName:  strPtr("K"),
		Citizenship: strPtr("India"),
		Address: extraction.CandidateAddress{
			City:       strPtr("Mumbai"),
			PostalCode: strPtr("400001"),
		},
		Education: extraction.CandidateEducation{
			Institution: strPtr("University of Mumbai"),
			Degree:      strPtr("BSc Computer Science"),
			FromDate:    strPtr("2016-08-01"),
			ToDate:      strPtr("2020-05-30"),
			Graduated:   true,
		},
		Gre:  true,
		Gmat: false,
	}

	merged := ApplyCandidate(stored, cand)

	assert.Equal(t, "K", merged.MiddleName)
	assert.Equal(t, "Mumbai", merged.Address.City)
	assert.Equal(t, "400001", merged.Address.ZipCode)
	// uncaptured fields keep their stored values
	assert.Equal(t, "42 Elm Street", merged.Address.Street)
	assert.Equal(t, "Patel", merged.LastName)

	require.Len(t, merged.SchoolHistory, 1)
	rec := merged.SchoolHistory[0]
	assert.Equal(t, "University of Mumbai", rec.Name)
	assert.Equal(t, "BSc Computer Science", rec.Degree)
	require.NotNil(t, rec.Graduated)
	assert.True(t, *rec.Graduated)

	require.NotNil(t, merged.TestScores.HasGreScores)
	assert.True(t, *merged.TestScores.HasGreScores)
	require.NotNil(t, merged.TestScores.HasGmatScores)
	assert.False(t, *merged.TestScores.HasGmatScores)
}

func TestApplyCandidateEmptyDocumentKeepsHistory(t *testing.T) {
	stored := sampleProfile()

	merged := ApplyCandidate(stored, extraction.CandidateProfile{})

	// nothing matched: school history must survive
	assert.Equal(t, stored.SchoolHistory, merged.SchoolHistory)
	assert.Equal(t, stored.FirstName, merged.FirstName)
	assert.Equal(t, stored.Address, merged.Address)

	// presence flags still write, false included — the weaker contract
	require.NotNil(t, merged.TestScores.HasGreScores)
	assert.False(t, *merged.TestScores.HasGreScores)
	require.NotNil(t, merged.TestScores.HasGmatScores)
	assert.False(t, *merged.TestScores.HasGmatScores)
}
