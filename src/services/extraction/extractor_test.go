package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePDFText = `ApplyBoard Applicant Summary
First Name * Asha
Middle Name Kiran
Last Name Patel
Date of Birth * 1999-04-23
First Language * Hindi
Country of Citizenship India
Street Address * 42 Elm Street
City/Town Toronto
Province/State * Ontario
Postal/Zip Code M4B 1B3
Name of Institution * University of Mumbai
Degree Name BSc Computer Science
Attended Institution From * 2016-08-01
Attended Institution To * 2020-05-30
I have graduated from this institution
I have GRE exam scores
`

func TestExtractProfileFullDocument(t *testing.T) {
	got := ExtractProfile(samplePDFText)

	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Asha", *got.FirstName)
	require.NotNil(t, got.MiddleName)
	assert.Equal(t, "Kiran", *got.MiddleName)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Patel", *got.LastName)
	require.NotNil(t, got.Dob)
	assert.Equal(t, "1999-04-23", *got.Dob)
	require.NotNil(t, got.FirstLanguage)
	assert.Equal(t, "Hindi", *got.FirstLanguage)
	require.NotNil(t, got.Citizenship)
	assert.Equal(t, "India", *got.Citizenship)

	require.NotNil(t, got.Address.Street)
	assert.Equal(t, "42 Elm Street", *got.Address.Street)
	require.NotNil(t, got.Address.City)
	assert.Equal(t, "Toronto", *got.Address.City)
	require.NotNil(t, got.Address.Province)
	assert.Equal(t, "Ontario", *got.Address.Province)
	require.NotNil(t, got.Address.PostalCode)
	assert.Equal(t, "M4B 1B3", *got.Address.PostalCode)

	require.NotNil(t, got.Education.Institution)
	assert.Equal(t, "University of Mumbai", *got.Education.Institution)
	require.NotNil(t, got.Education.Degree)
	assert.Equal(t, "BSc Computer Science", *got.Education.Degree)
	require.NotNil(t, got.Education.FromDate)
	assert.Equal(t, "2016-08-01", *got.Education.FromDate)
	require.NotNil(t, got.Education.ToDate)
	assert.Equal(t, "2020-05-30", *got.Education.ToDate)
	assert.True(t, got.Education.Graduated)

	assert.True(t, got.Gre)
	assert.False(t, got.Gmat)
}

func TestExtractProfileNoLabels(t *testing.T) {
	got := ExtractProfile("nothing recognizable in here\njust plain prose")

	assert.Nil(t, got.FirstName)
	assert.Nil(t, got.MiddleName)
	assert.Nil(t, got.LastName)
	assert.Nil(t, got.Dob)
	assert.Nil(t, got.FirstLanguage)
	assert.Nil(t, got.Citizenship)
	assert.Nil(t, got.Address.Street)
	assert.Nil(t, got.Address.City)
	assert.Nil(t, got.Address.Province)
	assert.Nil(t, got.Address.PostalCode)
	assert.Nil(t, got.Education.Institution)
	assert.Nil(t, got.Education.Degree)
	assert.Nil(t, got.Education.FromDate)
	assert.Nil(t, got.Education.ToDate)
	assert.False(t, got.Education.Graduated)
	assert.False(t, got.Gre)
	assert.False(t, got.Gmat)
}

func TestExtractProfileGrePhraseOnly(t *testing.T) {
	got := ExtractProfile("some header\nI have GRE exam scores\nsome footer")

	assert.True(t, got.Gre)
	assert.False(t, got.Gmat)
}

func TestExtractProfileEmptyText(t *testing.T) {
	got := ExtractProfile("")
	assert.Nil(t, got.FirstName)
	assert.False(t, got.Gre)
}

func TestExtractProfileTrimsCapturedValues(t *testing.T) {
	got := ExtractProfile("First Name *   Asha   \nLast Name  Patel\t\n")
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Asha", *got.FirstName)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Patel", *got.LastName)
}

func TestExtractProfileDateMustBeDigitsAndDashes(t *testing.T) {
	got := ExtractProfile("Date of Birth * April 23, 1999\n")
	// non-numeric date text does not satisfy the digits-and-dashes capture
	assert.Nil(t, got.Dob)
}
