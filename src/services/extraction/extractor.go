package extraction

import (
	"regexp"
	"strings"
)

// CandidateProfile is what the extractor recovers from one document. Every
// captured field is a pointer: nil means the label was not found. The
// graduated/GRE/GMAT flags come from phrase presence scans and default to
// false when the phrase is absent, a deliberately weaker guarantee than the
// tri-state fields elsewhere.
type CandidateProfile struct {
	FirstName     *string
	MiddleName    *string
	LastName      *string
	Dob           *string
	FirstLanguage *string
	Citizenship   *string

	Address   CandidateAddress
	Education CandidateEducation

	Gre  bool
	Gmat bool
}

type CandidateAddress struct {
	Street     *string
	City       *string
	Province   *string
	PostalCode *string
}

// CandidateEducation holds the single education block the extractor looks
// for. The pipeline does not try to discover repeated blocks for multiple
// institutions.
type CandidateEducation struct {
	Institution *string
	Degree      *string
	FromDate    *string
	ToDate      *string
	Graduated   bool
}

// Label patterns follow the standard ApplyBoard/Passport PDF layout: the
// label text, whitespace, then the value on the same line. Dates are
// captured as raw digit-and-dash strings and not parsed here.
var (
	reFirstName     = regexp.MustCompile(`(?i)First Name \*\s+([^\n]+)`)
	reMiddleName    = regexp.MustCompile(`(?i)Middle Name\s+([^\n]+)`)
	reLastName      = regexp.MustCompile(`(?i)Last Name\s+([^\n]+)`)
	reDob           = regexp.MustCompile(`Date of Birth \*\s+([\d-]+)`)
	reFirstLanguage = regexp.MustCompile(`(?i)First Language \*\s+([^\n]+)`)
	reCitizenship   = regexp.MustCompile(`(?i)Country of Citizenship\s+([^\n]+)`)
	reStreet        = regexp.MustCompile(`(?i)Street Address \*\s+([^\n]+)`)
	reCity          = regexp.MustCompile(`(?i)City/Town\s+([^\n]+)`)
	reProvince      = regexp.MustCompile(`(?i)Province/State \*\s+([^\n]+)`)
	rePostalCode    = regexp.MustCompile(`(?i)Postal/Zip Code\s+([^\n]+)`)
	reInstitution   = regexp.MustCompile(`(?i)Name of Institution \*\s+([^\n]+)`)
	reDegree        = regexp.MustCompile(`(?i)Degree Name\s+([^\n]+)`)
	reFromDate      = regexp.MustCompile(`Attended Institution From \*\s+([\d-]+)`)
	reToDate        = regexp.MustCompile(`Attended Institution To \*\s+([\d-]+)`)
)

const (
	phraseGraduated = "I have graduated from this institution"
	phraseGre       = "I have GRE exam scores"
	phraseGmat      = "I have GMAT exam scores"
)

// ExtractProfile scans PDF-derived text for known labels and returns the
// partial candidate profile. It never fails: unmatched labels simply come
// back nil.
func ExtractProfile(text string) CandidateProfile {
	return CandidateProfile{
		FirstName:     capture(reFirstName, text),
		MiddleName:    capture(reMiddleName, text),
		LastName:      capture(reLastName, text),
		Dob:           capture(reDob, text),
		FirstLanguage: capture(reFirstLanguage, text),
		Citizenship:   capture(reCitizenship, text),
		Address: CandidateAddress{
			Street:     capture(reStreet, text),
			City:       capture(reCity, text),
			Province:   capture(reProvince, text),
			PostalCode: capture(rePostalCode, text),
		},
		Education: CandidateEducation{
			Institution: capture(reInstitution, text),
			Degree:      capture(reDegree, text),
			FromDate:    capture(reFromDate, text),
			ToDate:      capture(reToDate, text),
			Graduated:   strings.Contains(text, phraseGraduated),
		},
		Gre:  strings.Contains(text, phraseGre),
		Gmat: strings.Contains(text, phraseGmat),
	}
}

// capture returns the trimmed first submatch, or nil when the label is
// absent from the document.
func capture(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	return &v
}
