package profilecodec

import (
	"math"
	"strings"

	"matrimony-service/internal/domain"
)

// TrackedFields names the fields that count toward completion. Partner
// preferences are left out so a profile can reach 100% without them.
var TrackedFields = []string{
	"firstName", "lastName", "phone", "gender", "dateOfBirth",
	"heightCm", "weightKg",
	"religion", "caste", "maritalStatus",
	"city", "state", "country", "citizenship",
	"occupation", "education", "college", "company", "income",
	"aboutMe",
}

// Completion returns the share of tracked fields present on the record as a
// whole percentage.
func Completion(rec *domain.ProfileRecord) int {
	if rec == nil {
		return 0
	}
	filled := []bool{
		hasStr(rec.FirstName), hasStr(rec.LastName), hasStr(rec.Phone), hasStr(rec.Gender), hasStr(rec.DateOfBirth),
		rec.HeightCm != nil, rec.WeightKg != nil,
		hasStr(rec.Religion), hasStr(rec.Caste), hasStr(rec.MaritalStatus),
		hasStr(rec.City), hasStr(rec.State), hasStr(rec.Country), hasStr(rec.Citizenship),
		hasStr(rec.Occupation), hasStr(rec.Education), hasStr(rec.College), hasStr(rec.Company), rec.Income != nil,
		hasStr(rec.AboutMe),
	}
	return percentage(filled)
}

// FormCompletion is Completion over the display form.
func FormCompletion(f domain.ProfileForm) int {
	filled := []bool{
		notBlank(f.FirstName), notBlank(f.LastName), notBlank(f.Phone), notBlank(f.Gender), notBlank(f.DateOfBirth),
		notBlank(f.Height), notBlank(f.Weight),
		notBlank(f.Religion), notBlank(f.Caste), notBlank(f.MaritalStatus),
		notBlank(f.City), notBlank(f.State), notBlank(f.Country), notBlank(f.Citizenship),
		notBlank(f.Occupation), notBlank(f.Education), notBlank(f.College), notBlank(f.Company), notBlank(f.Income),
		notBlank(f.AboutMe),
	}
	return percentage(filled)
}

func percentage(filled []bool) int {
	if len(filled) == 0 {
		return 0
	}
	n := 0
	for _, ok := range filled {
		if ok {
			n++
		}
	}
	p := int(math.Round(float64(n) * 100 / float64(len(filled))))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func hasStr(p *string) bool {
	return p != nil && notBlank(*p)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
