// Package profilecodec converts between the API profile record and the
// display form used by profile screens. Both directions are total: missing
// or malformed input degrades to "" on the form side and nil on the wire
// side. Several mappings are lossy and the two directions are independent
// functions rather than exact inverses.
package profilecodec

import (
	"math"
	"strconv"
	"strings"

	"matrimony-service/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Decode builds the display form for a record. A nil record yields an empty
// form.
func Decode(rec *domain.ProfileRecord) domain.ProfileForm {
	if rec == nil {
		return domain.ProfileForm{}
	}

	return domain.ProfileForm{
		FirstName:   str(rec.FirstName),
		LastName:    str(rec.LastName),
		Phone:       str(rec.Phone),
		Gender:      lower(rec.Gender),
		DateOfBirth: decodeDOB(rec.DateOfBirth),

		Height: HeightCode(rec.HeightCm),
		Weight: intStr(rec.WeightKg),

		Religion:      lower(rec.Religion),
		Caste:         str(rec.Caste),
		MaritalStatus: decodeMarital(rec.MaritalStatus),

		City:        str(rec.City),
		State:       str(rec.State),
		Country:     lower(rec.Country),
		Citizenship: str(rec.Citizenship),

		Occupation: lower(rec.Occupation),
		Education:  lower(rec.Education),
		College:    str(rec.College),
		Company:    str(rec.Company),
		Income:     IncomeBucket(rec.Income),

		AboutMe:            str(rec.AboutMe),
		PartnerPreferences: str(rec.PartnerPreferences),
	}
}

// Encode builds the API record for a submitted form. Lower-cased display
// values are sent as they are.
func Encode(f domain.ProfileForm) domain.ProfileRecord {
	return domain.ProfileRecord{
		FirstName:   ptr(f.FirstName),
		LastName:    ptr(f.LastName),
		Phone:       ptr(f.Phone),
		Gender:      ptr(f.Gender),
		DateOfBirth: encodeDOB(f.DateOfBirth),

		HeightCm: HeightCm(f.Height),
		WeightKg: parseWeight(f.Weight),

		Religion:      ptr(f.Religion),
		Caste:         ptr(f.Caste),
		MaritalStatus: encodeMarital(f.MaritalStatus),

		City:        ptr(f.City),
		State:       ptr(f.State),
		Country:     ptr(f.Country),
		Citizenship: ptr(f.Citizenship),

		Occupation: ptr(f.Occupation),
		Education:  ptr(f.Education),
		College:    ptr(f.College),
		Company:    ptr(f.Company),
		Income:     IncomeAmount(f.Income),

		AboutMe:            ptr(f.AboutMe),
		PartnerPreferences: ptr(f.PartnerPreferences),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func lower(p *string) string {
	if p == nil {
		return ""
	}
	return cases.Lower(language.Und).String(*p)
}

func intStr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// ptr trims s and returns nil when nothing is left.
func ptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Weights outside this range are treated as not provided.
const (
	minWeightKg = 1
	maxWeightKg = 500
)

// parseWeight reads whole or fractional kilograms, rounding to the nearest
// kilogram. Unparseable or implausible values give nil.
func parseWeight(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	f = math.Round(f)
	if f < minWeightKg || f > maxWeightKg {
		return nil
	}
	n := int(f)
	return &n
}
