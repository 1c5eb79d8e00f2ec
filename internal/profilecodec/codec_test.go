package profilecodec

import (
	"testing"

	"matrimony-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }
func ip(i int) *int       { return &i }
func i64(i int64) *int64  { return &i }

func fullRecord() *domain.ProfileRecord {
	return &domain.ProfileRecord{
		FirstName:          sp("Asha"),
		LastName:           sp("Nair"),
		Phone:              sp("+91 98450 00000"),
		Gender:             sp("Female"),
		DateOfBirth:        sp("1994-03-17"),
		HeightCm:           ip(165),
		WeightKg:           ip(58),
		Religion:           sp("Hindu"),
		Caste:              sp("Nair"),
		MaritalStatus:      sp("SINGLE"),
		City:               sp("Kochi"),
		State:              sp("Kerala"),
		Country:            sp("India"),
		Citizenship:        sp("Indian"),
		Occupation:         sp("Software Engineer"),
		Education:          sp("Masters"),
		College:            sp("NIT Calicut"),
		Company:            sp("Acme"),
		Income:             i64(1500000),
		AboutMe:            sp("Loves trekking."),
		PartnerPreferences: sp("Kind and curious."),
	}
}

func TestDecodeNilRecord(t *testing.T) {
	assert.Equal(t, domain.ProfileForm{}, Decode(nil))
	assert.Equal(t, domain.ProfileForm{}, Decode(&domain.ProfileRecord{}))
}

func TestDecodeFullRecord(t *testing.T) {
	f := Decode(fullRecord())

	assert.Equal(t, "Asha", f.FirstName)
	assert.Equal(t, "female", f.Gender)
	assert.Equal(t, "hindu", f.Religion)
	assert.Equal(t, "india", f.Country)
	assert.Equal(t, "software engineer", f.Occupation)
	assert.Equal(t, "masters", f.Education)
	assert.Equal(t, "Nair", f.Caste, "caste keeps its case")
	assert.Equal(t, "never-married", f.MaritalStatus)
	assert.Equal(t, "5.5", f.Height)
	assert.Equal(t, "58", f.Weight)
	assert.Equal(t, "10-20", f.Income)
	assert.Equal(t, "1994-03-17", f.DateOfBirth)
	assert.Equal(t, "Kind and curious.", f.PartnerPreferences)
}

func TestEncodeBlankIsNull(t *testing.T) {
	rec := Encode(domain.ProfileForm{FirstName: "  ", LastName: "", Height: "", Income: "", MaritalStatus: ""})
	assert.Equal(t, domain.ProfileRecord{}, rec)
}

func TestEncodeDoesNotRecapitalize(t *testing.T) {
	rec := Encode(Decode(fullRecord()))
	require.NotNil(t, rec.Gender)
	assert.Equal(t, "female", *rec.Gender)
	assert.Equal(t, "india", *rec.Country)
	assert.Equal(t, "Asha", *rec.FirstName)
}

func TestMaritalStatusRoundTrip(t *testing.T) {
	for _, wire := range []string{"SINGLE", "WIDOWED", "DIVORCED"} {
		rec := Encode(Decode(&domain.ProfileRecord{MaritalStatus: sp(wire)}))
		require.NotNil(t, rec.MaritalStatus, wire)
		assert.Equal(t, wire, *rec.MaritalStatus)
	}

	rec := Encode(domain.ProfileForm{MaritalStatus: "awaiting-divorce"})
	require.NotNil(t, rec.MaritalStatus)
	assert.Equal(t, "DIVORCED", *rec.MaritalStatus)

	assert.Equal(t, "", Decode(&domain.ProfileRecord{MaritalStatus: sp("SEPARATED")}).MaritalStatus)
	assert.Nil(t, Encode(domain.ProfileForm{MaritalStatus: "complicated"}).MaritalStatus)
}

func TestHeightLadder(t *testing.T) {
	assert.Equal(t, "5.9", HeightCode(ip(175)))
	require.NotNil(t, HeightCm("5.9"))
	assert.Equal(t, 175, *HeightCm("5.9"))

	require.Len(t, heightLadder, 11)
	for _, code := range HeightCodes() {
		cm := HeightCm(code)
		require.NotNil(t, cm, code)
		assert.Equal(t, code, HeightCode(cm))
	}
	assert.Equal(t, 163, heightLadder[0].Cm)
	assert.Equal(t, 188, heightLadder[len(heightLadder)-1].Cm)

	assert.Equal(t, "", HeightCode(ip(174)))
	assert.Equal(t, "", HeightCode(ip(150)))
	assert.Equal(t, "", HeightCode(nil))
	assert.Nil(t, HeightCm("7.0"))
}

func TestIncomeBuckets(t *testing.T) {
	assert.Equal(t, "10-20", IncomeBucket(i64(1500000)))
	assert.Equal(t, "10-20", IncomeBucket(i64(1450000)))
	require.NotNil(t, IncomeAmount("10-20"))
	assert.Equal(t, int64(1500000), *IncomeAmount("10-20"))

	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0-3"},
		{299999, "0-3"},
		{300000, "3-5"},
		{500000, "5-10"},
		{999999, "5-10"},
		{2000000, "20-50"},
		{4999999, "20-50"},
		{5000000, "50+"},
		{90000000, "50+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IncomeBucket(i64(tt.amount)), "amount %d", tt.amount)
	}

	assert.Equal(t, "", IncomeBucket(nil))
	assert.Equal(t, "", IncomeBucket(i64(-1)))
	assert.Nil(t, IncomeAmount("100+"))

	for _, code := range IncomeCodes() {
		amt := IncomeAmount(code)
		require.NotNil(t, amt)
		assert.Equal(t, code, IncomeBucket(amt), "representative of %s decodes back to it", code)
	}
}

func TestDateOfBirth(t *testing.T) {
	assert.Equal(t, "1994-03-17", Decode(&domain.ProfileRecord{DateOfBirth: sp("1994-03-17")}).DateOfBirth)
	assert.Equal(t, "1994-03-17", Decode(&domain.ProfileRecord{DateOfBirth: sp("1994-03-17T00:00:00Z")}).DateOfBirth)

	tests := map[string]string{
		"1994-03-17": "1994-03-17",
		"17/03/1994": "1994-03-17",
		"7/3/1994":   "1994-03-07",
		" March 17 ": "March 17",
		"45/13/1994": "45/13/1994",
		"31/02/1994": "31/02/1994",
		"29/02/1996": "1996-02-29",
	}
	for in, want := range tests {
		rec := Encode(domain.ProfileForm{DateOfBirth: in})
		require.NotNil(t, rec.DateOfBirth, in)
		assert.Equal(t, want, *rec.DateOfBirth)
	}
	assert.Nil(t, Encode(domain.ProfileForm{DateOfBirth: " "}).DateOfBirth)
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 62, *Encode(domain.ProfileForm{Weight: "62"}).WeightKg)
	assert.Equal(t, 63, *Encode(domain.ProfileForm{Weight: "62.5"}).WeightKg)
	assert.Nil(t, Encode(domain.ProfileForm{Weight: "heavy"}).WeightKg)
	assert.Equal(t, 500, *Encode(domain.ProfileForm{Weight: "500"}).WeightKg)

	for _, in := range []string{"NaN", "Inf", "-Inf", "1e30", "99999999999999999999", "-5", "0", "501"} {
		assert.Nil(t, Encode(domain.ProfileForm{Weight: in}).WeightKg, "weight %q", in)
	}
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, 0, Completion(nil))
	assert.Equal(t, 0, Completion(&domain.ProfileRecord{}))
	assert.Equal(t, 0, FormCompletion(domain.ProfileForm{}))

	full := fullRecord()
	assert.Equal(t, 100, Completion(full))
	assert.Equal(t, 100, FormCompletion(Decode(full)))

	full.PartnerPreferences = nil
	assert.Equal(t, 100, Completion(full), "preferences are not tracked")

	assert.Equal(t, 5, Completion(&domain.ProfileRecord{FirstName: sp("A")}))
	assert.Equal(t, 0, Completion(&domain.ProfileRecord{FirstName: sp("   ")}))
}

func TestCompletionMonotonic(t *testing.T) {
	full := fullRecord()
	steps := []func(r *domain.ProfileRecord){
		func(r *domain.ProfileRecord) { r.FirstName = full.FirstName },
		func(r *domain.ProfileRecord) { r.LastName = full.LastName },
		func(r *domain.ProfileRecord) { r.Phone = full.Phone },
		func(r *domain.ProfileRecord) { r.Gender = full.Gender },
		func(r *domain.ProfileRecord) { r.DateOfBirth = full.DateOfBirth },
		func(r *domain.ProfileRecord) { r.HeightCm = full.HeightCm },
		func(r *domain.ProfileRecord) { r.WeightKg = full.WeightKg },
		func(r *domain.ProfileRecord) { r.Religion = full.Religion },
		func(r *domain.ProfileRecord) { r.Caste = full.Caste },
		func(r *domain.ProfileRecord) { r.MaritalStatus = full.MaritalStatus },
		func(r *domain.ProfileRecord) { r.City = full.City },
		func(r *domain.ProfileRecord) { r.State = full.State },
		func(r *domain.ProfileRecord) { r.Country = full.Country },
		func(r *domain.ProfileRecord) { r.Citizenship = full.Citizenship },
		func(r *domain.ProfileRecord) { r.Occupation = full.Occupation },
		func(r *domain.ProfileRecord) { r.Education = full.Education },
		func(r *domain.ProfileRecord) { r.College = full.College },
		func(r *domain.ProfileRecord) { r.Company = full.Company },
		func(r *domain.ProfileRecord) { r.Income = full.Income },
		func(r *domain.ProfileRecord) { r.AboutMe = full.AboutMe },
	}
	require.Len(t, steps, len(TrackedFields))

	rec := &domain.ProfileRecord{}
	prev := Completion(rec)
	for _, step := range steps {
		step(rec)
		cur := Completion(rec)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 100, prev)
}
