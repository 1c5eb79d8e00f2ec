package profilecodec

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"matrimony-service/internal/domain"
)

// ---- marital status ----

func decodeMarital(p *string) string {
	if p == nil {
		return ""
	}
	switch strings.ToUpper(strings.TrimSpace(*p)) {
	case domain.MaritalSingle:
		return domain.FormNeverMarried
	case domain.MaritalDivorced:
		return domain.FormDivorced
	case domain.MaritalWidowed:
		return domain.FormWidowed
	default:
		return ""
	}
}

// encodeMarital collapses awaiting-divorce into DIVORCED.
func encodeMarital(s string) *string {
	var v string
	switch strings.ToLower(strings.TrimSpace(s)) {
	case domain.FormNeverMarried:
		v = domain.MaritalSingle
	case domain.FormDivorced, domain.FormAwaitingDivorce:
		v = domain.MaritalDivorced
	case domain.FormWidowed:
		v = domain.MaritalWidowed
	default:
		return nil
	}
	return &v
}

// ---- height ladder ----

type heightRung struct {
	Code string
	Cm   int
}

// heightLadder covers 5'4" to 6'2"; codes are feet.inches.
var heightLadder = []heightRung{
	{"5.4", 163}, {"5.5", 165}, {"5.6", 168}, {"5.7", 170},
	{"5.8", 173}, {"5.9", 175}, {"5.10", 178}, {"5.11", 180},
	{"6.0", 183}, {"6.1", 185}, {"6.2", 188},
}

// HeightCode returns the ladder code for a centimeter value, or "" when the
// value is absent or off the ladder.
func HeightCode(cm *int) string {
	if cm == nil {
		return ""
	}
	for _, r := range heightLadder {
		if r.Cm == *cm {
			return r.Code
		}
	}
	return ""
}

// HeightCm returns the centimeter value for a ladder code, or nil for an
// unknown code.
func HeightCm(code string) *int {
	code = strings.TrimSpace(code)
	for _, r := range heightLadder {
		if r.Code == code {
			cm := r.Cm
			return &cm
		}
	}
	return nil
}

// HeightCodes lists the ladder codes in ascending order.
func HeightCodes() []string {
	out := make([]string, len(heightLadder))
	for i, r := range heightLadder {
		out[i] = r.Code
	}
	return out
}

// ---- income buckets ----

type incomeBucket struct {
	Code string
	Min  int64 // inclusive
	Max  int64 // exclusive, 0 for open-ended
	Rep  int64 // amount written back on encode
}

const lakh = 100000

var incomeBuckets = []incomeBucket{
	{"0-3", 0, 3 * lakh, 150000},
	{"3-5", 3 * lakh, 5 * lakh, 400000},
	{"5-10", 5 * lakh, 10 * lakh, 750000},
	{"10-20", 10 * lakh, 20 * lakh, 1500000},
	{"20-50", 20 * lakh, 50 * lakh, 3500000},
	{"50+", 50 * lakh, 0, 7500000},
}

// incomeTolerance is the fraction of a bucket's representative amount within
// which an income snaps to that bucket before the range test runs.
const incomeTolerance = 0.10

// IncomeBucket returns the bucket code for an annual amount, or "" when the
// amount is absent or negative.
func IncomeBucket(amount *int64) string {
	if amount == nil || *amount < 0 {
		return ""
	}
	a := *amount

	best := ""
	bestDist := math.MaxFloat64
	for _, b := range incomeBuckets {
		dist := math.Abs(float64(a - b.Rep))
		if dist <= float64(b.Rep)*incomeTolerance && dist < bestDist {
			best, bestDist = b.Code, dist
		}
	}
	if best != "" {
		return best
	}

	for _, b := range incomeBuckets {
		if a >= b.Min && (b.Max == 0 || a < b.Max) {
			return b.Code
		}
	}
	return ""
}

// IncomeAmount returns the representative amount for a bucket code, or nil
// for an unknown code. The original amount is not recoverable.
func IncomeAmount(code string) *int64 {
	code = strings.TrimSpace(code)
	for _, b := range incomeBuckets {
		if b.Code == code {
			v := b.Rep
			return &v
		}
	}
	return nil
}

// IncomeCodes lists the bucket codes in ascending order.
func IncomeCodes() []string {
	out := make([]string, len(incomeBuckets))
	for i, b := range incomeBuckets {
		out[i] = b.Code
	}
	return out
}

// ---- date of birth ----

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

func decodeDOB(p *string) string {
	if p == nil {
		return ""
	}
	s := strings.TrimSpace(*p)
	// timestamps keep only their date part
	if i := strings.IndexByte(s, 'T'); i == 10 && isoDateRe.MatchString(s[:10]) {
		return s[:10]
	}
	return s
}

// encodeDOB accepts YYYY-MM-DD or a valid DD/MM/YYYY date and sends ISO.
// Anything else is passed through trimmed.
func encodeDOB(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if isoDateRe.MatchString(s) {
		return &s
	}
	if m := dmyDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		iso := fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
		if _, err := time.Parse(time.DateOnly, iso); err == nil {
			return &iso
		}
	}
	return &s
}
