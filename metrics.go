package main

import (
	"math"
	"strconv"
)

// activityFactors maps the three supported activity multipliers to their
// display labels. This is the single source of truth for valid factors — also
// used for input validation in patchProfile.
var activityFactors = map[string]string{
	"1.2":  "SEDENTARY",
	"1.55": "MODERATE",
	"1.9":  "ATHLETE",
}

// Default bio-data for a freshly created profile. Numeric fields are stored as
// strings because they arrive as raw text-input values from the app shell and
// are only interpreted at computation time.
const (
	defaultName           = "GUEST"
	defaultImage          = "https://i.imgur.com/Te04y5V.png"
	defaultWeightKg       = "70"
	defaultHeightCm       = "175"
	defaultAgeYears       = "25"
	defaultSex            = "MALE"
	defaultActivityFactor = "1.55"
)

// BMI classification band boundaries.
const (
	bmiUnderweightBelow = 18.5
	bmiHealthyBelow     = 25.0
)

// computeMetrics computes BMI, BMR (Mifflin-St Jeor), and TDEE from the
// profile's bio-data fields. Returns ok=false when any numeric field fails to
// parse or is non-positive — callers keep whatever they computed last instead
// of flashing to zero on a half-edited profile.
//
// Any sex value other than "MALE" takes the female branch of the formula.
// That matches the binary branch the formula actually has; sex is not
// validated here.
func computeMetrics(s *profileSettings) (bmi float64, bmr, tdee int, ok bool) {
	weightKg, err := strconv.ParseFloat(s.WeightKg, 64)
	if err != nil || weightKg <= 0 {
		return 0, 0, 0, false
	}
	heightCm, err := strconv.ParseFloat(s.HeightCm, 64)
	if err != nil || heightCm <= 0 {
		return 0, 0, 0, false
	}
	ageYears, err := strconv.ParseFloat(s.AgeYears, 64)
	if err != nil || ageYears <= 0 {
		return 0, 0, 0, false
	}
	factor, err := strconv.ParseFloat(s.ActivityFactor, 64)
	if err != nil || factor <= 0 {
		return 0, 0, 0, false
	}

	// BMI: weight over height squared, reported to one decimal place
	heightM := heightCm / 100
	bmi = math.Round(weightKg/(heightM*heightM)*10) / 10

	// BMR via Mifflin-St Jeor: different constant for male vs female
	bmrF := 10*weightKg + 6.25*heightCm - 5*ageYears
	if s.Sex == "MALE" {
		bmrF += 5
	} else {
		bmrF -= 161
	}
	bmr = int(math.Round(bmrF))

	// TDEE scales the reported (rounded) BMR, so the two numbers shown to the
	// user stay arithmetically consistent: tdee == round(bmr * factor).
	tdee = int(math.Round(float64(bmr) * factor))

	return bmi, bmr, tdee, true
}

// classifyBMI returns the display band for a BMI value.
func classifyBMI(bmi float64) string {
	switch {
	case bmi < bmiUnderweightBelow:
		return "UNDERWEIGHT"
	case bmi < bmiHealthyBelow:
		return "HEALTHY"
	default:
		return "OVERWEIGHT"
	}
}

// populateComputedMetrics fills the computed-only fields on s from its
// bio-data. No-ops if any field fails to parse, leaving previously populated
// values untouched.
func populateComputedMetrics(s *profileSettings) {
	if bmi, bmr, tdee, ok := computeMetrics(s); ok {
		band := classifyBMI(bmi)
		s.BMI = &bmi
		s.BMR = &bmr
		s.TDEE = &tdee
		s.Classification = &band
	}
}
