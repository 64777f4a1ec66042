package main

import (
	"math"
	"strconv"
	"testing"
)

// makeProfile constructs a profileSettings with the given bio-data strings.
// Individual tests overwrite specific fields to exercise parse guards.
func makeProfile(weightKg, heightCm, ageYears, sex, activityFactor string) *profileSettings {
	return &profileSettings{
		WeightKg:       weightKg,
		HeightCm:       heightCm,
		AgeYears:       ageYears,
		Sex:            sex,
		ActivityFactor: activityFactor,
	}
}

/* ─── Reference value tests ──────────────────────────────────────────── */

// TestComputeMetrics_ReferenceMale verifies the full pipeline against hand-
// computed values for the default profile.
//
// BMR = 10*70 + 6.25*175 - 5*25 + 5 = 1673.75 → 1674
// TDEE = 1674 * 1.55 = 2594.7 → 2595
// BMI  = 70 / 1.75² = 22.857 → 22.9
func TestComputeMetrics_ReferenceMale(t *testing.T) {
	bmi, bmr, tdee, ok := computeMetrics(makeProfile("70", "175", "25", "MALE", "1.55"))
	if !ok {
		t.Fatal("expected ok=true, got ok=false")
	}
	if bmi != 22.9 {
		t.Errorf("bmi = %v, want 22.9", bmi)
	}
	if bmr != 1674 {
		t.Errorf("bmr = %d, want 1674", bmr)
	}
	if tdee != 2595 {
		t.Errorf("tdee = %d, want 2595", tdee)
	}
}

// TestComputeMetrics_ReferenceFemale verifies the female branch.
//
// BMR = 10*60 + 6.25*165 - 5*30 - 161 = 1320.25 → 1320
// TDEE = 1320 * 1.2 = 1584
func TestComputeMetrics_ReferenceFemale(t *testing.T) {
	_, bmr, tdee, ok := computeMetrics(makeProfile("60", "165", "30", "FEMALE", "1.2"))
	if !ok {
		t.Fatal("expected ok=true, got ok=false")
	}
	if bmr != 1320 {
		t.Errorf("bmr = %d, want 1320", bmr)
	}
	if tdee != 1584 {
		t.Errorf("tdee = %d, want 1584", tdee)
	}
}

// TestComputeMetrics_BMIFormula checks the reported BMI against a directly
// computed reference across a spread of bodies. The reported value is rounded
// to one decimal, so it must sit within 0.05 of the raw ratio.
func TestComputeMetrics_BMIFormula(t *testing.T) {
	cases := []struct {
		weightKg string
		heightCm string
	}{
		{"45", "150"},
		{"70", "175"},
		{"82.5", "181"},
		{"110", "190"},
		{"58", "169.5"},
	}

	for _, tc := range cases {
		t.Run(tc.weightKg+"kg/"+tc.heightCm+"cm", func(t *testing.T) {
			bmi, _, _, ok := computeMetrics(makeProfile(tc.weightKg, tc.heightCm, "30", "MALE", "1.2"))
			if !ok {
				t.Fatal("expected ok=true, got ok=false")
			}
			w, _ := strconv.ParseFloat(tc.weightKg, 64)
			h, _ := strconv.ParseFloat(tc.heightCm, 64)
			ref := w / ((h / 100) * (h / 100))
			if math.Abs(bmi-ref) >= 0.05 {
				t.Errorf("bmi = %v, want within 0.05 of %v", bmi, ref)
			}
		})
	}
}

// TestComputeMetrics_UnknownSexTakesFemaleBranch verifies the formula's
// binary branch: any sex value other than MALE gets the -161 constant.
func TestComputeMetrics_UnknownSexTakesFemaleBranch(t *testing.T) {
	_, wantBMR, wantTDEE, ok := computeMetrics(makeProfile("70", "175", "25", "FEMALE", "1.55"))
	if !ok {
		t.Fatal("expected ok=true for female profile")
	}
	_, gotBMR, gotTDEE, ok := computeMetrics(makeProfile("70", "175", "25", "NONBINARY", "1.55"))
	if !ok {
		t.Fatal("expected ok=true for unknown sex")
	}
	if gotBMR != wantBMR || gotTDEE != wantTDEE {
		t.Errorf("unknown sex: bmr/tdee = %d/%d, want female branch %d/%d", gotBMR, gotTDEE, wantBMR, wantTDEE)
	}
}

/* ─── Parse guard tests ──────────────────────────────────────────────── */

// TestComputeMetrics_ParseFailures verifies that ok=false is returned when
// any bio field fails to parse or is non-positive. The app persists raw input
// strings, so mid-edit garbage is a normal state.
func TestComputeMetrics_ParseFailures(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(s *profileSettings)
	}{
		{"empty weight", func(s *profileSettings) { s.WeightKg = "" }},
		{"non-numeric weight", func(s *profileSettings) { s.WeightKg = "heavy" }},
		{"empty height", func(s *profileSettings) { s.HeightCm = "" }},
		{"comma decimal height", func(s *profileSettings) { s.HeightCm = "175,5" }},
		{"empty age", func(s *profileSettings) { s.AgeYears = "" }},
		{"zero age", func(s *profileSettings) { s.AgeYears = "0" }},
		{"negative weight", func(s *profileSettings) { s.WeightKg = "-70" }},
		{"empty activity factor", func(s *profileSettings) { s.ActivityFactor = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := makeProfile("70", "175", "25", "MALE", "1.55")
			tc.mutFn(s)
			_, _, _, ok := computeMetrics(s)
			if ok {
				t.Errorf("expected ok=false for %s, got ok=true", tc.name)
			}
		})
	}
}

// TestComputeMetrics_DecimalStrings verifies that decimal input strings parse —
// the fields are numeric strings, not integers.
func TestComputeMetrics_DecimalStrings(t *testing.T) {
	_, _, _, ok := computeMetrics(makeProfile("70.5", "175.5", "25", "MALE", "1.9"))
	if !ok {
		t.Error("expected ok=true for decimal inputs, got ok=false")
	}
}

/* ─── Classification tests ───────────────────────────────────────────── */

// TestClassifyBMI verifies the display bands, including the exact boundaries:
// 18.5 is already HEALTHY, 25 is already OVERWEIGHT.
func TestClassifyBMI(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{16.0, "UNDERWEIGHT"},
		{18.4, "UNDERWEIGHT"},
		{18.5, "HEALTHY"},
		{22.9, "HEALTHY"},
		{24.9, "HEALTHY"},
		{25.0, "OVERWEIGHT"},
		{31.2, "OVERWEIGHT"},
	}
	for _, tc := range cases {
		if got := classifyBMI(tc.bmi); got != tc.want {
			t.Errorf("classifyBMI(%v) = %s, want %s", tc.bmi, got, tc.want)
		}
	}
}

/* ─── Stale-value retention ──────────────────────────────────────────── */

// TestPopulateComputedMetrics_SkipRetainsPrevious verifies that a parse
// failure leaves previously populated computed fields untouched instead of
// resetting them — the UI must not flash to zero on a transient bad edit.
func TestPopulateComputedMetrics_SkipRetainsPrevious(t *testing.T) {
	s := makeProfile("70", "175", "25", "MALE", "1.55")
	populateComputedMetrics(s)
	if s.TDEE == nil || *s.TDEE != 2595 {
		t.Fatalf("expected TDEE 2595 after first compute, got %v", s.TDEE)
	}

	s.AgeYears = ""
	populateComputedMetrics(s)

	if s.BMI == nil || *s.BMI != 22.9 {
		t.Errorf("BMI reset on parse failure, got %v", s.BMI)
	}
	if s.BMR == nil || *s.BMR != 1674 {
		t.Errorf("BMR reset on parse failure, got %v", s.BMR)
	}
	if s.TDEE == nil || *s.TDEE != 2595 {
		t.Errorf("TDEE reset on parse failure, got %v", s.TDEE)
	}
}
