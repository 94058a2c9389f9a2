package predict

import (
	"math"
	"testing"
)

func testArtifact() *Artifact {
	return &Artifact{
		FeatureNames: append([]string(nil), FeatureNames...),
		Coefficients: []float64{0.4, 1.1, -0.25, 0.01, -0.14, 0.7, 0.31, 0.17},
		Intercept:    -0.85,
		Scaler: &Scaler{
			Mean:  []float64{3.8, 120.9, 69.1, 20.5, 79.8, 32.0, 0.47, 33.2},
			Scale: []float64{3.4, 32.0, 19.3, 15.9, 115.2, 7.9, 0.33, 11.8},
		},
	}
}

func highRiskFeatures() Features {
	return Features{
		Pregnancies:              8,
		Glucose:                  196,
		BloodPressure:            76,
		SkinThickness:            36,
		Insulin:                  249,
		BMI:                      38.9,
		DiabetesPedigreeFunction: 0.605,
		Age:                      57,
	}
}

func lowRiskFeatures() Features {
	return Features{
		Pregnancies:              1,
		Glucose:                  85,
		BloodPressure:            66,
		SkinThickness:            29,
		Insulin:                  0,
		BMI:                      26.6,
		DiabetesPedigreeFunction: 0.351,
		Age:                      31,
	}
}

func TestPredict_Deterministic(t *testing.T) {
	p := NewPredictor(testArtifact())
	f := highRiskFeatures()

	first := p.Predict(f)
	for i := 0; i < 5; i++ {
		again := p.Predict(f)
		if again != first {
			t.Fatalf("prediction changed between calls: %+v vs %+v", again, first)
		}
	}
}

func TestPredict_ProbabilityInRange(t *testing.T) {
	p := NewPredictor(testArtifact())
	for _, f := range []Features{highRiskFeatures(), lowRiskFeatures(), {}} {
		out := p.Predict(f)
		if out.Probability < 0 || out.Probability > 1 {
			t.Fatalf("probability %v out of [0,1] for %+v", out.Probability, f)
		}
	}
}

func TestPredict_LabelMatchesThreshold(t *testing.T) {
	p := NewPredictor(testArtifact())
	for _, f := range []Features{highRiskFeatures(), lowRiskFeatures()} {
		out := p.Predict(f)
		if out.Diabetic != (out.Probability > Threshold) {
			t.Fatalf("label %v disagrees with probability %v", out.Diabetic, out.Probability)
		}
	}
	high := p.Predict(highRiskFeatures())
	if !high.Diabetic || high.Label() != "diabetic" {
		t.Fatalf("expected high-risk vector to classify diabetic, got %+v", high)
	}
	low := p.Predict(lowRiskFeatures())
	if low.Diabetic || low.Label() != "not-diabetic" {
		t.Fatalf("expected low-risk vector to classify not-diabetic, got %+v", low)
	}
}

func TestPredict_ScalerShiftsDecision(t *testing.T) {
	scaled := testArtifact()
	bare := testArtifact()
	bare.Scaler = nil

	f := highRiskFeatures()
	withScaler := NewPredictor(scaled).Predict(f)
	withoutScaler := NewPredictor(bare).Predict(f)
	if math.Abs(withScaler.Probability-withoutScaler.Probability) < 1e-9 {
		t.Fatalf("scaler had no effect: %v vs %v", withScaler.Probability, withoutScaler.Probability)
	}
}

func TestPredict_ZeroWeightsSitOnThreshold(t *testing.T) {
	art := testArtifact()
	art.Coefficients = make([]float64, len(FeatureNames))
	art.Intercept = 0
	art.Scaler = nil

	out := NewPredictor(art).Predict(highRiskFeatures())
	if math.Abs(out.Probability-0.5) > 1e-12 {
		t.Fatalf("expected probability 0.5, got %v", out.Probability)
	}
	if out.Diabetic {
		t.Fatalf("probability exactly at threshold must not classify diabetic")
	}
}

func TestParseFeatures_ReadsAllEightFields(t *testing.T) {
	form := map[string]string{
		"Pregnancies":              "2",
		"Glucose":                  "120",
		"BloodPressure":            "70",
		"SkinThickness":            "20",
		"Insulin":                  "80",
		"BMI":                      "31.5",
		"DiabetesPedigreeFunction": "0.47",
		"Age":                      "33",
	}
	f, err := ParseFeatures(func(name string) string { return form[name] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Glucose != 120 || f.BMI != 31.5 || f.Age != 33 {
		t.Fatalf("unexpected parse result: %+v", f)
	}
}

func TestParseFeatures_RejectsMissingField(t *testing.T) {
	form := map[string]string{"Pregnancies": "2"}
	_, err := ParseFeatures(func(name string) string { return form[name] })
	if err == nil {
		t.Fatalf("expected error for missing fields")
	}
}

func TestParseFeatures_RejectsNonFiniteValues(t *testing.T) {
	for _, bad := range []string{"NaN", "Inf", "-Inf", "+Inf", "nan", "inf"} {
		form := map[string]string{
			"Pregnancies":              "2",
			"Glucose":                  bad,
			"BloodPressure":            "70",
			"SkinThickness":            "20",
			"Insulin":                  "80",
			"BMI":                      "31.5",
			"DiabetesPedigreeFunction": "0.47",
			"Age":                      "33",
		}
		_, err := ParseFeatures(func(name string) string { return form[name] })
		if err == nil {
			t.Fatalf("expected error for glucose %q", bad)
		}
	}
}

func TestParseFeatures_RejectsNonNumericField(t *testing.T) {
	form := map[string]string{
		"Pregnancies":              "2",
		"Glucose":                  "not-a-number",
		"BloodPressure":            "70",
		"SkinThickness":            "20",
		"Insulin":                  "80",
		"BMI":                      "31.5",
		"DiabetesPedigreeFunction": "0.47",
		"Age":                      "33",
	}
	_, err := ParseFeatures(func(name string) string { return form[name] })
	if err == nil {
		t.Fatalf("expected error for non-numeric glucose")
	}
}
