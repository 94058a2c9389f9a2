package predict

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FeatureNames is the pinned input order for the classifier. The form
// field names on the screening route, the artifact's feature list and the
// coefficient vector all follow this exact order; validation at load time
// refuses any artifact that disagrees.
var FeatureNames = []string{
	"Pregnancies",
	"Glucose",
	"BloodPressure",
	"SkinThickness",
	"Insulin",
	"BMI",
	"DiabetesPedigreeFunction",
	"Age",
}

type Features struct {
	Pregnancies              float64
	Glucose                  float64
	BloodPressure            float64
	SkinThickness            float64
	Insulin                  float64
	BMI                      float64
	DiabetesPedigreeFunction float64
	Age                      float64
}

// Vector returns the features in FeatureNames order.
func (f Features) Vector() []float64 {
	return []float64{
		f.Pregnancies,
		f.Glucose,
		f.BloodPressure,
		f.SkinThickness,
		f.Insulin,
		f.BMI,
		f.DiabetesPedigreeFunction,
		f.Age,
	}
}

// ParseFeatures reads the eight named values through get, typically backed
// by an HTML form. A missing or non-numeric value is reported with the
// offending field name so the caller can answer with a client error.
func ParseFeatures(get func(name string) string) (Features, error) {
	vals := make([]float64, len(FeatureNames))
	for i, name := range FeatureNames {
		raw := strings.TrimSpace(get(name))
		if raw == "" {
			return Features{}, fmt.Errorf("missing value for %q", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Features{}, fmt.Errorf("invalid numeric value for %q: %q", name, raw)
		}
		// ParseFloat accepts NaN and the infinities, which would poison
		// the probability and the stored record. Finite values only.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Features{}, fmt.Errorf("non-finite value for %q: %q", name, raw)
		}
		vals[i] = v
	}
	return Features{
		Pregnancies:              vals[0],
		Glucose:                  vals[1],
		BloodPressure:            vals[2],
		SkinThickness:            vals[3],
		Insulin:                  vals[4],
		BMI:                      vals[5],
		DiabetesPedigreeFunction: vals[6],
		Age:                      vals[7],
	}, nil
}
