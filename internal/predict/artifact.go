package predict

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler holds the per-feature standardization fitted at training time.
// Inputs are transformed as (x - mean) / scale before classification.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Artifact is the serialized form of a trained logistic-regression
// classifier, optionally paired with its fitted scaler. It is loaded once
// at startup and treated as immutable for the process lifetime.
type Artifact struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Scaler       *Scaler   `json:"scaler,omitempty"`
}

func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &art, nil
}

// validate pins the artifact to the contract feature order. A reordered
// artifact would still produce plausible-looking probabilities, so it has
// to be rejected here rather than discovered in output.
func (a *Artifact) validate() error {
	if len(a.FeatureNames) != len(FeatureNames) {
		return fmt.Errorf("expected %d features, artifact has %d", len(FeatureNames), len(a.FeatureNames))
	}
	for i, name := range FeatureNames {
		if a.FeatureNames[i] != name {
			return fmt.Errorf("feature %d is %q, expected %q", i, a.FeatureNames[i], name)
		}
	}
	if len(a.Coefficients) != len(FeatureNames) {
		return fmt.Errorf("expected %d coefficients, artifact has %d", len(FeatureNames), len(a.Coefficients))
	}
	if a.Scaler != nil {
		if len(a.Scaler.Mean) != len(FeatureNames) {
			return fmt.Errorf("scaler mean has %d entries, expected %d", len(a.Scaler.Mean), len(FeatureNames))
		}
		if len(a.Scaler.Scale) != len(FeatureNames) {
			return fmt.Errorf("scaler scale has %d entries, expected %d", len(a.Scaler.Scale), len(FeatureNames))
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return fmt.Errorf("scaler scale for %q is zero", FeatureNames[i])
			}
		}
	}
	return nil
}
