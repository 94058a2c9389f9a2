package predict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadArtifact_AcceptsValidScaledModel(t *testing.T) {
	path := writeArtifact(t, `{
		"feature_names": ["Pregnancies","Glucose","BloodPressure","SkinThickness","Insulin","BMI","DiabetesPedigreeFunction","Age"],
		"coefficients": [0.4, 1.1, -0.25, 0.01, -0.14, 0.7, 0.31, 0.17],
		"intercept": -0.85,
		"scaler": {
			"mean": [3.8, 120.9, 69.1, 20.5, 79.8, 32.0, 0.47, 33.2],
			"scale": [3.4, 32.0, 19.3, 15.9, 115.2, 7.9, 0.33, 11.8]
		}
	}`)

	art, err := LoadArtifact(path)
	require.NoError(t, err)
	require.NotNil(t, art.Scaler)
	require.Len(t, art.Coefficients, 8)
}

func TestLoadArtifact_AcceptsBareModelWithoutScaler(t *testing.T) {
	path := writeArtifact(t, `{
		"feature_names": ["Pregnancies","Glucose","BloodPressure","SkinThickness","Insulin","BMI","DiabetesPedigreeFunction","Age"],
		"coefficients": [0.12, 0.035, -0.013, 0.0006, -0.0012, 0.09, 0.95, 0.015],
		"intercept": -8.4
	}`)

	art, err := LoadArtifact(path)
	require.NoError(t, err)
	require.Nil(t, art.Scaler)
}

func TestLoadArtifact_RejectsReorderedFeatures(t *testing.T) {
	path := writeArtifact(t, `{
		"feature_names": ["Glucose","Pregnancies","BloodPressure","SkinThickness","Insulin","BMI","DiabetesPedigreeFunction","Age"],
		"coefficients": [0.4, 1.1, -0.25, 0.01, -0.14, 0.7, 0.31, 0.17],
		"intercept": -0.85
	}`)

	_, err := LoadArtifact(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pregnancies")
}

func TestLoadArtifact_RejectsCoefficientCountMismatch(t *testing.T) {
	path := writeArtifact(t, `{
		"feature_names": ["Pregnancies","Glucose","BloodPressure","SkinThickness","Insulin","BMI","DiabetesPedigreeFunction","Age"],
		"coefficients": [0.4, 1.1],
		"intercept": -0.85
	}`)

	_, err := LoadArtifact(path)
	require.Error(t, err)
}

func TestLoadArtifact_RejectsZeroScale(t *testing.T) {
	path := writeArtifact(t, `{
		"feature_names": ["Pregnancies","Glucose","BloodPressure","SkinThickness","Insulin","BMI","DiabetesPedigreeFunction","Age"],
		"coefficients": [0.4, 1.1, -0.25, 0.01, -0.14, 0.7, 0.31, 0.17],
		"intercept": -0.85,
		"scaler": {
			"mean": [0,0,0,0,0,0,0,0],
			"scale": [1,1,1,0,1,1,1,1]
		}
	}`)

	_, err := LoadArtifact(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "SkinThickness")
}

func TestLoadArtifact_RejectsMissingFile(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
