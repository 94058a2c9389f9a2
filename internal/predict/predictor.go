package predict

import "math"

// Threshold above which the positive class is reported. Matches the
// decision rule encoded in the trained artifact (argmax over two classes).
const Threshold = 0.5

type Outcome struct {
	Diabetic    bool
	Probability float64
}

func (o Outcome) Label() string {
	if o.Diabetic {
		return "diabetic"
	}
	return "not-diabetic"
}

// Predictor evaluates a loaded artifact. It holds no mutable state and is
// safe for concurrent use by all request handlers.
type Predictor struct {
	art *Artifact
}

func NewPredictor(art *Artifact) *Predictor {
	return &Predictor{art: art}
}

// Scaled reports whether inputs are standardized before classification.
func (p *Predictor) Scaled() bool {
	return p.art.Scaler != nil
}

func (p *Predictor) Predict(f Features) Outcome {
	x := f.Vector()
	if p.art.Scaler != nil {
		for i := range x {
			x[i] = (x[i] - p.art.Scaler.Mean[i]) / p.art.Scaler.Scale[i]
		}
	}
	z := p.art.Intercept
	for i, w := range p.art.Coefficients {
		z += w * x[i]
	}
	prob := sigmoid(z)
	return Outcome{
		Diabetic:    prob > Threshold,
		Probability: prob,
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
