package pricing

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// PriceModel is a fitted linear regression over basket features. It is
// immutable once trained and safe to share across goroutines.
type PriceModel struct {
	Weights   []float64 `json:"weights"`
	TrainedAt time.Time `json:"trained_at"`
}

// TrainModel synthesizes the training corpus and fits an ordinary
// least-squares regression on an 80/20 split. The held-out rows mirror
// the reference training procedure; they do not affect the fit.
func TrainModel() (*PriceModel, error) {
	samples := generateTrainingData()

	perm := rand.New(rand.NewSource(trainingSeed)).Perm(len(samples))
	nTrain := int(float64(len(samples)) * trainSplit)

	x := mat.NewDense(nTrain, numFeatures, nil)
	y := mat.NewVecDense(nTrain, nil)
	for i := 0; i < nTrain; i++ {
		s := samples[perm[i]]
		x.SetRow(i, s.features())
		y.SetVec(i, s.price)
	}

	var qr mat.QR
	qr.Factorize(x)
	beta := mat.NewVecDense(numFeatures, nil)
	if err := qr.SolveVecTo(beta, false, y); err != nil {
		return nil, fmt.Errorf("fit price model: %w", err)
	}

	weights := make([]float64, numFeatures)
	copy(weights, beta.RawVector().Data)

	return &PriceModel{
		Weights:   weights,
		TrainedAt: time.Now().UTC(),
	}, nil
}

// Predict returns the raw (unclamped) price for a feature vector.
func (m *PriceModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("predict: expected %d features, got %d", len(m.Weights), len(features))
	}
	var price float64
	for i, w := range m.Weights {
		price += w * features[i]
	}
	return price, nil
}
