package pricing

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// trainingSeed fixes the pseudo-random stream so independently
	// built models are reproducible.
	trainingSeed = 42

	trainingSamples = 1000
	trainSplit      = 0.8
)

// trainingSample is one synthetic observation of a basket purchase.
type trainingSample struct {
	diet       DietType
	fats       float64
	carbs      float64
	proteins   float64
	fiber      float64
	itemCount  float64
	hasProtein float64
	budget     float64
	price      float64
}

func (s trainingSample) features() []float64 {
	return featuresFromValues(s.diet, s.fats, s.carbs, s.proteins, s.fiber, s.itemCount, s.hasProtein, s.budget)
}

// sampledDiets fixes the draw order and probabilities for diet types.
var sampledDiets = [...]DietType{DietBalanced, DietVegetarian, DietVegan, DietKeto}

// generateTrainingData synthesizes the training corpus. There is no
// real purchase history behind the model; prices are derived from the
// sampled fields by a fixed formula plus noise.
func generateTrainingData() []trainingSample {
	src := rand.NewSource(trainingSeed)

	dietDist := distuv.NewCategorical([]float64{0.4, 0.3, 0.2, 0.1}, src)
	fatsDist := distuv.Normal{Mu: 70, Sigma: 15, Src: src}
	carbsDist := distuv.Normal{Mu: 1500, Sigma: 300, Src: src}
	proteinsDist := distuv.Normal{Mu: 450, Sigma: 100, Src: src}
	fiberDist := distuv.Normal{Mu: 150, Sigma: 30, Src: src}
	itemCountDist := distuv.Poisson{Lambda: 5, Src: src}
	hasProteinDist := distuv.Bernoulli{P: 0.7, Src: src}
	budgetDist := distuv.Uniform{Min: 150, Max: 350, Src: src}

	ketoBase := distuv.Normal{Mu: 200, Sigma: 30, Src: src}
	veganBase := distuv.Normal{Mu: 180, Sigma: 25, Src: src}
	defaultBase := distuv.Normal{Mu: 160, Sigma: 20, Src: src}
	proteinBonus := distuv.Normal{Mu: 30, Sigma: 5, Src: src}

	samples := make([]trainingSample, trainingSamples)
	for i := range samples {
		s := trainingSample{
			diet:       sampledDiets[int(dietDist.Rand())],
			fats:       clamp(fatsDist.Rand(), 40, 100),
			carbs:      clamp(carbsDist.Rand(), 800, 2200),
			proteins:   clamp(proteinsDist.Rand(), 200, 700),
			fiber:      clamp(fiberDist.Rand(), 80, 220),
			itemCount:  clamp(itemCountDist.Rand(), 3, 8),
			hasProtein: hasProteinDist.Rand(),
			budget:     budgetDist.Rand(),
		}

		var base float64
		switch s.diet {
		case DietKeto:
			base = ketoBase.Rand()
		case DietVegan:
			base = veganBase.Rand()
		default:
			base = defaultBase.Rand()
		}

		base += s.proteins*0.1 + s.fats*0.05 - s.carbs*0.02 + s.itemCount*10
		if s.hasProtein == 1 {
			base += proteinBonus.Rand()
		}
		base += s.budget * 0.2

		s.price = base
		samples[i] = s
	}
	return samples
}
