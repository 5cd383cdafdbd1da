package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/beldyconnect/backend/internal/logger"
	"github.com/beldyconnect/backend/internal/pricing"
)

// Trains the basket price model and writes the artifact to disk. The
// API server trains on first start when no artifact exists; this
// command is for rebuilding it explicitly.
func main() {
	output := flag.String("o", pricing.DefaultArtifactName, "output path for the model artifact")
	flag.Parse()

	log := logger.New()

	model, err := pricing.TrainModel()
	if err != nil {
		log.WithError(err).Fatal("training failed")
	}

	store := pricing.NewFileStore(*output)
	if err := store.Save(model); err != nil {
		log.WithError(err).Fatal("failed to save model artifact")
	}

	log.WithFields(logrus.Fields{
		"artifact": *output,
		"weights":  len(model.Weights),
	}).Info("model trained and saved")
}
