package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metrics holds the validation metrics recorded by the training pipeline.
type Metrics struct {
	Accuracy float64 `json:"accuracy"`
	F1       float64 `json:"f1"`
	AUC      float64 `json:"auc"`
}

// Metadata describes the loaded model. The JSON keys match the artifact
// written by the training pipeline.
type Metadata struct {
	Name         string  `json:"nombre"`
	TrainingDate string  `json:"fecha_entrenamiento"`
	Metrics      Metrics `json:"metricas_validacion"`
}

// DefaultMetadata is used when no metadata file accompanies the model,
// so callers never have to null-check model information.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:         "Modelo de Detección de Noticias Falsas",
		TrainingDate: "Desconocida",
	}
}

// LoadMetadata reads model metadata from path. An absent file is not an
// error: well-defined placeholder metadata is returned instead.
func LoadMetadata(path string) (Metadata, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMetadata(), false, nil
		}
		return DefaultMetadata(), false, fmt.Errorf("failed to read model metadata: %w", err)
	}

	meta := DefaultMetadata()
	if err := json.Unmarshal(data, &meta); err != nil {
		return DefaultMetadata(), false, fmt.Errorf("failed to decode model metadata: %w", err)
	}

	return meta, true, nil
}
