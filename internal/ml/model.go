package ml

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthStatus reports whether the model is safe to invoke.
type HealthStatus struct {
	ServiceStatus      string    `json:"service_status"`
	ModelLoaded        bool      `json:"model_loaded"`
	ModelPathExists    bool      `json:"model_path_exists"`
	ModelInfoAvailable bool      `json:"model_info_available"`
	Timestamp          time.Time `json:"timestamp"`
}

// Model owns the loaded classifier and its metadata. It is constructed
// once at startup and its state only changes through explicit Load or
// Reload calls; classification is a concurrent read.
type Model struct {
	modelPath string
	infoPath  string
	logger    *zap.Logger

	mu        sync.RWMutex
	clf       Classifier
	meta      Metadata
	metaFound bool
	loaded    bool
}

// NewModel creates an unloaded model handle. Call Load before serving.
func NewModel(modelPath, infoPath string, logger *zap.Logger) *Model {
	return &Model{
		modelPath: modelPath,
		infoPath:  infoPath,
		logger:    logger,
		meta:      DefaultMetadata(),
	}
}

// Load reads the classifier artifact and its metadata. On failure the
// model stays (or becomes) unready until a subsequent successful Load.
func (m *Model) Load() error {
	clf, err := LoadClassifier(m.modelPath)
	if err != nil {
		m.mu.Lock()
		m.clf = nil
		m.loaded = false
		m.meta = DefaultMetadata()
		m.metaFound = false
		m.mu.Unlock()

		m.logger.Error("Failed to load model", zap.String("path", m.modelPath), zap.Error(err))
		return err
	}

	meta, found, err := LoadMetadata(m.infoPath)
	if err != nil {
		// Metadata problems never block serving; placeholders apply.
		m.logger.Warn("Failed to load model metadata", zap.String("path", m.infoPath), zap.Error(err))
		meta = DefaultMetadata()
		found = false
	} else if !found {
		m.logger.Warn("Model metadata file not found", zap.String("path", m.infoPath))
	}

	m.mu.Lock()
	m.clf = clf
	m.meta = meta
	m.metaFound = found
	m.loaded = true
	m.mu.Unlock()

	m.logger.Info("Model loaded successfully",
		zap.String("path", m.modelPath),
		zap.String("name", meta.Name))
	return nil
}

// Reload discards the current classifier state and loads it again from
// disk. Reloading is always an explicit operation.
func (m *Model) Reload() error {
	return m.Load()
}

// Ready reports whether the classifier is loaded and safe to invoke.
func (m *Model) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded && m.clf != nil
}

// Metadata returns the loaded model's metadata, or placeholder values
// when no metadata file was present.
func (m *Model) Metadata() Metadata {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta
}

// Classify runs the loaded classifier on already-normalized text.
func (m *Model) Classify(text string) (float64, float64, error) {
	m.mu.RLock()
	clf := m.clf
	loaded := m.loaded
	m.mu.RUnlock()

	if !loaded || clf == nil {
		return 0, 0, ErrModelUnavailable
	}
	return clf.Classify(text)
}

// Health summarizes the current state of the model handle.
func (m *Model) Health() HealthStatus {
	m.mu.RLock()
	loaded := m.loaded
	metaFound := m.metaFound
	m.mu.RUnlock()

	status := "unhealthy"
	if loaded {
		status = "healthy"
	}

	_, err := os.Stat(m.modelPath)
	return HealthStatus{
		ServiceStatus:      status,
		ModelLoaded:        loaded,
		ModelPathExists:    err == nil,
		ModelInfoAvailable: metaFound,
		Timestamp:          time.Now(),
	}
}
