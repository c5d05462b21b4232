package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingMetrics captures observations so tests can assert on them.
type recordingMetrics struct {
	mu        sync.Mutex
	filters   []int
	mutations map[string][]error
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{mutations: make(map[string][]error)}
}

func (m *recordingMetrics) ObserveFilter(_ time.Duration, results int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filters = append(m.filters, results)
}

func (m *recordingMetrics) ObserveMutation(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations[operation] = append(m.mutations[operation], err)
}

func (m *recordingMetrics) mutationErrors(operation string) []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mutations[operation]
}
