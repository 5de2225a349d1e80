package observability

import (
	"strconv"
	"sync"
	"time"
)

type metricKey struct {
	Path   string
	Method string
	Label  string
}

// Metrics keeps in-process request and error counters keyed by route,
// method and status/error code.
type Metrics struct {
	mu       sync.Mutex
	requests map[metricKey]int64
	errors   map[metricKey]int64
}

// NewMetrics initializes empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[metricKey]int64),
		errors:   make(map[metricKey]int64),
	}
}

// RecordRequest counts one handled request.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[metricKey{Path: path, Method: method, Label: strconv.Itoa(status)}]++
}

// RecordError counts one failed request by error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[metricKey{Path: path, Method: method, Label: code}]++
}
