package searcher

import (
	"time"
)

type SearchMetrics struct {
	Duration    time.Duration
	Nodes       int64 // Positions entered, including the root
	Evaluations int64 // Heuristic evaluations at depth 0
	Terminals   int64 // Positions without legal moves
	Cutoffs     int64 // Alpha-beta prunes
	Depth       int   // Deepest completed search, -1 if none completed
	TimedOut    bool
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddEvaluation()
	AddTerminal()
	AddCutoff()
	CompleteDepth(depth int)
	TimedOut()
	Complete() SearchMetrics
}

// Searches are single threaded so the collector needs no synchronization
type metricsCollector struct {
	startTime   time.Time
	nodes       int64
	evaluations int64
	terminals   int64
	cutoffs     int64
	depth       int
	timedOut    bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{depth: -1}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes, m.evaluations, m.terminals, m.cutoffs = 0, 0, 0, 0
	m.depth = -1
	m.timedOut = false
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations++
}

func (m *metricsCollector) AddTerminal() {
	m.terminals++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) CompleteDepth(depth int) {
	if depth > m.depth {
		m.depth = depth
	}
}

func (m *metricsCollector) TimedOut() {
	m.timedOut = true
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes,
		Evaluations: m.evaluations,
		Terminals:   m.terminals,
		Cutoffs:     m.cutoffs,
		Depth:       m.depth,
		TimedOut:    m.timedOut,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddEvaluation()          {}
func (m *noMetricsCollector) AddTerminal()            {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) CompleteDepth(depth int) {}
func (m *noMetricsCollector) TimedOut()               {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{Depth: -1} }
