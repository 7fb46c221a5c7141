package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Model    Model
	Depth    int
	Duration time.Duration
	Nodes    int // Expanded interior nodes
	Leaves   int // Evaluated cutoff nodes
	Prunes   int // Alpha-beta cutoffs
}

type Collector interface {
	Start(depth int, model Model)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	model     Model
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, model Model) {
	m.startTime = time.Now()
	m.depth = depth
	m.model = model
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Model:    m.model,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Prunes:   int(m.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, model Model) {}
func (m *dummyCollector) AddNode()                     {}
func (m *dummyCollector) AddLeaf()                     {}
func (m *dummyCollector) AddPrune()                    {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
