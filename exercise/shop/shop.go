// Package shop simulates hourly customer arrivals at a shop and the items each
// customer buys.
package shop

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sample"
	"github.com/tifye/simlab/sim"
)

const Name = "shop"

const (
	arrivalsStream = iota
	itemsStream
)

const (
	minCustomers = 0
	maxCustomers = 4
)

var streams = []prng.StreamSpec{
	{Name: "arrivals", Base: 0x1f2e3d4c, Mix: prng.MixXor},
	{Name: "items", Base: 0xa5a5a5a5, Mix: prng.MixAddShifted},
}

type Params struct {
	Hours     int     `json:"hours"`
	UnitCost  float64 `json:"unitCost"`
	UnitPrice float64 `json:"unitPrice"`
	FixedCost float64 `json:"fixedCost"`
}

func DefaultParams() Params {
	return Params{Hours: 10, UnitCost: 50, UnitPrice: 75, FixedCost: 300}
}

func (p Params) Validate() error {
	return sim.First(
		sim.Horizon("hours", p.Hours),
		sim.NonNegative("unitCost", p.UnitCost),
		sim.NonNegative("unitPrice", p.UnitPrice),
		sim.NonNegative("fixedCost", p.FixedCost),
	)
}

type State struct {
	Customers int
	Items     int
	Revenue   float64
	Cost      float64
}

type Row struct {
	Hour      int     `json:"hour"`
	Customers int     `json:"customers"`
	Items     int     `json:"items"`
	Revenue   float64 `json:"revenue"`
	Cost      float64 `json:"cost"`
	Profit    float64 `json:"profit"`
}

func (Row) Header() []string {
	return []string{"hour", "customers", "items", "revenue", "cost", "profit"}
}

func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.Hour),
		strconv.Itoa(r.Customers),
		strconv.Itoa(r.Items),
		strconv.FormatFloat(r.Revenue, 'g', -1, 64),
		strconv.FormatFloat(r.Cost, 'g', -1, 64),
		strconv.FormatFloat(r.Profit, 'g', -1, 64),
	}
}

type Summary struct {
	Hours       int     `json:"hours"`
	Customers   int     `json:"customers"`
	Items       int     `json:"items"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
}

func (s Summary) Metrics() []sim.Metric {
	return []sim.Metric{
		{Name: "customers", Value: float64(s.Customers)},
		{Name: "items", Value: float64(s.Items)},
		{Name: "grossProfit", Value: s.GrossProfit},
		{Name: "netProfit", Value: s.NetProfit},
	}
}

type Model struct {
	params Params
}

func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{params: p}, nil
}

func (m *Model) Name() string               { return Name }
func (m *Model) Streams() []prng.StreamSpec { return streams }
func (m *Model) Horizon() int               { return m.params.Hours }
func (m *Model) Init() State                { return State{} }

// Step draws the hour's customer count, then one item count per customer.
func (m *Model) Step(hour int, s State, st sim.Streams) (State, Row) {
	customers := sample.UniformIntFrom(st[arrivalsStream], minCustomers, maxCustomers)
	items := 0
	for range customers {
		items += sample.ItemCountFrom(st[itemsStream])
	}

	revenue := float64(items) * m.params.UnitPrice
	cost := float64(items) * m.params.UnitCost

	s.Customers += customers
	s.Items += items
	s.Revenue += revenue
	s.Cost += cost

	return s, Row{
		Hour:      hour,
		Customers: customers,
		Items:     items,
		Revenue:   revenue,
		Cost:      cost,
		Profit:    revenue - cost,
	}
}

func (m *Model) Summarize(s State, _ []Row) Summary {
	gross := s.Revenue - s.Cost
	return Summary{
		Hours:       m.params.Hours,
		Customers:   s.Customers,
		Items:       s.Items,
		Revenue:     s.Revenue,
		Cost:        s.Cost,
		GrossProfit: gross,
		NetProfit:   gross - m.params.FixedCost,
	}
}

type Batch = sim.Batch[Row, Summary]

func Run(logger *log.Logger, p Params, epoch uint32, runs int) (Batch, error) {
	m, err := New(p)
	if err != nil {
		return Batch{}, err
	}
	return sim.RunBatch[State, Row, Summary](logger, m, epoch, runs)
}
