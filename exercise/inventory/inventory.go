// Package inventory simulates a sugar warehouse under periodic review.
//
// Daily demand is exponential. Every ReviewPeriod days, if no order is
// outstanding, the warehouse orders up to capacity and the order arrives
// after a lead time drawn from U{1,2,3}. Unmet demand is lost.
//
// Each day runs in this order:
//
//  1. demand is drawn and served from stock
//  2. an outstanding order counts down and is received when it reaches zero;
//     stock above capacity is discarded
//  3. on review days a new order may be placed
//  4. holding cost accrues on the average of opening and closing stock
package inventory

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sample"
	"github.com/tifye/simlab/sim"
)

const Name = "inventory"

const (
	demandStream = iota
	leadTimeStream
)

const (
	minLeadTime = 1
	maxLeadTime = 3
)

var streams = []prng.StreamSpec{
	{Name: "demand", Base: 0x1234abcd, Mix: prng.MixXor},
	{Name: "leadtime", Base: 0x9badf00d, Mix: prng.MixAddShifted},
}

type Params struct {
	DemandMean      float64 `json:"demandMean"`
	Capacity        float64 `json:"capacity"`
	OrderCost       float64 `json:"orderCost"`
	HoldingCost     float64 `json:"holdingCost"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	Price           float64 `json:"price"`
	ReviewPeriod    int     `json:"reviewPeriod"`
	Days            int     `json:"days"`
}

func DefaultParams() Params {
	return Params{
		DemandMean:      100,
		Capacity:        700,
		OrderCost:       100,
		HoldingCost:     0.1,
		AcquisitionCost: 3.5,
		Price:           5,
		ReviewPeriod:    7,
		Days:            27,
	}
}

func (p Params) Validate() error {
	return sim.First(
		sim.Positive("demandMean", p.DemandMean),
		sim.NonNegative("capacity", p.Capacity),
		sim.NonNegative("orderCost", p.OrderCost),
		sim.NonNegative("holdingCost", p.HoldingCost),
		sim.NonNegative("acquisitionCost", p.AcquisitionCost),
		sim.NonNegative("price", p.Price),
		sim.Positive("reviewPeriod", float64(p.ReviewPeriod)),
		sim.Horizon("days", p.Days),
	)
}

type State struct {
	Level        float64
	Pending      bool
	OrderQty     float64
	LeadTimeLeft int

	Demand  float64
	Unmet   float64
	Revenue float64
	Cost    float64
	Orders  int
}

type Row struct {
	Day             int     `json:"day"`
	Opening         float64 `json:"opening"`
	Demand          float64 `json:"demand"`
	Sold            float64 `json:"sold"`
	Unmet           float64 `json:"unmet"`
	Closing         float64 `json:"closing"`
	Ordered         float64 `json:"ordered"`
	Received        float64 `json:"received"`
	LeadTimeLeft    int     `json:"leadTimeLeft"`
	HoldingCost     float64 `json:"holdingCost"`
	OrderCost       float64 `json:"orderCost"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	Revenue         float64 `json:"revenue"`
	TotalCost       float64 `json:"totalCost"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalGain       float64 `json:"totalGain"`
}

func (Row) Header() []string {
	return []string{
		"day", "opening", "demand", "sold", "unmet", "closing", "ordered", "received",
		"lead_time_left", "holding_cost", "order_cost", "acquisition_cost", "revenue",
		"total_cost", "total_revenue", "total_gain",
	}
}

func (r Row) Record() []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return []string{
		strconv.Itoa(r.Day), f(r.Opening), f(r.Demand), f(r.Sold), f(r.Unmet), f(r.Closing),
		f(r.Ordered), f(r.Received), strconv.Itoa(r.LeadTimeLeft), f(r.HoldingCost),
		f(r.OrderCost), f(r.AcquisitionCost), f(r.Revenue), f(r.TotalCost), f(r.TotalRevenue),
		f(r.TotalGain),
	}
}

type Summary struct {
	Demand      float64 `json:"demand"`
	Revenue     float64 `json:"revenue"`
	UnmetDemand float64 `json:"unmetDemand"`
	TotalCost   float64 `json:"totalCost"`
	NetGain     float64 `json:"netGain"`
	Orders      int     `json:"orders"`
}

func (s Summary) Metrics() []sim.Metric {
	return []sim.Metric{
		{Name: "revenue", Value: s.Revenue},
		{Name: "unmetDemand", Value: s.UnmetDemand},
		{Name: "totalCost", Value: s.TotalCost},
		{Name: "netGain", Value: s.NetGain},
		{Name: "orders", Value: float64(s.Orders)},
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
func (m *Model) Horizon() int               { return m.params.Days }

// Init starts with a full warehouse whose stock has already been paid for.
func (m *Model) Init() State {
	return State{
		Level: m.params.Capacity,
		Cost:  m.params.Capacity * m.params.AcquisitionCost,
	}
}

func (m *Model) Step(day int, s State, st sim.Streams) (State, Row) {
	p := m.params
	row := Row{Day: day, Opening: s.Level}

	row.Demand = sample.ExponentialFrom(st[demandStream], p.DemandMean)
	row.Sold = min(row.Demand, s.Level)
	row.Unmet = max(0, row.Demand-s.Level)
	s.Level -= row.Sold
	s.Demand += row.Demand
	s.Unmet += row.Unmet

	if s.Pending {
		s.LeadTimeLeft--
		if s.LeadTimeLeft <= 0 {
			row.Received = s.OrderQty
			row.AcquisitionCost = s.OrderQty * p.AcquisitionCost
			s.Level += s.OrderQty
			s.Pending = false
			s.Cost += row.AcquisitionCost
			if s.Level > p.Capacity {
				s.Level = p.Capacity
			}
		}
	}

	if day%p.ReviewPeriod == 0 && !s.Pending {
		if qty := max(0, p.Capacity-s.Level); qty > 0 {
			s.Pending = true
			s.OrderQty = qty
			s.LeadTimeLeft = sample.UniformIntFrom(st[leadTimeStream], minLeadTime, maxLeadTime)
			s.Orders++
			row.Ordered = qty
			row.OrderCost = p.OrderCost
			s.Cost += p.OrderCost
		}
	}

	row.Closing = s.Level
	row.HoldingCost = (row.Opening + row.Closing) / 2 * p.HoldingCost
	s.Cost += row.HoldingCost

	row.Revenue = row.Sold * p.Price
	s.Revenue += row.Revenue

	if s.Pending {
		row.LeadTimeLeft = s.LeadTimeLeft
	}
	row.TotalCost = s.Cost
	row.TotalRevenue = s.Revenue
	row.TotalGain = s.Revenue - s.Cost

	return s, row
}

func (m *Model) Summarize(s State, _ []Row) Summary {
	return Summary{
		Demand:      s.Demand,
		Revenue:     s.Revenue,
		UnmetDemand: s.Unmet,
		TotalCost:   s.Cost,
		NetGain:     s.Revenue - s.Cost,
		Orders:      s.Orders,
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
