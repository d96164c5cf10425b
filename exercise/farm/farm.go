// Package farm simulates a hen's eggs: Poisson(1) eggs per day, each of which
// breaks, hatches (and may survive to be sold as a chick) or is sold as an egg.
package farm

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sample"
	"github.com/tifye/simlab/sim"
)

const Name = "farm"

const (
	eggsStream = iota
	fatesStream
)

var streams = []prng.StreamSpec{
	{Name: "eggs", Base: 0x51a2b3c4, Mix: prng.MixXor},
	{Name: "fates", Base: 0x9fedcba1, Mix: prng.MixAddShifted},
}

type Params struct {
	Days       int     `json:"days"`
	EggPrice   float64 `json:"eggPrice"`
	ChickPrice float64 `json:"chickPrice"`
}

func DefaultParams() Params {
	return Params{Days: 30, EggPrice: 1.5, ChickPrice: 5}
}

func (p Params) Validate() error {
	return sim.First(
		sim.Horizon("days", p.Days),
		sim.NonNegative("eggPrice", p.EggPrice),
		sim.NonNegative("chickPrice", p.ChickPrice),
	)
}

// State is the running totals; nothing else carries across days.
type State struct {
	Laid       int
	Broken     int
	EggsSold   int
	ChicksSold int
	ChicksDied int
	Revenue    float64
}

type Row struct {
	Day          int     `json:"day"`
	Laid         int     `json:"laid"`
	Broken       int     `json:"broken"`
	EggsSold     int     `json:"eggsSold"`
	ChicksSold   int     `json:"chicksSold"`
	ChicksDied   int     `json:"chicksDied"`
	Revenue      float64 `json:"revenue"`
	TotalRevenue float64 `json:"totalRevenue"`
}

func (Row) Header() []string {
	return []string{"day", "laid", "broken", "eggs_sold", "chicks_sold", "chicks_died", "revenue", "total_revenue"}
}

func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.Day),
		strconv.Itoa(r.Laid),
		strconv.Itoa(r.Broken),
		strconv.Itoa(r.EggsSold),
		strconv.Itoa(r.ChicksSold),
		strconv.Itoa(r.ChicksDied),
		strconv.FormatFloat(r.Revenue, 'g', -1, 64),
		strconv.FormatFloat(r.TotalRevenue, 'g', -1, 64),
	}
}

type Summary struct {
	Days             int     `json:"days"`
	Laid             int     `json:"laid"`
	Broken           int     `json:"broken"`
	EggsSold         int     `json:"eggsSold"`
	ChicksSold       int     `json:"chicksSold"`
	ChicksDied       int     `json:"chicksDied"`
	Revenue          float64 `json:"revenue"`
	MeanDailyRevenue float64 `json:"meanDailyRevenue"`
}

func (s Summary) Metrics() []sim.Metric {
	return []sim.Metric{
		{Name: "laid", Value: float64(s.Laid)},
		{Name: "broken", Value: float64(s.Broken)},
		{Name: "eggsSold", Value: float64(s.EggsSold)},
		{Name: "chicksSold", Value: float64(s.ChicksSold)},
		{Name: "chicksDied", Value: float64(s.ChicksDied)},
		{Name: "revenue", Value: s.Revenue},
		{Name: "meanDailyRevenue", Value: s.MeanDailyRevenue},
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
func (m *Model) Init() State                { return State{} }

// Step draws the day's egg count from the eggs stream, then resolves every
// egg in order from the fates stream.
func (m *Model) Step(day int, s State, st sim.Streams) (State, Row) {
	row := Row{Day: day, Laid: sample.Poisson1From(st[eggsStream])}

	for range row.Laid {
		switch sample.EggFate(st[fatesStream]) {
		case sample.FateBroken:
			row.Broken++
		case sample.FateSoldChick:
			row.ChicksSold++
			row.Revenue += m.params.ChickPrice
		case sample.FateChickDied:
			row.ChicksDied++
		case sample.FateSoldEgg:
			row.EggsSold++
			row.Revenue += m.params.EggPrice
		}
	}

	s.Laid += row.Laid
	s.Broken += row.Broken
	s.EggsSold += row.EggsSold
	s.ChicksSold += row.ChicksSold
	s.ChicksDied += row.ChicksDied
	s.Revenue += row.Revenue
	row.TotalRevenue = s.Revenue

	return s, row
}

func (m *Model) Summarize(s State, _ []Row) Summary {
	return Summary{
		Days:             m.params.Days,
		Laid:             s.Laid,
		Broken:           s.Broken,
		EggsSold:         s.EggsSold,
		ChicksSold:       s.ChicksSold,
		ChicksDied:       s.ChicksDied,
		Revenue:          s.Revenue,
		MeanDailyRevenue: s.Revenue / float64(m.params.Days),
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
