// Package dice simulates the house side of a two-dice game: the player pays
// Price per game and is paid Cost7 whenever the dice sum to seven.
package dice

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sample"
	"github.com/tifye/simlab/sim"
)

const Name = "dice"

const (
	die1Stream = iota
	die2Stream
)

var streams = []prng.StreamSpec{
	{Name: "die1", Base: 1234, Mix: prng.MixAdd},
	{Name: "die2", Base: 9876, Mix: prng.MixXorShifted},
}

// Params are NMJ, PUJ and CUS7 of the exercise.
type Params struct {
	Games int     `json:"games"`
	Price float64 `json:"price"`
	Cost7 float64 `json:"cost7"`
}

func DefaultParams() Params {
	return Params{Games: 100, Price: 2, Cost7: 5}
}

func (p Params) Validate() error {
	return sim.First(
		sim.Horizon("games", p.Games),
		sim.NonNegative("price", p.Price),
		sim.NonNegative("cost7", p.Cost7),
	)
}

type State struct {
	Gain      float64
	HouseWins int
}

type Row struct {
	Game      int     `json:"game"`
	R1        float64 `json:"r1"`
	R2        float64 `json:"r2"`
	D1        int     `json:"d1"`
	D2        int     `json:"d2"`
	Sum       int     `json:"sum"`
	Gain      float64 `json:"gain"`
	HouseWins int     `json:"houseWins"`
}

func (Row) Header() []string {
	return []string{"game", "r1", "r2", "d1", "d2", "sum", "gain", "house_wins"}
}

func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.Game),
		strconv.FormatFloat(r.R1, 'g', -1, 64),
		strconv.FormatFloat(r.R2, 'g', -1, 64),
		strconv.Itoa(r.D1),
		strconv.Itoa(r.D2),
		strconv.Itoa(r.Sum),
		strconv.FormatFloat(r.Gain, 'g', -1, 64),
		strconv.Itoa(r.HouseWins),
	}
}

// Summary holds GNC, NJGC and PJC for one run.
type Summary struct {
	Games      int     `json:"games"`
	NetGain    float64 `json:"netGain"`
	HouseWins  int     `json:"houseWins"`
	WinPercent float64 `json:"winPercent"`
}

func (s Summary) Metrics() []sim.Metric {
	return []sim.Metric{
		{Name: "netGain", Value: s.NetGain},
		{Name: "houseWins", Value: float64(s.HouseWins)},
		{Name: "winPercent", Value: s.WinPercent},
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
func (m *Model) Horizon() int               { return m.params.Games }
func (m *Model) Init() State                { return State{} }

// Step rolls die 1 then die 2.
func (m *Model) Step(game int, s State, st sim.Streams) (State, Row) {
	r1 := st[die1Stream].Float64()
	r2 := st[die2Stream].Float64()
	d1 := sample.DieFace(r1)
	d2 := sample.DieFace(r2)

	if d1+d2 == 7 {
		s.Gain += m.params.Price - m.params.Cost7
	} else {
		s.Gain += m.params.Price
		s.HouseWins++
	}

	return s, Row{
		Game:      game,
		R1:        r1,
		R2:        r2,
		D1:        d1,
		D2:        d2,
		Sum:       d1 + d2,
		Gain:      s.Gain,
		HouseWins: s.HouseWins,
	}
}

func (m *Model) Summarize(s State, _ []Row) Summary {
	return Summary{
		Games:      m.params.Games,
		NetGain:    s.Gain,
		HouseWins:  s.HouseWins,
		WinPercent: float64(s.HouseWins) / float64(m.params.Games) * 100,
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
