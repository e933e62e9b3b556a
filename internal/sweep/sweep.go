package sweep

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/plasmalab/internal/report"
	"github.com/san-kum/plasmalab/internal/scenario"
)

// Axis selects which scenario parameter a sweep varies.
type Axis string

const (
	Temperature Axis = "temperature"
	Density     Axis = "density"
	Field       Axis = "field"
)

type Config struct {
	Axis    Axis
	From    float64
	To      float64
	Steps   int
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Axis:    Temperature,
		From:    1e4,
		To:      1e8,
		Steps:   64,
		Workers: 8,
	}
}

// Result holds per-point series in axis order. Frequencies are raw
// values in s^-1; callers take logs for plotting.
type Result struct {
	Axis           Axis
	Points         []float64
	CollisionFreq  []float64
	MaxwellianFreq []float64
	PlasmaFreq     []float64
	GyroFreq       []float64
	CoulombLog     []float64
}

func (c Config) validate() error {
	if c.From <= 0 || c.To <= 0 {
		return fmt.Errorf("sweep bounds must be positive, got [%g, %g]", c.From, c.To)
	}
	if c.From >= c.To {
		return fmt.Errorf("sweep range is empty: [%g, %g]", c.From, c.To)
	}
	if c.Steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", c.Steps)
	}
	switch c.Axis {
	case Temperature, Density, Field:
	default:
		return fmt.Errorf("unknown sweep axis: %s", c.Axis)
	}
	return nil
}

// Run evaluates the full report at log-spaced points along one axis.
// Points fan out over a bounded set of workers; the first error wins.
func Run(ctx context.Context, base *scenario.Scenario, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	points := logspace(cfg.From, cfg.To, cfg.Steps)
	res := &Result{
		Axis:           cfg.Axis,
		Points:         points,
		CollisionFreq:  make([]float64, cfg.Steps),
		MaxwellianFreq: make([]float64, cfg.Steps),
		PlasmaFreq:     make([]float64, cfg.Steps),
		GyroFreq:       make([]float64, cfg.Steps),
		CoulombLog:     make([]float64, cfg.Steps),
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Steps {
		workers = cfg.Steps
	}

	errs := make([]error, cfg.Steps)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				errs[idx] = res.evaluate(idx, base, cfg.Axis, points[idx])
			}
		}()
	}

	var canceled error
feed:
	for i := range points {
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled != nil {
		return nil, canceled
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *Result) evaluate(idx int, base *scenario.Scenario, axis Axis, val float64) error {
	sc := base.Clone()
	switch axis {
	case Temperature:
		sc.Temperature = val
	case Density:
		sc.Density = val
	case Field:
		sc.Field = val
	}

	rep, err := report.Run(sc)
	if err != nil {
		return fmt.Errorf("%s=%g: %w", axis, val, err)
	}

	r.CollisionFreq[idx] = rep.CollisionFreq.Val
	r.MaxwellianFreq[idx] = rep.MaxwellianFreq.Val
	r.PlasmaFreq[idx] = rep.PlasmaFreq.Val
	r.GyroFreq[idx] = rep.GyroFreq.Val
	r.CoulombLog[idx] = rep.CoulombLog.Val
	return nil
}

func logspace(from, to float64, steps int) []float64 {
	pts := make([]float64, steps)
	lo, hi := math.Log10(from), math.Log10(to)
	for i := range pts {
		frac := float64(i) / float64(steps-1)
		pts[i] = math.Pow(10, lo+frac*(hi-lo))
	}
	return pts
}
