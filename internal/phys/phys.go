package phys

import (
	"fmt"
	"math"
)

const (
	DefaultGravity  = 9.81
	DefaultMaxRange = 30000.0
)

// Params describes one projectile launch.
type Params struct {
	Speed float64 // initial speed, m/s
	Angle float64 // launch angle, degrees
	Mass  float64 // kg
	Drag  float64 // linear drag coefficient, F = -k*v
}

type Point struct {
	X float64
	Y float64
}

// Trajectory is the sequence of ground-or-above positions of one flight,
// starting at the origin.
type Trajectory []Point

func (tr Trajectory) Xs() []float64 {
	xs := make([]float64, len(tr))
	for i, p := range tr {
		xs[i] = p.X
	}
	return xs
}

func (tr Trajectory) Ys() []float64 {
	ys := make([]float64, len(tr))
	for i, p := range tr {
		ys[i] = p.Y
	}
	return ys
}

// Result summarizes one integration at a single step size.
type Result struct {
	Dt         float64
	Path       Trajectory
	Range      float64
	MaxHeight  float64
	FinalSpeed float64
	Steps      int
}

// Integrator advances a single body under gravity and linear drag with
// fixed-step Euler integration. MaxRange is a safety cutoff for degenerate
// inputs, not a normal exit.
type Integrator struct {
	Gravity  float64
	MaxRange float64
}

func New() *Integrator {
	return &Integrator{
		Gravity:  DefaultGravity,
		MaxRange: DefaultMaxRange,
	}
}

func (in *Integrator) validate(p Params, dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}
	if p.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %f", p.Mass)
	}
	if p.Speed < 0 {
		return fmt.Errorf("speed must be non-negative, got %f", p.Speed)
	}
	if p.Drag < 0 {
		return fmt.Errorf("drag coefficient must be non-negative, got %f", p.Drag)
	}
	return nil
}

// Integrate runs one flight until the body drops below ground level or
// crosses MaxRange. The position update precedes the velocity update, so
// each step moves the body with the velocity from the start of the step;
// changing that ordering changes every number downstream.
func (in *Integrator) Integrate(p Params, dt float64) (*Result, error) {
	if err := in.validate(p, dt); err != nil {
		return nil, err
	}

	rad := p.Angle * math.Pi / 180
	vx := p.Speed * math.Cos(rad)
	vy := p.Speed * math.Sin(rad)

	x, y := 0.0, 0.0
	maxHeight := 0.0
	path := Trajectory{{0, 0}}
	steps := 0

	for y >= 0 {
		ax := -(p.Drag / p.Mass) * vx
		ay := -in.Gravity - (p.Drag/p.Mass)*vy

		x += vx * dt
		y += vy * dt
		vx += ax * dt
		vy += ay * dt

		if y > maxHeight {
			maxHeight = y
		}
		if y >= 0 {
			path = append(path, Point{x, y})
		}
		steps++

		if x > in.MaxRange {
			break
		}
	}

	return &Result{
		Dt:         dt,
		Path:       path,
		Range:      x,
		MaxHeight:  maxHeight,
		FinalSpeed: math.Sqrt(vx*vx + vy*vy),
		Steps:      steps,
	}, nil
}
