package demo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"evoview/internal/domain/world"
)

// Provider is a stand-in simulation for running the viewer without a
// simulation service. Animals drift along their heading with a little
// steering noise and wrap around the unit square; food touched by an animal
// respawns elsewhere. Train fast-forwards to the end of the generation and
// reports how much food the population ate.
type Provider struct {
	cfg Config

	mu      sync.Mutex
	rng     *rand.Rand
	foods   []world.FoodPose
	animals []animal
	age     int
	gen     int
}

type animal struct {
	pose      world.AnimalPose
	speed     float64
	satiation int
}

type Config struct {
	Seed             int64
	Foods            int
	Animals          int
	GenerationLength int
	MinSpeed         float64
	MaxSpeed         float64
	EatRadius        float64
	Steer            float64
}

func DefaultConfig() Config {
	return Config{
		Seed:             1,
		Foods:            60,
		Animals:          40,
		GenerationLength: 2500,
		MinSpeed:         0.001,
		MaxSpeed:         0.005,
		EatRadius:        0.01,
		Steer:            math.Pi / 32,
	}
}

func NewProvider(cfg Config) *Provider {
	def := DefaultConfig()
	if cfg.Foods <= 0 {
		cfg.Foods = def.Foods
	}
	if cfg.Animals <= 0 {
		cfg.Animals = def.Animals
	}
	if cfg.GenerationLength <= 0 {
		cfg.GenerationLength = def.GenerationLength
	}
	if cfg.MinSpeed <= 0 {
		cfg.MinSpeed = def.MinSpeed
	}
	if cfg.MaxSpeed < cfg.MinSpeed {
		cfg.MaxSpeed = math.Max(def.MaxSpeed, cfg.MinSpeed)
	}
	if cfg.EatRadius <= 0 {
		cfg.EatRadius = def.EatRadius
	}
	if cfg.Steer < 0 {
		cfg.Steer = 0
	}
	p := &Provider{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
	p.foods = make([]world.FoodPose, cfg.Foods)
	for i := range p.foods {
		p.foods[i] = p.randomFood()
	}
	p.animals = make([]animal, cfg.Animals)
	for i := range p.animals {
		p.animals[i] = p.randomAnimal()
	}
	return p
}

func (p *Provider) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.step()
	return nil
}

func (p *Provider) Train(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.age < p.cfg.GenerationLength {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p.step()
	}
	return p.evolve(), nil
}

func (p *Provider) World(ctx context.Context) (world.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return world.Snapshot{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := world.Snapshot{
		Foods:   make([]world.FoodPose, len(p.foods)),
		Animals: make([]world.AnimalPose, len(p.animals)),
	}
	copy(out.Foods, p.foods)
	for i, a := range p.animals {
		out.Animals[i] = a.pose
	}
	return out, nil
}

func (p *Provider) step() {
	for i := range p.animals {
		a := &p.animals[i]
		for j := range p.foods {
			if math.Hypot(a.pose.X-p.foods[j].X, a.pose.Y-p.foods[j].Y) <= p.cfg.EatRadius {
				a.satiation++
				p.foods[j] = p.randomFood()
			}
		}
	}
	for i := range p.animals {
		a := &p.animals[i]
		a.pose.Rotation = wrapAngle(a.pose.Rotation + (p.rng.Float64()*2-1)*p.cfg.Steer)
		// Heading 0 faces +Y, matching the triangle drawn by the viewer.
		a.pose.X = wrapUnit(a.pose.X - math.Sin(a.pose.Rotation)*a.speed)
		a.pose.Y = wrapUnit(a.pose.Y + math.Cos(a.pose.Rotation)*a.speed)
	}
	p.age++
	if p.age > p.cfg.GenerationLength {
		p.evolve()
	}
}

func (p *Provider) evolve() string {
	p.gen++
	minSat, maxSat, sum := math.Inf(1), math.Inf(-1), 0.0
	for i := range p.animals {
		s := float64(p.animals[i].satiation)
		minSat = math.Min(minSat, s)
		maxSat = math.Max(maxSat, s)
		sum += s
		p.animals[i] = p.randomAnimal()
	}
	for i := range p.foods {
		p.foods[i] = p.randomFood()
	}
	p.age = 0
	avg := 0.0
	if n := len(p.animals); n > 0 {
		avg = sum / float64(n)
	} else {
		minSat, maxSat = 0, 0
	}
	return fmt.Sprintf("generation=%d, min=%.2f, max=%.2f, avg=%.2f", p.gen, minSat, maxSat, avg)
}

func (p *Provider) randomFood() world.FoodPose {
	return world.FoodPose{X: p.rng.Float64(), Y: p.rng.Float64()}
}

func (p *Provider) randomAnimal() animal {
	return animal{
		pose: world.AnimalPose{
			X:        p.rng.Float64(),
			Y:        p.rng.Float64(),
			Rotation: p.rng.Float64() * 2 * math.Pi,
		},
		speed: p.cfg.MinSpeed + p.rng.Float64()*(p.cfg.MaxSpeed-p.cfg.MinSpeed),
	}
}

func wrapUnit(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 {
		return 0
	}
	return v
}

func wrapAngle(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		return 0
	}
	return r
}
