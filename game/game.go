// Package game implements the snake played on the cell renderer: walls, a
// steerable head with a growing tail, and randomly spawned apples.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/cellsnake/core"
	"github.com/lixenwraith/cellsnake/input"
	"github.com/lixenwraith/cellsnake/render"
)

// Registrar receives every drawable at construction
type Registrar interface {
	Register(d *render.Drawable)
}

// KeySource yields the most recent key; never blocks
type KeySource interface {
	Latest() input.Code
}

// Config tunes the rules
type Config struct {
	Apples     int    // apple pool size
	SpawnEvery uint64 // ticks between spawn attempts
	Seed       uint64 // 0 seeds from the clock
}

// DefaultConfig returns the classic rules
func DefaultConfig() Config {
	return Config{Apples: 12, SpawnEvery: 20}
}

type apple struct {
	d     *render.Drawable
	alive bool
}

// Game holds all entities; main-goroutine only
type Game struct {
	cfg    Config
	keys   KeySource
	rng    *rand.Rand
	world  *World
	head   *render.Drawable
	dir    Direction
	tail   []*render.Drawable // pool; tail[:length] are in play, rest parked off-grid
	length int
	apples []apple
	tick   uint64
	score  int
	alive  bool
	onEat  func(score int)
}

// New builds the world for a width x height display and registers every drawable
func New(width, height int, reg Registrar, keys KeySource, cfg Config) *Game {
	if cfg.SpawnEvery == 0 {
		cfg.SpawnEvery = DefaultConfig().SpawnEvery
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		cfg:   cfg,
		keys:  keys,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		world: newWorld(width, height, reg),
		dir:   Up,
		alive: true,
	}

	g.head = render.NewDrawable(g.world.Center, core.Coord{X: 1, Y: 1})
	reg.Register(g.head)

	g.apples = make([]apple, max(cfg.Apples, 0))
	for i := range g.apples {
		g.apples[i].d = render.NewDrawable(core.OffGrid, core.Coord{X: 1, Y: 1})
		reg.Register(g.apples[i].d)
	}

	inner := g.world.Interior()
	g.tail = make([]*render.Drawable, int(inner.Size.X)*int(inner.Size.Y))
	for i := range g.tail {
		g.tail[i] = render.NewDrawable(core.OffGrid, core.Coord{X: 1, Y: 1})
		reg.Register(g.tail[i])
	}

	log.Debug().
		Int16("width", g.world.Width).
		Int16("height", g.world.Height).
		Int("apples", len(g.apples)).
		Int("tail_capacity", len(g.tail)).
		Msg("game initialized")
	return g
}

// OnEat sets a callback invoked with the new score after each apple
func (g *Game) OnEat(fn func(score int)) {
	g.onEat = fn
}

// Update advances the game one tick
func (g *Game) Update() {
	if !g.alive {
		return
	}

	key := g.keys.Latest()
	if isQuit(key) {
		g.alive = false
		log.Debug().Int("score", g.score).Msg("quit requested")
		return
	}
	if d, ok := directionFor(key); ok && !(g.length > 0 && d == g.dir.Opposite()) {
		g.dir = d
	}

	last := g.head.Position()
	pos := last.Add(g.dir.Step())
	g.head.SetPosition(pos)

	if g.tick%g.cfg.SpawnEvery == 0 {
		g.spawnApple()
	}
	g.tick++

	if g.world.HitsWall(pos) {
		g.die("wall")
		return
	}

	ate := g.eatAt(pos)
	g.moveTail(last, ate)

	if g.hitsTail(pos) {
		g.die("tail")
		return
	}

	if ate {
		g.score++
		log.Debug().Int("score", g.score).Msg("apple eaten")
		if g.onEat != nil {
			g.onEat(g.score)
		}
	}
}

// moveTail shifts segments toward the head; growing activates the next pooled segment
func (g *Game) moveTail(vacated core.Coord, grow bool) {
	if grow && g.length < len(g.tail) {
		g.length++
	}
	for i := g.length - 1; i > 0; i-- {
		g.tail[i].SetPosition(g.tail[i-1].Position())
	}
	if g.length > 0 {
		g.tail[0].SetPosition(vacated)
	}
}

func (g *Game) hitsTail(c core.Coord) bool {
	for _, seg := range g.tail[:g.length] {
		if seg.Position() == c {
			return true
		}
	}
	return false
}

func (g *Game) eatAt(c core.Coord) bool {
	for i := range g.apples {
		a := &g.apples[i]
		if a.alive && a.d.Rect().Contains(c) {
			a.alive = false
			a.d.SetPosition(core.OffGrid)
			return true
		}
	}
	return false
}

// spawnApple places the first free pooled apple on a random empty interior cell
func (g *Game) spawnApple() {
	inner := g.world.Interior()
	if inner.Size.X <= 0 || inner.Size.Y <= 0 {
		return
	}
	idx := -1
	for i := range g.apples {
		if !g.apples[i].alive {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	pos := core.Coord{
		X: inner.Pos.X + int16(g.rng.IntN(int(inner.Size.X))),
		Y: inner.Pos.Y + int16(g.rng.IntN(int(inner.Size.Y))),
	}
	if g.occupied(pos) {
		log.Trace().Int16("x", pos.X).Int16("y", pos.Y).Msg("apple spawn skipped, cell occupied")
		return
	}
	g.apples[idx].d.SetPosition(pos)
	g.apples[idx].alive = true
}

func (g *Game) occupied(c core.Coord) bool {
	if g.head.Position() == c || g.hitsTail(c) {
		return true
	}
	for _, a := range g.apples {
		if a.alive && a.d.Position() == c {
			return true
		}
	}
	return false
}

func (g *Game) die(cause string) {
	g.alive = false
	log.Debug().Str("cause", cause).Int("score", g.score).Uint64("tick", g.tick).Msg("snake died")
}

// Alive reports whether the game is still running
func (g *Game) Alive() bool { return g.alive }

// Score returns the number of apples eaten
func (g *Game) Score() int { return g.score }

// Tick returns the number of completed updates
func (g *Game) Tick() uint64 { return g.tick }

// Direction returns the current heading
func (g *Game) Direction() Direction { return g.dir }

// Head returns the head cell
func (g *Game) Head() core.Coord { return g.head.Position() }

// Tail returns the in-play tail cells, nearest the head first
func (g *Game) Tail() []core.Coord {
	out := make([]core.Coord, g.length)
	for i, seg := range g.tail[:g.length] {
		out[i] = seg.Position()
	}
	return out
}

// Apples returns the cells of live apples
func (g *Game) Apples() []core.Coord {
	var out []core.Coord
	for _, a := range g.apples {
		if a.alive {
			out = append(out, a.d.Position())
		}
	}
	return out
}

// World returns the playfield
func (g *Game) World() *World { return g.world }
