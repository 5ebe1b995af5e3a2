// Package sim is the pure simulation core of Typing Defender.
//
// Words fall toward a row of defended structures; typed letters advance
// words and completed words launch projectiles. State is a single mutable
// root owned by the caller. ResolveKey and Step are the only mutators and
// must never run concurrently with each other; the host serializes them
// (keys are queued and drained between steps).
package sim

import "unicode"

// Vec is a point or direction in play-field space.
type Vec struct {
	X, Y float64
}

// Lerp interpolates between a and b by t.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Rand is the random source the simulation draws from.
// *math/rand.Rand satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Level is the immutable per-level tuning the simulation reads.
type Level struct {
	Number          int
	Keys            []rune // allowed input alphabet, lower case
	Words           []string
	Speed           float64 // descent per frame reference unit
	SpawnMS         float64 // milliseconds between spawns
	WordsToComplete int     // consumed by host progression only
	Description     string
}

// Allows reports whether r is part of the level's alphabet.
func (l Level) Allows(r rune) bool {
	r = unicode.ToLower(r)
	for _, k := range l.Keys {
		if k == r {
			return true
		}
	}
	return false
}

// FallingWord is a word descending toward a structure.
type FallingWord struct {
	ID     int
	Text   string
	Pos    Vec
	Speed  float64
	Next   int // index of the next expected letter, 0 <= Next <= len
	Target int // index into State.Structures
	Active bool
}

// Letters returns the word as runes.
func (w *FallingWord) Letters() []rune {
	return []rune(w.Text)
}

// Expected returns the next letter to type, or false when the word is done.
func (w *FallingWord) Expected() (rune, bool) {
	letters := w.Letters()
	if w.Next >= len(letters) {
		return 0, false
	}
	return letters[w.Next], true
}

// Structure is a defended building. Destroyed is one-way until Reset.
type Structure struct {
	ID        int
	Name      string
	Pos       Vec // left edge, top of the ground line
	Width     float64
	Height    float64
	Health    int
	MaxHealth int
	Destroyed bool
}

// Projectile flies from the launcher to a completed word's last position.
type Projectile struct {
	ID       int
	Origin   Vec
	Target   Vec
	Pos      Vec
	Progress float64 // 0..1, never decreases while active
	Active   bool
}

// Particle is a short-lived explosion fragment. Life counts ticks.
type Particle struct {
	ID      int
	Pos     Vec
	Vel     Vec // field units per second
	Life    int
	MaxLife int
	Hue     float64
	Size    float64
}

// Field holds play-field geometry and the fixed tuning constants.
type Field struct {
	Width  float64
	Height float64
	Ground float64 // height of the defended strip at the bottom

	StructureNames  []string
	StructureWidth  float64
	StructureHeight float64
	StructureHealth int
	Lives           int

	SpawnY       float64 // vertical spawn offset, above the field when negative
	SpawnMargin  float64 // right-hand band where words never spawn
	ImpactBuffer float64 // distance above the ground line where words hit

	FrameMS    float64 // frame reference unit for word descent
	FlightMS   float64 // projectile flight duration
	SpeedScale float64 // multiplier on level descent speed

	ParticleCount   int
	ParticleSpeed   float64
	ParticleLifeMin int
	ParticleLifeMax int
	ParticleSizeMin float64
	ParticleSizeMax float64
	ParticleHueMin  float64
	ParticleHueMax  float64

	PointsPerLetter int
	GameOverAt      int // game ends when surviving structures drop to this
}

// DefaultField returns the classic 1200x800 field with six structures.
func DefaultField() Field {
	return Field{
		Width:  1200,
		Height: 800,
		Ground: 120,

		StructureNames:  []string{"Home", "School", "Park", "Store", "Library", "Beach"},
		StructureWidth:  120,
		StructureHeight: 80,
		StructureHealth: 3,
		Lives:           3,

		SpawnY:       -50,
		SpawnMargin:  100,
		ImpactBuffer: 50,

		FrameMS:    16,
		FlightMS:   500,
		SpeedScale: 1,

		ParticleCount:   20,
		ParticleSpeed:   100,
		ParticleLifeMin: 40,
		ParticleLifeMax: 60,
		ParticleSizeMin: 2,
		ParticleSizeMax: 6,
		ParticleHueMin:  15,
		ParticleHueMax:  75,

		PointsPerLetter: 10,
		GameOverAt:      2,
	}
}

// GroundY is the y coordinate of the top of the defended line.
func (f Field) GroundY() float64 {
	return f.Height - f.Ground
}

// ImpactY is the line a word must cross to hit its target.
func (f Field) ImpactY() float64 {
	return f.GroundY() - f.ImpactBuffer
}

// LaunchPoint is where projectiles start: the centre of the defended line.
func (f Field) LaunchPoint() Vec {
	return Vec{X: f.Width / 2, Y: f.GroundY()}
}

// State is the aggregate game state and the single source of truth.
type State struct {
	Field Field

	Score int
	Level int
	Lives int

	Playing  bool
	Paused   bool
	GameOver bool

	Words       []FallingWord
	Structures  []Structure
	Projectiles []Projectile
	Particles   []Particle

	Attempted  int     // keystrokes inside the alphabet
	Successful int     // keystrokes that advanced a word
	Accuracy   float64 // Successful / Attempted * 100
	Completed  int     // words fully typed

	SinceSpawn float64 // ms accumulated since the last spawn
	NextID     int
}

func (s *State) newID() int {
	s.NextID++
	return s.NextID
}

// Alive counts structures that are not destroyed.
func (s *State) Alive() int {
	n := 0
	for i := range s.Structures {
		if !s.Structures[i].Destroyed {
			n++
		}
	}
	return n
}
