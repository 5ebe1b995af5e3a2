package sim

// Events summarizes what one Step did, for logging and tests.
type Events struct {
	Spawned     int
	Impacts     int
	Destroyed   []string // names of structures destroyed this step
	Detonations int
	GameOver    bool // the game ended during this step
}

// Step advances the simulation by dt milliseconds.
//
// Phases run in a fixed order: spawn, words, projectiles, particles,
// cleanup, termination check. Nothing happens unless the game is playing,
// unpaused and not over. The caller owns dt; Step never reads a clock.
func Step(s *State, dt float64, lvl Level, rng Rand) Events {
	var ev Events
	if !s.Playing || s.Paused || s.GameOver {
		return ev
	}
	if dt < 0 {
		dt = 0
	}

	spawn(s, dt, lvl, rng, &ev)
	advanceWords(s, dt, &ev)
	advanceProjectiles(s, dt, rng, &ev)
	advanceParticles(s, dt)
	cleanup(s)

	if s.Alive() <= s.Field.GameOverAt {
		s.GameOver = true
		s.Playing = false
		ev.GameOver = true
	}
	return ev
}

// spawn emits at most one word once the accumulated time passes the
// level's spawn interval. The accumulator carries no remainder.
func spawn(s *State, dt float64, lvl Level, rng Rand, ev *Events) {
	s.SinceSpawn += dt
	if s.SinceSpawn <= lvl.SpawnMS {
		return
	}
	s.SinceSpawn = 0

	if len(lvl.Words) == 0 || len(s.Structures) == 0 {
		return
	}

	text := lvl.Words[rng.Intn(len(lvl.Words))]
	// Destroyed structures stay eligible as targets.
	target := rng.Intn(len(s.Structures))
	x := rng.Float64() * (s.Field.Width - s.Field.SpawnMargin)

	s.Words = append(s.Words, FallingWord{
		ID:     s.newID(),
		Text:   text,
		Pos:    Vec{X: x, Y: s.Field.SpawnY},
		Speed:  lvl.Speed * s.Field.SpeedScale,
		Target: target,
		Active: true,
	})
	ev.Spawned++
}

func advanceWords(s *State, dt float64, ev *Events) {
	impactY := s.Field.ImpactY()
	for i := range s.Words {
		w := &s.Words[i]
		if !w.Active {
			continue
		}
		w.Pos.Y += w.Speed * dt / s.Field.FrameMS
		if w.Pos.Y > impactY {
			w.Active = false
			impact(s, w.Target, ev)
		}
	}
}

// impact damages the target. A destroyed target still absorbs hits
// without further effect.
func impact(s *State, target int, ev *Events) {
	ev.Impacts++
	if target < 0 || target >= len(s.Structures) {
		return
	}
	st := &s.Structures[target]
	if st.Destroyed {
		return
	}
	st.Health--
	if st.Health <= 0 {
		st.Health = 0
		st.Destroyed = true
		s.Lives--
		ev.Destroyed = append(ev.Destroyed, st.Name)
	}
}

func advanceProjectiles(s *State, dt float64, rng Rand, ev *Events) {
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if !p.Active {
			continue
		}
		p.Progress += dt / s.Field.FlightMS
		if p.Progress >= 1 {
			p.Progress = 1
			p.Pos = p.Target
			p.Active = false
			explode(s, p.Target, rng)
			ev.Detonations++
			continue
		}
		p.Pos = Lerp(p.Origin, p.Target, p.Progress)
	}
}

func explode(s *State, at Vec, rng Rand) {
	f := s.Field
	for i := 0; i < f.ParticleCount; i++ {
		life := f.ParticleLifeMin
		if span := f.ParticleLifeMax - f.ParticleLifeMin; span > 0 {
			life += rng.Intn(span + 1)
		}
		s.Particles = append(s.Particles, Particle{
			ID:  s.newID(),
			Pos: at,
			Vel: Vec{
				X: (rng.Float64() - 0.5) * f.ParticleSpeed,
				Y: (rng.Float64() - 0.5) * f.ParticleSpeed,
			},
			Life:    life,
			MaxLife: life,
			Hue:     f.ParticleHueMin + rng.Float64()*(f.ParticleHueMax-f.ParticleHueMin),
			Size:    f.ParticleSizeMin + rng.Float64()*(f.ParticleSizeMax-f.ParticleSizeMin),
		})
	}
}

// advanceParticles moves particles and burns one life per step,
// independent of dt.
func advanceParticles(s *State, dt float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Pos.X += p.Vel.X * dt / 1000
		p.Pos.Y += p.Vel.Y * dt / 1000
		p.Life--
	}
}

// cleanup filters in place. Inactive words are always consumed (typed or
// impacted), so nothing inactive is kept.
func cleanup(s *State) {
	// Inactive words are dropped wherever they are. Keeping consumed words
	// until they leave the field would only grow the slice.
	words := s.Words[:0]
	for _, w := range s.Words {
		if w.Active {
			words = append(words, w)
		}
	}
	s.Words = words

	projectiles := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
		}
	}
	s.Projectiles = projectiles

	particles := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	s.Particles = particles
}
