package sim

import "unicode"

// KeyResult describes what a single keystroke did.
type KeyResult int

const (
	KeyIgnored   KeyResult = iota // outside the level alphabet, nothing counted
	KeyMissed                     // counted as an attempt, no word advanced
	KeyHit                        // advanced a word
	KeyCompleted                  // advanced and finished a word
)

// String returns the result name used in logs.
func (r KeyResult) String() string {
	switch r {
	case KeyIgnored:
		return "ignored"
	case KeyMissed:
		return "missed"
	case KeyHit:
		return "hit"
	case KeyCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ResolveKey applies one typed character to the state.
//
// Active words are scanned in insertion order and the first one expecting r
// advances. Finishing a word deactivates it, scores it and launches exactly
// one projectile at its current position.
func ResolveKey(s *State, r rune, lvl Level) KeyResult {
	r = unicode.ToLower(r)
	if !lvl.Allows(r) {
		return KeyIgnored
	}

	s.Attempted++
	result := KeyMissed

	for i := range s.Words {
		w := &s.Words[i]
		if !w.Active {
			continue
		}
		next, ok := w.Expected()
		if !ok || next != r {
			continue
		}

		w.Next++
		s.Successful++
		result = KeyHit

		if w.Next == len(w.Letters()) {
			complete(s, w)
			result = KeyCompleted
		}
		break
	}

	s.Accuracy = float64(s.Successful) / float64(s.Attempted) * 100
	return result
}

func complete(s *State, w *FallingWord) {
	w.Active = false
	s.Score += len(w.Letters()) * s.Field.PointsPerLetter
	s.Completed++

	origin := s.Field.LaunchPoint()
	s.Projectiles = append(s.Projectiles, Projectile{
		ID:     s.newID(),
		Origin: origin,
		Target: w.Pos,
		Pos:    origin,
		Active: true,
	})
}
