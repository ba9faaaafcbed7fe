// Package notation provides sequence-level move utilities.
package notation

import "github.com/SeamusWaldron/minicube"

// Invert returns the sequence that undoes moves: reversed order, each move
// inverted. Applying moves followed by Invert(moves) returns to the start.
func Invert(moves []minicube.Move) []minicube.Move {
	out := make([]minicube.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Simplify merges adjacent turns of the same face until no two neighbours
// share a face. R R becomes R2, R R' disappears, R2 R becomes R'.
// The result reaches the same state as the input.
func Simplify(moves []minicube.Move) []minicube.Move {
	out := make([]minicube.Move, 0, len(moves))

	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			quarters := QuarterTurns(out[n-1].Turn) + QuarterTurns(m.Turn)
			out = out[:n-1]
			if turn, ok := NormalizeTurn(quarters); ok {
				out = append(out, minicube.Move{Face: m.Face, Turn: turn})
			}
			continue
		}
		out = append(out, m)
	}

	return out
}

// QuarterTurns returns the clockwise quarter turns a turn represents:
// CW 1, Double 2, CCW 3.
func QuarterTurns(t minicube.Turn) int {
	switch t {
	case minicube.CW:
		return 1
	case minicube.Double:
		return 2
	case minicube.CCW:
		return 3
	}
	return 0
}

// NormalizeTurn converts a count of clockwise quarter turns to a Turn.
// ok is false when the count is a multiple of 4 (no net turn).
// 1 -> CW, 2 -> Double, 3 -> CCW, -1 -> CCW
func NormalizeTurn(quarters int) (minicube.Turn, bool) {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return minicube.CW, true
	case 2:
		return minicube.Double, true
	case 3:
		return minicube.CCW, true
	}
	return 0, false
}
