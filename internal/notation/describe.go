package notation

import "github.com/SeamusWaldron/minicube"

var faceNames = map[minicube.Face]string{
	minicube.FaceR: "right",
	minicube.FaceL: "left",
	minicube.FaceU: "top",
	minicube.FaceD: "bottom",
	minicube.FaceF: "front",
	minicube.FaceB: "back",
}

// Describe converts a Move to a plain-English phrase.
// Directions are as seen looking straight at the turned face.
//
//	R  -> "right face clockwise"
//	U' -> "top face anti-clockwise"
//	F2 -> "front face half turn"
func Describe(m minicube.Move) string {
	name, ok := faceNames[m.Face]
	if !ok {
		return m.Notation()
	}

	switch m.Turn {
	case minicube.CW:
		return name + " face clockwise"
	case minicube.CCW:
		return name + " face anti-clockwise"
	case minicube.Double:
		return name + " face half turn"
	}
	return m.Notation()
}
