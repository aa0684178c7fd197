package grid

import "fmt"

// ElementKind enumerates the supported face-ordering families. The successor
// rule below pairs each local face with the cyclically next face around the
// same cell so that the two share exactly one vertex.
type ElementKind uint8

const (
	// KindStructured orders faces axis-wise (-x, +x, -y, +y), as structured
	// grid implementations emit them. Consecutive entries do not share a
	// vertex, so the successor skips ahead with wrap-around.
	KindStructured ElementKind = iota
	// KindPolygonal orders faces cyclically around the cell perimeter; the
	// successor is the simple next face.
	KindPolygonal
)

func (k ElementKind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindPolygonal:
		return "polygonal"
	}
	return fmt.Sprintf("ElementKind(%d)", k)
}

type successorFunc func(face, nFaces int) int

var successors = map[ElementKind]successorFunc{
	KindStructured: structuredSuccessor,
	KindPolygonal:  polygonalSuccessor,
}

// Successor returns the local index of the face paired with face in an
// interaction region. An unregistered element kind is a configuration error.
func Successor(kind ElementKind, face, nFaces int) (int, error) {
	fn, ok := successors[kind]
	if !ok {
		return 0, fmt.Errorf("grid: element kind %s has no successor rule", kind)
	}
	return fn(face, nFaces), nil
}

func structuredSuccessor(face, nFaces int) int {
	next := face + 1
	if next == nFaces {
		return 0
	}
	next++
	if next == nFaces {
		return 1
	}
	return next
}

func polygonalSuccessor(face, nFaces int) int {
	return (face + 1) % nFaces
}
