package main

import (
	gomath "math"

	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

func cosf(a float64) float32 { return float32(gomath.Cos(a)) }
func sinf(a float64) float32 { return float32(gomath.Sin(a)) }

// gridPatch appends a rows x cols quad grid to the buffers, offset by
// (ox, oy, oz). Returns the updated buffers.
func gridPatch(positions []float32, faces []int32, cols, rows int, ox, oy, oz, spacing float32) ([]float32, []int32) {
	base := int32(len(positions) / 3)

	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			positions = append(positions,
				ox+float32(c)*spacing,
				oy+float32(r)*spacing,
				oz,
			)
		}
	}

	stride := int32(cols + 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := base + int32(r)*stride + int32(c)
			faces = append(faces, v, v+1, v+1+stride, v+stride)
		}
	}
	return positions, faces
}

// fanPatch appends a triangle fan around a center vertex. The fan is a
// separate connected component so flood fill has something to find.
func fanPatch(positions []float32, faces []int32, segments int, ox, oy, oz, radius float32) ([]float32, []int32) {
	base := int32(len(positions) / 3)

	positions = append(positions, ox, oy, oz)
	for i := 0; i < segments; i++ {
		angle := float64(i) / float64(segments) * 2 * gomath.Pi
		positions = append(positions,
			ox+radius*cosf(angle),
			oy+radius*sinf(angle),
			oz,
		)
	}

	for i := int32(0); i < int32(segments); i++ {
		next := (i+1)%int32(segments) + 1
		faces = append(faces, base, base+1+i, base+next, mesh.QuadSentinel)
	}
	return positions, faces
}

// buildDemoMesh creates the demo scene: a quad grid and a detached
// triangle fan, so both quad and triangle topology and multiple
// connected components are on screen.
func buildDemoMesh() *mesh.Mesh {
	var positions []float32
	var faces []int32

	positions, faces = gridPatch(positions, faces, 6, 4, -3.5, -1.0, 0, 0.5)
	positions, faces = fanPatch(positions, faces, 8, 2.0, 0, 0, 0.8)

	return mesh.New(positions, faces)
}
