package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// OBJVertex is one vertex written to an OBJ file.
type OBJVertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// ErrOBJIndex reports a face that references a missing vertex.
var ErrOBJIndex = errors.New("obj: face index out of range")

// WriteOBJ writes vertices and triangles as a Wavefront OBJ object. Position,
// normal and uv share one index per vertex. Face indices are zero-based and
// written one-based.
func WriteOBJ(w io.Writer, name string, vertices []OBJVertex, faces [][3]uint32) error {
	for i, f := range faces {
		for _, idx := range f {
			if int(idx) >= len(vertices) {
				return fmt.Errorf("%w: face %d index %d, %d vertices", ErrOBJIndex, i, idx, len(vertices))
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", len(vertices), len(faces))
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for _, f := range faces {
		a, b, c := f[0]+1, f[1]+1, f[2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}
