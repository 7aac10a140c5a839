package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteOBJ(t *testing.T) {
	vertices := []OBJVertex{
		{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{0, 0.5, 1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
	}
	faces := [][3]uint32{{0, 1, 2}}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, "terrain", vertices, faces); err != nil {
		t.Fatalf("WriteOBJ() error: %v", err)
	}

	want := strings.Join([]string{
		"# 3 vertices, 1 faces",
		"o terrain",
		"v 0 0 0",
		"v 0 0.5 1",
		"v 1 0 0",
		"vt 1 1",
		"vt 1 0",
		"vt 0 1",
		"vn 0 1 0",
		"vn 0 1 0",
		"vn 0 1 0",
		"f 1/1/1 2/2/2 3/3/3",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteOBJ() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteOBJIndexRange(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOBJ(&buf, "", make([]OBJVertex, 2), [][3]uint32{{0, 1, 2}})
	if !errors.Is(err, ErrOBJIndex) {
		t.Errorf("WriteOBJ() error = %v, want %v", err, ErrOBJIndex)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteOBJ() wrote %d bytes before failing", buf.Len())
	}
}
