package shader

import _ "embed"

// Built-in GLSL 4.1 sources. The terrain program expects position, normal and
// uv at locations 0, 1 and 2.
var (
	//go:embed shaders/terrain.vert
	TerrainVertex string
	//go:embed shaders/terrain.frag
	TerrainFragment string

	//go:embed shaders/light.vert
	LightVertex string
	//go:embed shaders/light.frag
	LightFragment string
)
