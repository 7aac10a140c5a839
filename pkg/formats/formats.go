// Package formats reads and writes terrain interchange files: Wavefront OBJ
// meshes and 16-bit grayscale PNG heightmaps.
package formats
