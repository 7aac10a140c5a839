package app

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/drawable"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer"
	"github.com/Faultbox/midgard-terrain/internal/engine/shader"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/texture"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// scene holds the terrain and the light marker with their programs.
type scene struct {
	lightColor mgl32.Vec3
	lightPos   mgl32.Vec3
	showLight  bool

	terrainProg *shader.Program
	lightProg   *shader.Program
	grass       *renderer.Texture
	ground      *renderer.Object
	light       *renderer.Object
}

func newScene(cfg *config.Config) (*scene, error) {
	s := &scene{
		lightColor: mgl32.Vec3(cfg.Render.LightColor),
		lightPos:   mgl32.Vec3(cfg.Render.LightPosition),
		showLight:  cfg.Render.ShowLight,
	}
	if err := s.load(cfg); err != nil {
		s.delete()
		return nil, err
	}
	return s, nil
}

func (s *scene) load(cfg *config.Config) error {
	var err error
	if s.terrainProg, err = shader.New(shader.TerrainVertex, shader.TerrainFragment); err != nil {
		return fmt.Errorf("terrain shader: %w", err)
	}
	if s.lightProg, err = shader.New(shader.LightVertex, shader.LightFragment); err != nil {
		return fmt.Errorf("light shader: %w", err)
	}

	if s.grass, err = loadTexture(cfg.Render.Texture); err != nil {
		return err
	}

	desc, err := generateTerrain(cfg)
	if err != nil {
		return err
	}
	if s.ground, err = renderer.NewObject(desc, mgl32.Vec3{}, s.grass); err != nil {
		return fmt.Errorf("terrain upload: %w", err)
	}

	cube, err := drawable.Cube{}.Descriptor()
	if err != nil {
		return err
	}
	if s.light, err = renderer.NewObject(cube, s.lightPos, nil); err != nil {
		return fmt.Errorf("light marker upload: %w", err)
	}
	s.light.Transform.Scale = mgl32.Vec3{lightMarkerScale, lightMarkerScale, lightMarkerScale}
	return nil
}

// generateTerrain runs mesh synthesis and logs what it produced.
func generateTerrain(cfg *config.Config) (*drawable.Descriptor, error) {
	opts, err := cfg.TerrainOptions()
	if err != nil {
		return nil, err
	}
	tr, err := terrain.New(opts)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}

	start := time.Now()
	mesh, err := tr.Mesh()
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	stats := mesh.Stats()
	logger.Info("terrain generated",
		zap.Int("size", opts.Size),
		zap.Int64("seed", opts.Seed),
		zap.Stringer("strip", opts.Layout),
		zap.Int("vertices", stats.Vertices),
		zap.Int("indices", stats.Indices),
		zap.Int("slivers", stats.Slivers),
		zap.Float32("min_height", stats.MinHeight),
		zap.Float32("max_height", stats.MaxHeight),
		zap.Duration("elapsed", time.Since(start)),
	)
	return mesh.Descriptor(), nil
}

// loadTexture uploads the image at path, or a checkerboard if it is missing.
func loadTexture(path string) (*renderer.Texture, error) {
	img, format, err := texture.Load(path)
	switch {
	case err == nil:
		logger.Debug("texture loaded", zap.String("path", path), zap.String("format", format))
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("texture not found, using checkerboard", zap.String("path", path))
		img = texture.Checker(64, 8,
			color.RGBA{R: 74, G: 122, B: 56, A: 255},
			color.RGBA{R: 96, G: 148, B: 70, A: 255},
		)
	default:
		return nil, err
	}
	tex, err := renderer.NewTexture(img)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return tex, nil
}

func (s *scene) draw(view, projection mgl32.Mat4) {
	s.terrainProg.Use()
	s.terrainProg.SetMat4("view", view)
	s.terrainProg.SetMat4("projection", projection)
	s.terrainProg.SetMat4("model", s.ground.Model())
	s.terrainProg.SetInt("diffuse", 0)
	s.terrainProg.SetVec3("lightColor", s.lightColor)
	s.terrainProg.SetVec3("lightPos", s.lightPos)
	s.ground.Draw()

	if !s.showLight {
		return
	}
	s.lightProg.Use()
	s.lightProg.SetMat4("view", view)
	s.lightProg.SetMat4("projection", projection)
	s.lightProg.SetMat4("model", s.light.Model())
	s.lightProg.SetVec3("lightColor", s.lightColor)
	s.light.Draw()
}

func (s *scene) delete() {
	if s.ground != nil {
		s.ground.Delete()
	}
	if s.light != nil {
		s.light.Delete()
	}
	if s.grass != nil {
		s.grass.Delete()
	}
	if s.terrainProg != nil {
		s.terrainProg.Delete()
	}
	if s.lightProg != nil {
		s.lightProg.Delete()
	}
}
