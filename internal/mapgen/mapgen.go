// Package mapgen builds terrain maps from a numeric seed.
package mapgen

import (
	"fmt"
	"image"
	"image/color"
)

// Terrain is the surface class of a map tile.
type Terrain uint8

const (
	TerrainWater Terrain = iota
	TerrainSand
	TerrainGrass
	TerrainForest
	TerrainHill
	TerrainMountain
	terrainCount // sentinel
)

// TerrainCount is the number of terrain classes.
const TerrainCount = int(terrainCount)

func (t Terrain) String() string {
	switch t {
	case TerrainWater:
		return "water"
	case TerrainSand:
		return "sand"
	case TerrainGrass:
		return "grass"
	case TerrainForest:
		return "forest"
	case TerrainHill:
		return "hill"
	case TerrainMountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// terrainColors is the map-view colour of each terrain.
var terrainColors = [terrainCount]color.RGBA{
	TerrainWater:    {R: 58, G: 96, B: 148, A: 255},
	TerrainSand:     {R: 214, G: 196, B: 140, A: 255},
	TerrainGrass:    {R: 135, G: 174, B: 102, A: 255},
	TerrainForest:   {R: 62, G: 112, B: 70, A: 255},
	TerrainHill:     {R: 140, G: 128, B: 96, A: 255},
	TerrainMountain: {R: 196, G: 196, B: 204, A: 255},
}

// Config holds tuneable map size and noise parameters.
type Config struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	// Noise layer scales (smaller = broader features).
	HeightScale   float64 `yaml:"height_scale"`
	MoistureScale float64 `yaml:"moisture_scale"`
	Octaves       int     `yaml:"octaves"`
	Persistence   float64 `yaml:"persistence"`
	Lacunarity    float64 `yaml:"lacunarity"`

	// Height thresholds (noise value 0-1), each the upper bound of a band.
	WaterLevel float64 `yaml:"water_level"`
	SandLevel  float64 `yaml:"sand_level"`
	HillLevel  float64 `yaml:"hill_level"`
	PeakLevel  float64 `yaml:"peak_level"`

	// Grassland above this moisture becomes forest.
	ForestMoisture float64 `yaml:"forest_moisture"`
}

var DefaultConfig = Config{
	Cols:          160,
	Rows:          90,
	HeightScale:   0.035,
	MoistureScale: 0.05,
	Octaves:       4,
	Persistence:   0.5,
	Lacunarity:    2.0,

	WaterLevel: 0.38,
	SandLevel:  0.42,
	HillLevel:  0.62,
	PeakLevel:  0.70,

	ForestMoisture: 0.58,
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("mapgen: map size %dx%d must be positive", c.Cols, c.Rows)
	case c.Octaves < 1:
		return fmt.Errorf("mapgen: octaves %d must be at least 1", c.Octaves)
	case c.HeightScale <= 0 || c.MoistureScale <= 0:
		return fmt.Errorf("mapgen: noise scales must be positive")
	case !(c.WaterLevel <= c.SandLevel && c.SandLevel <= c.HillLevel && c.HillLevel <= c.PeakLevel):
		return fmt.Errorf("mapgen: height levels must be ascending (water %.2f, sand %.2f, hill %.2f, peak %.2f)",
			c.WaterLevel, c.SandLevel, c.HillLevel, c.PeakLevel)
	}
	return nil
}

// Map is a generated terrain grid.
type Map struct {
	Seed   int
	Cols   int
	Rows   int
	Height []float64 // row-major, [0,1]
	Tiles  []Terrain // row-major
}

// Generate builds a map for seed. The same seed and config always give the
// same map.
func Generate(seed int, cfg Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Map{
		Seed:   seed,
		Cols:   cfg.Cols,
		Rows:   cfg.Rows,
		Height: make([]float64, cfg.Cols*cfg.Rows),
		Tiles:  make([]Terrain, cfg.Cols*cfg.Rows),
	}

	// Two independent noise seeds derived from the map seed.
	heightSeed := int64(seed)*2654435761 + 1
	moistSeed := int64(seed)*40503 + 7

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			i := row*m.Cols + col
			h := fractalNoise2D(float64(col)*cfg.HeightScale, float64(row)*cfg.HeightScale,
				heightSeed, cfg.Octaves, cfg.Persistence, cfg.Lacunarity)
			moist := valueNoise2D(float64(col)*cfg.MoistureScale, float64(row)*cfg.MoistureScale, moistSeed)
			m.Height[i] = h
			m.Tiles[i] = classify(h, moist, cfg)
		}
	}
	return m, nil
}

func classify(h, moist float64, cfg Config) Terrain {
	switch {
	case h < cfg.WaterLevel:
		return TerrainWater
	case h < cfg.SandLevel:
		return TerrainSand
	case h < cfg.HillLevel:
		if moist > cfg.ForestMoisture {
			return TerrainForest
		}
		return TerrainGrass
	case h < cfg.PeakLevel:
		return TerrainHill
	default:
		return TerrainMountain
	}
}

func (m *Map) inBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// At returns the terrain at (col,row). Out-of-bounds reads return water.
func (m *Map) At(col, row int) Terrain {
	if !m.inBounds(col, row) {
		return TerrainWater
	}
	return m.Tiles[row*m.Cols+col]
}

// Composition returns the share of tiles of each terrain, summing to 1.
func (m *Map) Composition() [TerrainCount]float64 {
	var out [TerrainCount]float64
	if len(m.Tiles) == 0 {
		return out
	}
	for _, t := range m.Tiles {
		out[t]++
	}
	for i := range out {
		out[i] /= float64(len(m.Tiles))
	}
	return out
}

// Image renders the map at one pixel per tile.
func (m *Map) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Cols, m.Rows))
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			img.SetRGBA(col, row, terrainColors[m.At(col, row)])
		}
	}
	return img
}
