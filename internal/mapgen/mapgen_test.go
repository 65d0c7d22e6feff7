package mapgen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueNoise2D_Range(t *testing.T) {
	seed := int64(12345)
	for y := -10.0; y < 10.0; y += 0.37 {
		for x := -10.0; x < 10.0; x += 0.37 {
			v := valueNoise2D(x, y, seed)
			if v < 0 || v > 1 {
				t.Fatalf("noise at (%.2f,%.2f) = %f, out of [0,1]", x, y, v)
			}
		}
	}
}

func TestFractalNoise2D_RangeAndDeterminism(t *testing.T) {
	for y := 0.0; y < 5.0; y += 0.41 {
		for x := 0.0; x < 5.0; x += 0.41 {
			a := fractalNoise2D(x, y, 77, 4, 0.5, 2)
			b := fractalNoise2D(x, y, 77, 4, 0.5, 2)
			require.Equal(t, a, b)
			require.True(t, a >= 0 && a <= 1, "fractal noise %f out of [0,1]", a)
		}
	}
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	a, err := Generate(42, DefaultConfig)
	require.NoError(t, err)
	b, err := Generate(42, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, a.Tiles, b.Tiles)

	c, err := Generate(43, DefaultConfig)
	require.NoError(t, err)
	require.NotEqual(t, a.Tiles, c.Tiles, "different seeds should give different maps")
}

func TestGenerate_VariedTerrain(t *testing.T) {
	m, err := Generate(12345678, DefaultConfig)
	require.NoError(t, err)
	require.Len(t, m.Tiles, DefaultConfig.Cols*DefaultConfig.Rows)

	comp := m.Composition()
	sum := 0.0
	kinds := 0
	for _, share := range comp {
		sum += share
		if share > 0 {
			kinds++
		}
	}
	require.InDelta(t, 1.0, sum, 1e-9)
	require.GreaterOrEqual(t, kinds, 3, "expected at least 3 terrain kinds, got %v", comp)
}

func TestGenerate_RejectsBadConfig(t *testing.T) {
	bad := []Config{
		{},
		func() Config { c := DefaultConfig; c.Octaves = 0; return c }(),
		func() Config { c := DefaultConfig; c.SandLevel = c.WaterLevel - 0.1; return c }(),
		func() Config { c := DefaultConfig; c.HeightScale = 0; return c }(),
	}
	for i, cfg := range bad {
		_, err := Generate(1, cfg)
		require.Error(t, err, "config %d should be rejected", i)
	}
}

func TestClassify_Bands(t *testing.T) {
	cfg := DefaultConfig
	cases := []struct {
		h, moist float64
		want     Terrain
	}{
		{0.0, 0, TerrainWater},
		{cfg.WaterLevel, 0, TerrainSand},
		{cfg.SandLevel, 0, TerrainGrass},
		{cfg.SandLevel, 1, TerrainForest},
		{cfg.HillLevel, 1, TerrainHill},
		{cfg.PeakLevel, 0, TerrainMountain},
		{1.0, 0, TerrainMountain},
	}
	for _, c := range cases {
		if got := classify(c.h, c.moist, cfg); got != c.want {
			t.Fatalf("classify(%.2f, %.2f) = %s, want %s", c.h, c.moist, got, c.want)
		}
	}
}

func TestMap_Image(t *testing.T) {
	cfg := DefaultConfig
	cfg.Cols, cfg.Rows = 20, 10
	m, err := Generate(5, cfg)
	require.NoError(t, err)

	img := m.Image()
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())
	require.Equal(t, terrainColors[m.At(3, 4)], img.RGBAAt(3, 4))
	require.Equal(t, TerrainWater, m.At(-1, 0))
}

func TestWorker_DispatchIsAsync(t *testing.T) {
	cfg := DefaultConfig
	cfg.Cols, cfg.Rows = 32, 18
	w := NewWorker(cfg, nil)

	if _, ok := w.Poll(); ok {
		t.Fatal("poll returned a result before any dispatch")
	}
	w.Dispatch(99)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := w.Wait(ctx)
	require.NoError(t, err)
	require.NoError(t, res.Err)
	require.Equal(t, 99, res.Seed)

	want, err := Generate(99, cfg)
	require.NoError(t, err)
	require.Equal(t, want.Tiles, res.Map.Tiles)
}

func TestWorker_ReportsGenerationError(t *testing.T) {
	w := NewWorker(Config{}, nil)
	w.Dispatch(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := w.Wait(ctx)
	require.NoError(t, err)
	require.Error(t, res.Err)
	require.Nil(t, res.Map)
}

func TestWorker_WaitHonoursContext(t *testing.T) {
	w := NewWorker(DefaultConfig, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
