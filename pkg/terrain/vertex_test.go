package terrain

import (
	"math"
	"testing"
)

func flatHeights(resolution int, h float32) []float32 {
	s := make([]float32, resolution*resolution)
	for i := range s {
		s[i] = h
	}
	return s
}

func nan32() float32 {
	return float32(math.NaN())
}

func TestBuildVertexDataLength(t *testing.T) {
	for _, res := range []int{2, 3, 16, 65} {
		data := BuildVertexData(res, 0.5, flatHeights(res, 1))
		want := (res + 2) * (res + 2) * VertexFloats
		if len(data) != want {
			t.Errorf("resolution %d: got %d floats, want %d", res, len(data), want)
		}
	}
}

func TestBuildVertexDataFlatSkirt(t *testing.T) {
	// All heights H: every core vertex sits at H, every skirt vertex at
	// H - skirtHeight.
	const res = 2
	const h = 1.0
	const skirt = 0.1
	data := BuildVertexData(res, skirt, flatHeights(res, h))

	n := res + 2
	var core, border int
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			y := data[(j*n+i)*VertexFloats+1]
			isCore := i >= 1 && i <= res && j >= 1 && j <= res
			if isCore {
				core++
				if y != h {
					t.Errorf("core vertex (%d,%d): y = %g, want %g", i, j, y, float32(h))
				}
			} else {
				border++
				if math.Abs(float64(y-(h-skirt))) > 1e-6 {
					t.Errorf("skirt vertex (%d,%d): y = %g, want %g", i, j, y, float32(h-skirt))
				}
			}
		}
	}
	if core != 4 || border != 12 {
		t.Errorf("got %d core / %d border vertices, want 4 / 12", core, border)
	}
}

func TestBuildVertexDataPlanarLayout(t *testing.T) {
	const res = 3
	data := BuildVertexData(res, 0.2, flatHeights(res, 0))

	n := res + 2
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			base := (j*n + i) * VertexFloats
			x, z := data[base], data[base+2]
			u, v := data[base+3], data[base+4]

			// Planar position of the clamped core sample.
			iB := clampi(i-1, 0, res-1)
			jB := clampi(j-1, 0, res-1)
			wantX := -0.5 + float32(iB)/float32(res-1)
			wantZ := -0.5 + float32(jB)/float32(res-1)
			if x != wantX || z != wantZ {
				t.Errorf("vertex (%d,%d): position (%g,%g), want (%g,%g)", i, j, x, z, wantX, wantZ)
			}

			wantU := float32(iB) / float32(res-1)
			wantV := float32(jB) / float32(res-1)
			if u != wantU || v != wantV {
				t.Errorf("vertex (%d,%d): texcoord (%g,%g), want (%g,%g)", i, j, u, v, wantU, wantV)
			}

			if data[base+5] != 0 || data[base+6] != 1 || data[base+7] != 0 {
				t.Errorf("vertex (%d,%d): normal (%g,%g,%g), want (0,1,0)",
					i, j, data[base+5], data[base+6], data[base+7])
			}
		}
	}
}

func TestBuildVertexDataNoDataSentinel(t *testing.T) {
	heights := []float32{1, nan32(), 1, 1}
	data := BuildVertexData(2, 0.1, heights)

	// No NaN may survive anywhere in the buffer.
	for i, f := range data {
		if math.IsNaN(float64(f)) {
			t.Fatalf("float %d is NaN", i)
		}
	}

	// The core vertex for the missing sample carries the sentinel height.
	n := 4
	base := (1*n + 2) * VertexFloats // core (1,0) = expanded (2,1)
	if y := data[base+1]; y != 0 {
		t.Errorf("no-data core vertex: y = %g, want 0", y)
	}
}

func TestBuildVertexDataSkirtOfNoDataEdge(t *testing.T) {
	// A skirt vertex next to a missing edge sample computes NaN - skirt,
	// which is still NaN and must also collapse to the sentinel.
	heights := []float32{1, nan32(), 1, 1}
	data := BuildVertexData(2, 0.1, heights)

	n := 4
	base := (0*n + 3) * VertexFloats // skirt corner above core (1,0)
	if y := data[base+1]; y != 0 {
		t.Errorf("skirt vertex of no-data edge: y = %g, want 0", y)
	}
}

func TestBuildVertexDataPanics(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		heights    []float32
	}{
		{"resolution below 2", 1, []float32{1}},
		{"too few samples", 3, flatHeights(2, 1)},
		{"too many samples", 2, flatHeights(3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			BuildVertexData(tt.resolution, 0, tt.heights)
		})
	}
}
