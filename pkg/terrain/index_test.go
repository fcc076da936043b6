package terrain

import "testing"

func TestBuildIndexDataLength(t *testing.T) {
	for _, res := range []int{2, 3, 16, 65} {
		indices := BuildIndexData(res, flatHeights(res, 1))
		want := 3 * 2 * (res + 1) * (res + 1)
		if len(indices) != want {
			t.Errorf("resolution %d: got %d indices, want %d", res, len(indices), want)
		}
	}
}

func TestBuildIndexDataDiagonalSplit(t *testing.T) {
	// With no missing data every quad splits along the same fixed diagonal:
	// (topLeft, bottomLeft, topRight) then (bottomLeft, bottomRight, topRight).
	const res = 3
	indices := BuildIndexData(res, flatHeights(res, 2))

	n := res + 2
	quad := 0
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			topLeft := uint32(j*n + i)
			topRight := topLeft + 1
			bottomLeft := uint32((j+1)*n + i)
			bottomRight := bottomLeft + 1

			got := indices[quad*6 : quad*6+6]
			want := []uint32{topLeft, bottomLeft, topRight, bottomLeft, bottomRight, topRight}
			for k := range want {
				if got[k] != want[k] {
					t.Fatalf("quad (%d,%d): indices %v, want %v", i, j, got, want)
				}
			}
			quad++
		}
	}
}

func TestBuildIndexDataAllIndicesValid(t *testing.T) {
	const res = 4
	indices := BuildIndexData(res, flatHeights(res, 0))
	limit := uint32(VertexCount(res))
	for i, idx := range indices {
		if idx >= limit {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, limit)
		}
	}
}

func TestBuildIndexDataNoData(t *testing.T) {
	// Core sample (1,0) missing: every quad whose clamped corners reach it
	// must degenerate, the rest keep the normal split.
	heights := []float32{1, nan32(), 1, 1}
	const res = 2
	indices := BuildIndexData(res, heights)

	degenerate := map[[2]int]bool{
		{1, 0}: true, {2, 0}: true,
		{1, 1}: true, {2, 1}: true,
	}

	n := res + 2
	quad := 0
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			tri1 := indices[quad*6 : quad*6+3]
			tri2 := indices[quad*6+3 : quad*6+6]
			isDegenerate := tri1[0] == tri1[1] && tri1[1] == tri1[2] &&
				tri2[0] == tri2[1] && tri2[1] == tri2[2]

			if degenerate[[2]int{i, j}] {
				if !isDegenerate {
					t.Errorf("quad (%d,%d): expected degenerate triangles, got %v %v", i, j, tri1, tri2)
				}
				if anchor := uint32(j*n + i); tri1[0] != anchor {
					t.Errorf("quad (%d,%d): degenerate anchor %d, want %d", i, j, tri1[0], anchor)
				}
			} else if isDegenerate {
				t.Errorf("quad (%d,%d): unexpected degenerate triangles", i, j)
			}
			quad++
		}
	}
}

func TestBuildIndexDataAllNoData(t *testing.T) {
	const res = 2
	heights := []float32{nan32(), nan32(), nan32(), nan32()}
	indices := BuildIndexData(res, heights)

	if len(indices) != IndexCount(res) {
		t.Fatalf("got %d indices, want %d", len(indices), IndexCount(res))
	}
	for tri := 0; tri+2 < len(indices); tri += 3 {
		if indices[tri] != indices[tri+1] || indices[tri+1] != indices[tri+2] {
			t.Fatalf("triangle %d not degenerate: %v", tri/3, indices[tri:tri+3])
		}
	}
}
