package terrain

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ dumps the tile mesh as Wavefront OBJ for inspection in a model
// viewer. Degenerate no-data triangles are skipped; they only exist to keep
// the index buffer at its fixed size and would confuse OBJ tooling.
func (g *TileGeometry) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	vd := g.vertexData
	for base := 0; base+VertexFloats <= len(vd); base += VertexFloats {
		fmt.Fprintf(bw, "v %g %g %g\n", vd[base], vd[base+1], vd[base+2])
		fmt.Fprintf(bw, "vt %g %g\n", vd[base+3], vd[base+4])
		fmt.Fprintf(bw, "vn %g %g %g\n", vd[base+5], vd[base+6], vd[base+7])
	}

	for tri := 0; tri+2 < len(g.indexData); tri += 3 {
		a, b, c := g.indexData[tri], g.indexData[tri+1], g.indexData[tri+2]
		if a == b && b == c {
			continue
		}
		// OBJ indices are 1-based.
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
	}

	return bw.Flush()
}
