package terrain

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// DEM format errors.
var (
	ErrInvalidDEMMagic       = errors.New("invalid DEM magic: expected 'DEMT'")
	ErrUnsupportedDEMVersion = errors.New("unsupported DEM version")
	ErrInvalidDEMResolution  = errors.New("invalid DEM resolution")
	ErrTruncatedDEMData      = errors.New("truncated DEM data")
)

var demMagic = [4]byte{'D', 'E', 'M', 'T'}

const demVersion = 1

// maxDEMResolution bounds the sample count a header may claim, keeping a
// malformed file from triggering a huge allocation.
const maxDEMResolution = 1 << 14

// demHeader is the fixed little-endian file header.
type demHeader struct {
	Magic      [4]byte
	Version    uint8
	_          [3]byte // padding
	Resolution uint32
	NoData     float32 // sample value that marks "no data"; NaN if unused
}

// DEM is a decoded heightmap tile. Samples are row-major float32 with NaN
// marking missing data, ready to feed the geometry builders.
type DEM struct {
	Resolution int
	Samples    []float32
}

// Heightmap returns the tile's samples as a builder-ready Heightmap.
func (d *DEM) Heightmap() Heightmap {
	return NewHeightmap(d.Resolution, d.Samples)
}

// ReadDEM loads and decodes a DEM tile file.
func ReadDEM(path string) (*DEM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading DEM file: %w", err)
	}
	dem, err := DecodeDEM(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return dem, nil
}

// DecodeDEM parses a DEM tile from raw bytes.
// Samples equal to the header's no-data value are rewritten to NaN so that
// downstream code has a single missing-data representation.
func DecodeDEM(data []byte) (*DEM, error) {
	r := bytes.NewReader(data)

	var hdr demHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, ErrTruncatedDEMData
	}
	if hdr.Magic != demMagic {
		return nil, ErrInvalidDEMMagic
	}
	if hdr.Version != demVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDEMVersion, hdr.Version)
	}
	if hdr.Resolution < 2 || hdr.Resolution > maxDEMResolution {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDEMResolution, hdr.Resolution)
	}

	count := int(hdr.Resolution) * int(hdr.Resolution)
	samples := make([]float32, count)
	if err := binary.Read(r, binary.LittleEndian, samples); err != nil {
		return nil, ErrTruncatedDEMData
	}

	if !math.IsNaN(float64(hdr.NoData)) {
		for i, s := range samples {
			if s == hdr.NoData {
				samples[i] = float32(math.NaN())
			}
		}
	}

	return &DEM{Resolution: int(hdr.Resolution), Samples: samples}, nil
}

// EncodeDEM serializes a heightmap as a DEM tile. NaN samples are written as
// the given noData value when it is finite, NaN otherwise.
func EncodeDEM(hm Heightmap, noData float32) []byte {
	var buf bytes.Buffer

	hdr := demHeader{
		Magic:      demMagic,
		Version:    demVersion,
		Resolution: uint32(hm.Resolution),
		NoData:     noData,
	}
	// Writing to a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, hdr)

	samples := hm.Samples
	if !math.IsNaN(float64(noData)) {
		samples = make([]float32, len(hm.Samples))
		for i, s := range hm.Samples {
			if math.IsNaN(float64(s)) {
				samples[i] = noData
			} else {
				samples[i] = s
			}
		}
	}
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// WriteDEM encodes a heightmap and writes it to path.
func WriteDEM(path string, hm Heightmap, noData float32) error {
	if err := os.WriteFile(path, EncodeDEM(hm, noData), 0o644); err != nil {
		return fmt.Errorf("writing DEM file: %w", err)
	}
	return nil
}
