package boxgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

func LoadGeometryFromDXFFile(fileName string, reverse int, size float64) (*Geometry, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open DXF file %s: %w", fileName, err)
	}
	defer file.Close()

	geom, err := NewGeometryFromDXF(file, reverse, size)
	if err != nil {
		return nil, fmt.Errorf("error parsing DXF file %s: %w", fileName, err)
	}

	return geom, nil
}

// NewGeometryFromDXF reads the 3DFACE entities of a simplified DXF stream into
// a finished Geometry scaled to size.
func NewGeometryFromDXF(reader io.Reader, reverse int, size float64) (*Geometry, error) {
	geom := NewGeometry()
	scanner := bufio.NewScanner(reader)

	readFloatLine := func() (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse float value '%s': %w", scanner.Text(), err)
		}
		return val, nil
	}

	faces := 0
	for scanner.Scan() {
		if !strings.HasPrefix(strings.TrimSpace(scanner.Text()), "3DFACE") {
			continue
		}

		// layer group code, layer name, first coordinate group code
		for i := 0; i < 3; i++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("unexpected end of file while parsing 3DFACE header")
			}
		}

		corners := make([]mgl64.Vec3, 0, 4)
		for c := 0; c < 4; c++ {
			var p mgl64.Vec3
			for axis := 0; axis < 3; axis++ {
				v, err := readFloatLine()
				if err != nil {
					return nil, fmt.Errorf("error reading coordinate %d of vertex %d: %w", axis, c, err)
				}
				p[axis] = v
				scanner.Scan() // group code of the next value
			}
			corners = append(corners, p)
		}

		geom.AddFace(corners, reverse)
		faces++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from DXF source: %w", err)
	}
	if geom.FaceCount() == 0 {
		return nil, fmt.Errorf("no usable 3DFACE entities (read %d)", faces)
	}

	log.WithField("faces", geom.FaceCount()).Info("Loaded DXF geometry")
	geom.Finished(size)
	return geom, nil
}
