// Package meshio loads triangle meshes from disk for feeding into the
// build package. Only vertex positions and triangular face indices are
// read; per-vertex normals, colors, texture coordinates and the other
// rendering-only PLY properties are skipped on the wire without being
// materialized.
package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
)

// plyProperty is a single property definition from a PLY header.
type plyProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string
	DataType string
}

type plyHeader struct {
	Format      string
	VertexCount int
	FaceCount   int
	VertexProps []plyProperty
	FaceProps   []plyProperty
}

// LoadPLYTriangles reads a binary little-endian PLY file and returns its
// faces as a flat triangle list, ready for build.BuildBVH3. Only the x,
// y, z vertex properties and the vertex_indices face list are consulted;
// every other property is skipped.
func LoadPLYTriangles(filename string) ([][3]bvol.Vec3[float64], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening PLY file: %w", err)
	}
	defer file.Close()

	header, headerSize, err := parsePLYHeader(file)
	if err != nil {
		return nil, fmt.Errorf("parsing PLY header: %w", err)
	}

	if _, err := file.Seek(int64(headerSize), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to PLY data: %w", err)
	}

	switch header.Format {
	case "binary_little_endian":
	case "binary_big_endian":
		return nil, fmt.Errorf("binary big-endian PLY format not supported")
	case "ascii":
		return nil, fmt.Errorf("ASCII PLY format not supported")
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	vertices, err := readVertices(file, header)
	if err != nil {
		return nil, fmt.Errorf("reading PLY vertices: %w", err)
	}

	faces, err := readFaceIndices(file, header)
	if err != nil {
		return nil, fmt.Errorf("reading PLY faces: %w", err)
	}

	tris := make([][3]bvol.Vec3[float64], 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		a, b, c := faces[i], faces[i+1], faces[i+2]
		if a < 0 || b < 0 || c < 0 || a >= len(vertices) || b >= len(vertices) || c >= len(vertices) {
			return nil, fmt.Errorf("face %d references out-of-range vertex index", i/3)
		}
		tris = append(tris, [3]bvol.Vec3[float64]{vertices[a], vertices[b], vertices[c]})
	}
	return tris, nil
}

func parsePLYHeader(file *os.File) (*plyHeader, int, error) {
	header := &plyHeader{}

	scanner := bufio.NewScanner(file)
	var bytesRead int
	var currentElement string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bytesRead += len(scanner.Bytes()) + 1

		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 2 {
				header.Format = parts[1]
			}
		case "element":
			if len(parts) < 3 {
				continue
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, 0, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, 0, fmt.Errorf("parsing property: %w", err)
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	return header, bytesRead, nil
}

func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}
	return plyProperty{Type: parts[0], Name: parts[1]}, nil
}

func typeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 4
	}
}

func vertexStride(props []plyProperty) int {
	stride := 0
	for _, p := range props {
		if !p.IsList {
			stride += typeSize(p.Type)
		}
	}
	return stride
}

// readVertices bulk-reads the vertex block and extracts only x, y, z.
func readVertices(file *os.File, header *plyHeader) ([]bvol.Vec3[float64], error) {
	stride := vertexStride(header.VertexProps)
	data := make([]byte, stride*header.VertexCount)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, fmt.Errorf("reading vertex block: %w", err)
	}

	vertices := make([]bvol.Vec3[float64], header.VertexCount)
	for i := 0; i < header.VertexCount; i++ {
		offset := i * stride
		x, y, z, err := parseVertexPosition(data[offset:offset+stride], header.VertexProps)
		if err != nil {
			return nil, err
		}
		vertices[i] = bvol.Vec3[float64]{X: x, Y: y, Z: z}
	}
	return vertices, nil
}

func parseVertexPosition(data []byte, props []plyProperty) (x, y, z float64, err error) {
	offset := 0
	for _, prop := range props {
		if prop.IsList {
			continue
		}
		size := typeSize(prop.Type)
		if offset+size > len(data) {
			return 0, 0, 0, fmt.Errorf("vertex record shorter than declared properties")
		}

		switch prop.Name {
		case "x", "y", "z":
			v, rerr := readFloatField(data[offset:offset+size], prop.Type)
			if rerr != nil {
				return 0, 0, 0, rerr
			}
			switch prop.Name {
			case "x":
				x = v
			case "y":
				y = v
			case "z":
				z = v
			}
		}
		offset += size
	}
	return x, y, z, nil
}

func readFloatField(buf []byte, dataType string) (float64, error) {
	r := bytes.NewReader(buf)
	switch dataType {
	case "float", "float32":
		var v float32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return float64(v), nil
	case "double", "float64":
		var v float64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported vertex position type: %s", dataType)
	}
}

// readFaceIndices reads the face block, keeping only vertex_indices and
// skipping every other face property on the wire.
func readFaceIndices(file *os.File, header *plyHeader) ([]int, error) {
	bufReader := bufio.NewReaderSize(file, 1<<20)
	faces := make([]int, 0, header.FaceCount*3)

	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if prop.IsList && prop.Name == "vertex_indices" {
				indices, err := readTriangleIndices(bufReader, prop)
				if err != nil {
					return nil, fmt.Errorf("face %d: %w", i, err)
				}
				faces = append(faces, indices[0], indices[1], indices[2])
				continue
			}
			if err := skipProperty(bufReader, prop); err != nil {
				return nil, fmt.Errorf("skipping face %d property %s: %w", i, prop.Name, err)
			}
		}
	}
	return faces, nil
}

func readTriangleIndices(r *bufio.Reader, prop plyProperty) ([3]int, error) {
	var vertexCount int
	switch prop.ListType {
	case "uchar", "uint8":
		var count uint8
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return [3]int{}, err
		}
		vertexCount = int(count)
	case "int", "int32":
		var count int32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return [3]int{}, err
		}
		vertexCount = int(count)
	default:
		return [3]int{}, fmt.Errorf("unsupported list count type: %s", prop.ListType)
	}
	if vertexCount != 3 {
		return [3]int{}, fmt.Errorf("only triangular faces are supported, got %d vertices", vertexCount)
	}

	var indices [3]int
	switch prop.DataType {
	case "int", "int32":
		var buf [3]int32
		if err := binary.Read(r, binary.LittleEndian, &buf); err != nil {
			return [3]int{}, err
		}
		indices = [3]int{int(buf[0]), int(buf[1]), int(buf[2])}
	case "uint", "uint32":
		var buf [3]uint32
		if err := binary.Read(r, binary.LittleEndian, &buf); err != nil {
			return [3]int{}, err
		}
		indices = [3]int{int(buf[0]), int(buf[1]), int(buf[2])}
	default:
		return [3]int{}, fmt.Errorf("unsupported face index data type: %s", prop.DataType)
	}
	return indices, nil
}

// skipProperty discards one property's bytes without allocating a
// buffer for its value.
func skipProperty(r *bufio.Reader, prop plyProperty) error {
	if !prop.IsList {
		_, err := r.Discard(typeSize(prop.Type))
		return err
	}

	var count int
	switch prop.ListType {
	case "uchar", "uint8":
		var c uint8
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return err
		}
		count = int(c)
	case "int", "int32":
		var c int32
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return err
		}
		count = int(c)
	default:
		return fmt.Errorf("unsupported list count type: %s", prop.ListType)
	}

	_, err := r.Discard(count * typeSize(prop.DataType))
	return err
}
