// Package models loads scene geometry from glTF documents into the render
// engine's world representation.
package models

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
	"github.com/gliderman/3D-Maze-Game/pkg/render"
)

// LoadWorld reads a glTF or GLB file and flattens its triangle primitives
// into a world. Each primitive's material base color is mapped onto the
// nearest entry of the palette; primitives without a material render white.
// Normals, UVs and textures are ignored; the engine paints flat indexed
// color only.
func LoadWorld(path string, p render.Palette, background render.Color) (*render.World, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	world, err := flattenDocument(doc, p, background)
	if err != nil {
		return nil, fmt.Errorf("flatten %q: %w", path, err)
	}
	return world, nil
}

// flattenDocument converts every triangle primitive in the document into
// world triangles.
func flattenDocument(doc *gltf.Document, p render.Palette, background render.Color) (*render.World, error) {
	world := &render.World{Background: background}

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Lines, points, strips: nothing to paint.
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}

			color := primitiveColor(doc, prim, p)

			if prim.Indices != nil {
				indices, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", m.Name, err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					world.Triangles = append(world.Triangles, render.Triangle{
						P1:    positions[indices[i]],
						P2:    positions[indices[i+1]],
						P3:    positions[indices[i+2]],
						Color: color,
					})
				}
			} else {
				for i := 0; i+2 < len(positions); i += 3 {
					world.Triangles = append(world.Triangles, render.Triangle{
						P1:    positions[i],
						P2:    positions[i+1],
						P3:    positions[i+2],
						Color: color,
					})
				}
			}
		}
	}

	return world, nil
}

// primitiveColor maps a primitive's material base color onto the palette.
func primitiveColor(doc *gltf.Document, prim *gltf.Primitive, p render.Palette) render.Color {
	if prim.Material == nil || int(*prim.Material) >= len(doc.Materials) {
		return p.Nearest(255, 255, 255)
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorFactor == nil {
		return p.Nearest(255, 255, 255)
	}
	f := mat.PBRMetallicRoughness.BaseColorFactor
	return p.Nearest(
		uint8(f[0]*255),
		uint8(f[1]*255),
		uint8(f[2]*255),
	)
}

// readPositions reads a VEC3 float accessor into world-space vectors.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, start, stride, err := accessorData(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])),
			float64(readFloat32(data[offset+8:])),
		)
	}
	return result, nil
}

// readIndices reads a scalar index accessor, widening every supported
// component type to int.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var width int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		width = 1
	case gltf.ComponentUshort:
		width = 2
	case gltf.ComponentUint:
		width = 4
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorData(doc, accessor, width)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		switch width {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(uint16(data[offset]) | uint16(data[offset+1])<<8)
		case 4:
			result[i] = int(uint32(data[offset]) |
				uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 |
				uint32(data[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorData resolves an accessor to its backing bytes, the element start
// offset, and the effective stride. Only embedded (GLB) buffers are
// supported.
func accessorData(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) (data []byte, start, stride int, err error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" {
		return nil, 0, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride = bufferView.ByteStride
	if stride == 0 {
		stride = defaultStride
	}
	return buffer.Data, bufferView.ByteOffset + accessor.ByteOffset, stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
