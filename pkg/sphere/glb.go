package sphere

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/planet/pkg/math3d"
)

// LoadGLB reads the POSITION attribute of every mesh primitive in a GLB or
// GLTF file and returns the positions normalized onto the unit sphere.
func LoadGLB(path string) ([]math3d.Vec3, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var points []math3d.Vec3
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			points = append(points, positions...)
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%s: no POSITION data", path)
	}
	return Custom(points), nil
}

// SaveGLB writes points as a single POINTS primitive in a binary GLTF file.
func SaveGLB(path string, points []math3d.Vec3) error {
	if len(points) == 0 {
		return fmt.Errorf("save glb: no points")
	}

	data := make([]byte, len(points)*12)
	lo := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, p := range points {
		for j, c := range [3]float64{p.X, p.Y, p.Z} {
			binary.LittleEndian.PutUint32(data[i*12+j*4:], math.Float32bits(float32(c)))
			lo[j] = math.Min(lo[j], c)
			hi[j] = math.Max(hi[j], c)
		}
	}

	doc := &gltf.Document{
		Asset:   gltf.Asset{Version: "2.0", Generator: "planet"},
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{{
			Buffer:     0,
			ByteLength: len(data),
			Target:     gltf.TargetArrayBuffer,
		}},
		Accessors: []*gltf.Accessor{{
			BufferView:    gltf.Index(0),
			ComponentType: gltf.ComponentFloat,
			Count:         len(points),
			Type:          gltf.AccessorVec3,
			Min:           lo,
			Max:           hi,
		}},
		Meshes: []*gltf.Mesh{{
			Name: "labels",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Mode:       gltf.PrimitivePoints,
			}},
		}},
		Nodes:  []*gltf.Node{{Name: "labels", Mesh: gltf.Index(0)}},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
		Scene:  gltf.Index(0),
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected FLOAT components, got %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.URI != "" && buffer.Data == nil {
		return nil, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12
	}
	if end := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && end > len(buffer.Data) {
		return nil, fmt.Errorf("accessor reads %d bytes past buffer end", end-len(buffer.Data))
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		b := buffer.Data[start+i*stride:]
		result[i] = math3d.V3(
			float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
		)
	}
	return result, nil
}
