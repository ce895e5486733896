package vertexbuffer

import "github.com/gpuraster/gpuraster/internal/array"

// Topology names the GPU primitive topology a Batch's vertices should
// be submitted with.
type Topology int

const (
	// TriangleStrip is used for trapezoids, parallelograms, and
	// complex-scan coverage quads.
	TriangleStrip Topology = iota
	// TriangleList is used for waffled geometry, where each cell
	// triangulates independently and sharing a strip across cells
	// would stitch unrelated UV ranges together.
	TriangleList
)

// Batch is one draw call's worth of vertices: a topology plus the
// vertex stream, already truncated to the Builder's configured format.
type Batch struct {
	Topology Topology
	Vertices []Vertex
}

// batchBuilder accumulates one Batch via the teacher's growable-array
// idiom before it is frozen into the Builder's output list.
type batchBuilder struct {
	topology Topology
	vertices *array.PodVector[Vertex]
}

func newBatchBuilder(topology Topology) *batchBuilder {
	return &batchBuilder{topology: topology, vertices: array.NewPodVector[Vertex]()}
}

func (b *batchBuilder) add(v Vertex) {
	b.vertices.Add(v)
}

func (b *batchBuilder) freeze() Batch {
	data := b.vertices.Data()
	out := make([]Vertex, len(data))
	copy(out, data)
	return Batch{Topology: b.topology, Vertices: out}
}
