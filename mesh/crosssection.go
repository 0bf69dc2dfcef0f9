package mesh

import "github.com/tessera-dev/tessera4d/la"

// tetraFaceWinding[i] is the face of tetrahedron (0,1,2,3) opposite
// vertex i, wound clockwise when seen from outside the tetrahedron
// (taking (0,1,2) as clockwise from vertex 3).
var tetraFaceWinding = [4][3]int{{1, 3, 2}, {0, 2, 3}, {0, 3, 1}, {0, 1, 2}}

// The cross-section plane sits at zero depth; transform the mesh to
// slice anywhere else.
const crossSectionDepth = 0.0

// CrossSection intersects a tetrahedron mesh with the zero-depth
// hyperplane, producing a triangle mesh one dimension lower. The winding
// of each output triangle matches the handedness of the tetrahedron it
// came from. Cut edges shared between tetrahedra are deduplicated, so
// the output surface is as connected as the input solid.
func CrossSection[V la.Projectable[Down], Down la.Vector[Down]](m *TetrahedronMesh[V]) *TriangleMesh[Down] {
	type edge struct{ lo, hi int }
	edgeIndices := make(map[edge]int)
	out := &TriangleMesh[Down]{}

	// Index in the output mesh of the point where edge (i, j) crosses
	// the plane, interpolating by relative depth.
	getIntersection := func(i, j int) int {
		key := edge{i, j}
		if j < i {
			key = edge{j, i}
		}
		if idx, ok := edgeIndices[key]; ok {
			return idx
		}
		v1, v2 := m.Vertices[i], m.Vertices[j]
		d1, d2 := v1.Depth(), v2.Depth()
		fraction := d1 / (d1 - d2)
		out.Vertices = append(out.Vertices,
			la.Lerp(v1.Project(), v2.Project(), fraction))
		idx := len(out.Vertices) - 1
		edgeIndices[key] = idx
		return idx
	}

	// Each case yields faces as triples of local edges (i, j): the cut
	// point between tetrahedron vertices i and j.
	oneNegative := func(i int) [][3][2]int {
		var face [3][2]int
		for k, j := range tetraFaceWinding[i] {
			face[k] = [2]int{i, j}
		}
		return [][3][2]int{face}
	}
	threeNegative := func(i int) [][3][2]int {
		w := tetraFaceWinding[i]
		w[0], w[2] = w[2], w[0]
		var face [3][2]int
		for k, j := range w {
			face[k] = [2]int{i, j}
		}
		return [][3][2]int{face}
	}
	// The quadrilateral cut, split into two triangles. The orderings
	// come from enumerating the cases and reducing.
	twoNegative := func(neg1, neg2, pos1, pos2 int) [][3][2]int {
		return [][3][2]int{
			{{neg1, pos2}, {neg1, pos1}, {neg2, pos2}},
			{{neg1, pos1}, {neg2, pos1}, {neg2, pos2}},
		}
	}

	for _, tet := range m.Tetrahedra {
		var side [4]bool
		for i, vi := range tet {
			side[i] = m.Vertices[vi].Depth() > crossSectionDepth
		}

		var faces [][3][2]int
		switch side {
		case [4]bool{false, false, false, false}:
		case [4]bool{true, true, true, true}:
		case [4]bool{false, true, true, true}:
			faces = oneNegative(0)
		case [4]bool{true, false, true, true}:
			faces = oneNegative(1)
		case [4]bool{true, true, false, true}:
			faces = oneNegative(2)
		case [4]bool{true, true, true, false}:
			faces = oneNegative(3)
		case [4]bool{true, false, false, false}:
			faces = threeNegative(0)
		case [4]bool{false, true, false, false}:
			faces = threeNegative(1)
		case [4]bool{false, false, true, false}:
			faces = threeNegative(2)
		case [4]bool{false, false, false, true}:
			faces = threeNegative(3)
		case [4]bool{false, false, true, true}:
			faces = twoNegative(0, 1, 2, 3)
		case [4]bool{true, true, false, false}:
			faces = twoNegative(3, 2, 1, 0)
		case [4]bool{true, false, true, false}:
			faces = twoNegative(3, 1, 0, 2)
		case [4]bool{false, true, false, true}:
			faces = twoNegative(0, 2, 3, 1)
		case [4]bool{true, false, false, true}:
			faces = twoNegative(2, 1, 3, 0)
		case [4]bool{false, true, true, false}:
			faces = twoNegative(0, 3, 1, 2)
		}

		for _, face := range faces {
			var tri [3]int
			for k, e := range face {
				tri[k] = getIntersection(tet[e[0]], tet[e[1]])
			}
			out.Triangles = append(out.Triangles, tri)
		}
	}
	return out
}
