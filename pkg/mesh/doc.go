// Package mesh assembles renderable triangle meshes from VTU data.
//
// A [Mesh] bundles a point set, the triangle buffer produced by tessellating
// every cell, the active point-scalar field and the color transfer function
// derived from that field's range. Meshes are never modified after they are
// built, apart from the representation flag: [Threshold] and [Mesh.WithField]
// return new meshes and leave their source untouched, so a caller holding an
// older mesh keeps seeing the old state.
//
//	m, err := mesh.LoadFile("cavity.vtu", "pressure")
//	if err != nil {
//	    // handle error
//	}
//	hot, err := mesh.Threshold(m, 101325)
package mesh
