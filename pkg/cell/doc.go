// Package cell decomposes unstructured-grid cells into triangles.
//
// Each supported topology has a static face table keyed by its VTK type code.
// Quadrilateral faces are always split along their local 0-2 diagonal, so a
// face (a, b, c, d) becomes the triangles (a, b, c) and (a, c, d). Cells of an
// unknown type, or whose point window is too short for their table, fall back
// to a fan anchored at the first point.
//
// Tessellation only looks at point indices, never at coordinates.
package cell
