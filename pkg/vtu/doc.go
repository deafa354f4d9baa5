// Package vtu reads the inline-ASCII subset of the VTK unstructured grid XML
// format (.vtu).
//
// Parsing happens in two steps. [Parse] turns the raw bytes into a
// [Document], an immutable element tree with attribute lookup and numeric
// text helpers. The extraction functions then pull the arrays a mesh needs
// out of that tree:
//
//	doc, err := vtu.ParseFile("cavity.vtu")
//	if err != nil {
//	    // handle error
//	}
//	points, err := vtu.ExtractPoints(doc)
//	cells, err := vtu.ExtractCellBlock(doc)
//	values, ok, err := vtu.ExtractScalarField(doc, "pressure")
//
// Binary, appended and compressed data sections are rejected with
// [ErrUnsupportedFormat].
package vtu
