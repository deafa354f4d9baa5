// Package render draws an assembled mesh into an image with a software
// rasterizer. It honors the mesh representation mode and colors surfaces
// by interpolating the active scalar field through its transfer function.
//
// It is meant for previews and reports; interactive viewing is left to
// dedicated renderers.
package render
