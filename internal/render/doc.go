// Package render turns rasters into displayable images.
//
// Tones in [0, 255] map to the gray palette. Everything the grid cannot
// display faithfully (a tone outside the range, a missing row, a row shorter
// than the first) is drawn with the error sentinel color instead. Rendering
// never clamps or changes the raster itself.
//
// Frames are laid out like the editor view: a border of Padding pixels
// around the image, and each cell scaled to Zoom x Zoom pixels with
// nearest-neighbour sampling. The active selection is drawn on top as a
// dashed rectangle, or a small dot while only one corner is chosen.
package render
