// Package geom provides the canvas geometry shared by the grid editor:
// positions, sizes and axis-aligned bounds, plus the two quantisation
// policies used when elements are created (SnapDown) and when they are
// moved or resized (SnapNearest).
//
// The two snap policies are deliberately separate functions. Creation
// floors to the cell the pointer is in; move and resize round to the
// closest grid line.
package geom
