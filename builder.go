package boxgrid

import log "github.com/sirupsen/logrus"

// BuildBoxes lays out one box per grid cell, all sharing geometry.
func BuildBoxes(grid Grid, geometry *Geometry, rotations RotationSource, palette Palette) []*Box {
	log.WithFields(log.Fields{
		"columns": grid.Columns,
		"rows":    grid.Rows,
		"boxes":   grid.Len(),
	}).Info("Building grid")

	boxes := make([]*Box, 0, grid.Len())
	for id := 0; id < grid.Len(); id++ {
		box := NewBox(id, geometry, grid.Position(id))
		box.RotationY = rotations.Rotation(grid.Row(id), grid.Column(id))
		box.Material.Set(ColorDefault, palette)
		boxes = append(boxes, box)
	}
	return boxes
}
