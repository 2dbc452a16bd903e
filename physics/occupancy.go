package physics

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/lixenwraith/centipede/component"
)

// Occupant identifies the voxel holding a grid cell
type Occupant struct {
	Segment int
	Voxel   int
}

// Occupancy maps rounded grid cells to the voxel occupying them
// Insertion order is preserved so iteration follows (segment, voxel) order after Rebuild
type Occupancy struct {
	cells *orderedmap.OrderedMap[component.Cell, Occupant]
}

// NewOccupancy creates an empty occupancy map
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: orderedmap.NewOrderedMap[component.Cell, Occupant]()}
}

// Reset drops every entry
func (o *Occupancy) Reset() {
	o.cells = orderedmap.NewOrderedMap[component.Cell, Occupant]()
}

// Rebuild fills the map from every filled voxel of segs
// A later voxel on a shared cell replaces the earlier occupant
func (o *Occupancy) Rebuild(segs []component.Segment) {
	o.Reset()
	for si := range segs {
		voxels := segs[si].Voxels
		for vi := range voxels {
			if !voxels[vi].Filled {
				continue
			}
			o.cells.Set(voxels[vi].Cell(), Occupant{Segment: si, Voxel: vi})
		}
	}
}

// At returns the occupant of c
func (o *Occupancy) At(c component.Cell) (Occupant, bool) {
	return o.cells.Get(c)
}

// Occupied reports whether c holds any voxel
func (o *Occupancy) Occupied(c component.Cell) bool {
	_, ok := o.cells.Get(c)
	return ok
}

// Set assigns c to occ, replacing any previous occupant
func (o *Occupancy) Set(c component.Cell, occ Occupant) {
	o.cells.Set(c, occ)
}

// Release clears c only if it is held by occ
func (o *Occupancy) Release(c component.Cell, occ Occupant) {
	if cur, ok := o.cells.Get(c); ok && cur == occ {
		o.cells.Delete(c)
	}
}

// Len returns the number of occupied cells
func (o *Occupancy) Len() int {
	return o.cells.Len()
}

// Each visits entries in insertion order until fn returns false
func (o *Occupancy) Each(fn func(c component.Cell, occ Occupant) bool) {
	for el := o.cells.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// FindFree searches square rings of radius 1..maxRadius around origin for an unoccupied cell
// Ring cells are scanned column-major (dx outer, dy inner); cells for which skip returns true are passed over
func (o *Occupancy) FindFree(origin component.Cell, maxRadius int, skip func(component.Cell) bool) (component.Cell, bool) {
	for r := 1; r <= maxRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				c := origin.Add(dx, dy)
				if o.Occupied(c) {
					continue
				}
				if skip != nil && skip(c) {
					continue
				}
				return c, true
			}
		}
	}
	return component.Cell{}, false
}

// Relocate moves a single voxel to the nearest free ring cell, snapping its position to that cell
// Returns false and leaves the voxel untouched when the search radius is exhausted
func (o *Occupancy) Relocate(segs []component.Segment, occ Occupant, maxRadius int, skip func(component.Cell) bool) bool {
	v := &segs[occ.Segment].Voxels[occ.Voxel]
	from := v.Cell()
	to, ok := o.FindFree(from, maxRadius, skip)
	if !ok {
		return false
	}
	o.Release(from, occ)
	v.Pos = to.Vec2()
	o.Set(to, occ)
	return true
}

// ReleaseSegment clears every cell held by voxels of segment si
func (o *Occupancy) ReleaseSegment(segs []component.Segment, si int) {
	voxels := segs[si].Voxels
	for vi := range voxels {
		if voxels[vi].Filled {
			o.Release(voxels[vi].Cell(), Occupant{Segment: si, Voxel: vi})
		}
	}
}

// ClaimSegment assigns the current cells of segment si's voxels
func (o *Occupancy) ClaimSegment(segs []component.Segment, si int) {
	voxels := segs[si].Voxels
	for vi := range voxels {
		if voxels[vi].Filled {
			o.Set(voxels[vi].Cell(), Occupant{Segment: si, Voxel: vi})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
