package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
)

// voxelSegment builds a segment whose filled voxels sit at the given world points
func voxelSegment(pos mgl32.Vec2, points ...mgl32.Vec2) component.Segment {
	seg := component.Segment{Pos: pos, RenderPos: pos, VoxW: len(points), VoxH: 1}
	for _, p := range points {
		seg.Voxels = append(seg.Voxels, component.Voxel{Rest: p.Sub(pos), Pos: p, Filled: true})
	}
	return seg
}

// TestOccupancy_RebuildOrder verifies iteration follows (segment, voxel) order
func TestOccupancy_RebuildOrder(t *testing.T) {
	segs := []component.Segment{
		voxelSegment(mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}),
		voxelSegment(mgl32.Vec2{5, 0}, mgl32.Vec2{5, 0}, mgl32.Vec2{5, 1}),
	}
	occ := NewOccupancy()
	occ.Rebuild(segs)

	want := []Occupant{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	var got []Occupant
	occ.Each(func(_ component.Cell, o Occupant) bool {
		got = append(got, o)
		return true
	})

	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestOccupancy_RebuildLaterWins verifies a shared cell belongs to the later voxel
func TestOccupancy_RebuildLaterWins(t *testing.T) {
	segs := []component.Segment{
		voxelSegment(mgl32.Vec2{0, 0}, mgl32.Vec2{2.2, 3.1}),
		voxelSegment(mgl32.Vec2{1, 0}, mgl32.Vec2{1.8, 2.9}),
	}
	occ := NewOccupancy()
	occ.Rebuild(segs)

	got, ok := occ.At(component.Cell{X: 2, Y: 3})
	if !ok {
		t.Fatal("Expected cell (2,3) occupied")
	}
	if got.Segment != 1 {
		t.Errorf("Expected segment 1 to own the cell, got %d", got.Segment)
	}
	if occ.Len() != 1 {
		t.Errorf("Expected 1 occupied cell, got %d", occ.Len())
	}
}

// TestOccupancy_SkipsUnfilled verifies unfilled voxels never occupy cells
func TestOccupancy_SkipsUnfilled(t *testing.T) {
	seg := voxelSegment(mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})
	seg.Voxels[1].Filled = false
	occ := NewOccupancy()
	occ.Rebuild([]component.Segment{seg})

	if occ.Occupied(component.Cell{X: 1, Y: 0}) {
		t.Error("Expected unfilled voxel cell to be free")
	}
}

// TestOccupancy_FindFreeRingOrder verifies the first free cell in ring scan order is returned
func TestOccupancy_FindFreeRingOrder(t *testing.T) {
	occ := NewOccupancy()
	origin := component.Cell{X: 0, Y: 0}
	occ.Set(origin, Occupant{})

	got, ok := occ.FindFree(origin, 6, nil)
	if !ok {
		t.Fatal("Expected a free cell")
	}
	if want := (component.Cell{X: -1, Y: -1}); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Fill the first two scanned cells; next in dx-outer dy-inner order is (-1,1)
	occ.Set(component.Cell{X: -1, Y: -1}, Occupant{})
	occ.Set(component.Cell{X: -1, Y: 0}, Occupant{})
	got, _ = occ.FindFree(origin, 6, nil)
	if want := (component.Cell{X: -1, Y: 1}); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestOccupancy_FindFreeSkip verifies skipped cells are treated as unavailable
func TestOccupancy_FindFreeSkip(t *testing.T) {
	occ := NewOccupancy()
	reserved := component.Cell{X: -1, Y: -1}
	got, ok := occ.FindFree(component.Cell{}, 1, func(c component.Cell) bool { return c == reserved })
	if !ok {
		t.Fatal("Expected a free cell")
	}
	if got == reserved {
		t.Error("Expected reserved cell to be skipped")
	}
}

// TestOccupancy_FindFreeRadiusBound verifies search gives up beyond the radius
func TestOccupancy_FindFreeRadiusBound(t *testing.T) {
	occ := NewOccupancy()
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			occ.Set(component.Cell{X: x, Y: y}, Occupant{})
		}
	}

	if _, ok := occ.FindFree(component.Cell{}, 2, nil); ok {
		t.Error("Expected no free cell within radius 2")
	}
	got, ok := occ.FindFree(component.Cell{}, 3, nil)
	if !ok {
		t.Fatal("Expected a free cell within radius 3")
	}
	if got.X != -3 && got.X != 3 && got.Y != -3 && got.Y != 3 {
		t.Errorf("Expected a cell on ring 3, got %v", got)
	}
}

// TestOccupancy_Relocate verifies a relocated voxel snaps to its new cell and the map follows
func TestOccupancy_Relocate(t *testing.T) {
	segs := []component.Segment{
		voxelSegment(mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}),
		voxelSegment(mgl32.Vec2{1, 0}, mgl32.Vec2{1, 0}),
	}
	occ := NewOccupancy()
	occ.Rebuild(segs)

	if !occ.Relocate(segs, Occupant{Segment: 1, Voxel: 0}, 6, nil) {
		t.Fatal("Expected relocation to succeed")
	}
	moved := segs[1].Voxels[0]
	if occ.Occupied(component.Cell{X: 1, Y: 0}) {
		t.Error("Expected old cell released")
	}
	got, ok := occ.At(moved.Cell())
	if !ok || got != (Occupant{Segment: 1, Voxel: 0}) {
		t.Errorf("Expected new cell owned by (1,0), got %v (%v)", got, ok)
	}
	if moved.Pos != moved.Cell().Vec2() {
		t.Errorf("Expected position snapped to cell center, got %v", moved.Pos)
	}
}

// TestOccupancy_ReleaseKeepsOthers verifies releasing a segment leaves other owners intact
func TestOccupancy_ReleaseKeepsOthers(t *testing.T) {
	segs := []component.Segment{
		voxelSegment(mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}),
		voxelSegment(mgl32.Vec2{1, 0}, mgl32.Vec2{1, 0}),
	}
	occ := NewOccupancy()
	occ.Rebuild(segs)
	occ.ReleaseSegment(segs, 0)

	if occ.Occupied(component.Cell{X: 0, Y: 0}) {
		t.Error("Expected (0,0) released")
	}
	if got, ok := occ.At(component.Cell{X: 1, Y: 0}); !ok || got.Segment != 1 {
		t.Errorf("Expected (1,0) still owned by segment 1, got %v (%v)", got, ok)
	}
}
