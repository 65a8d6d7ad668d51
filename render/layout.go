package render

import (
	"math"

	"github.com/lixenwraith/bubble-slicer/constants"
)

// Playfield pixels map to terminal cells below the HUD rows
// Cell (cx, cy) covers pixels [cx*W, (cx+1)*W) x [(cy-HUDRows)*H, (cy-HUDRows+1)*H)

// PixelToCell returns the cell containing a playfield pixel
func PixelToCell(x, y float64) (int, int) {
	cx := int(math.Floor(x / constants.CellWidthPx))
	cy := int(math.Floor(y/constants.CellHeightPx)) + constants.HUDRows
	return cx, cy
}

// CellToPixel returns the playfield pixel at the centre of a cell
// ok is false for HUD rows and negative columns
func CellToPixel(cx, cy int) (x, y float64, ok bool) {
	if cx < 0 || cy < constants.HUDRows {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) * constants.CellWidthPx
	y = (float64(cy-constants.HUDRows) + 0.5) * constants.CellHeightPx
	return x, y, true
}

// PlayfieldSize returns the pixel dimensions covered by a terminal of cols x rows
func PlayfieldSize(cols, rows int) (width, height float64) {
	return float64(cols) * constants.CellWidthPx, float64(rows-constants.HUDRows) * constants.CellHeightPx
}
