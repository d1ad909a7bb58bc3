package screen

import "fmt"

// csiCursorPositionReport formats the CSI 6n reply body (1-based row/col).
func csiCursorPositionReport(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dR", row, col)
}
