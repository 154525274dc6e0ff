package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderSlotMeter renders slot occupancy like [██░] 2/3. A full slot is
// yellow, a partly filled one green, an empty one dim.
func RenderSlotMeter(used, capacity int) string {
	if capacity < 1 {
		capacity = 1
	}
	used = min(max(used, 0), capacity)

	bar := strings.Repeat(filledBlock, used) + strings.Repeat(emptyBlock, capacity-used)

	style := StyleGreen
	switch {
	case used == capacity:
		style = StyleYellow
	case used == 0:
		style = StyleDim
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), used, capacity)
}
