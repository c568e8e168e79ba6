package desktop

import "strings"

// Button is a clickable control in logical coordinates.
type Button struct {
	ID     string
	Label  string
	X, Y   float64
	Width  float64
	Height float64
}

func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// LogPanel keeps the most recent entries surfaced to the user, each exactly
// as it was added.
type LogPanel struct {
	max     int
	entries []string
}

func NewLogPanel(max int) *LogPanel {
	if max <= 0 {
		max = 8
	}
	return &LogPanel{max: max}
}

func (p *LogPanel) Add(text string) {
	p.entries = append(p.entries, text)
	if over := len(p.entries) - p.max; over > 0 {
		p.entries = append(p.entries[:0:0], p.entries[over:]...)
	}
}

func (p *LogPanel) Entries() []string {
	return append([]string(nil), p.entries...)
}

// lineCount is how many text rows an entry occupies on screen.
func lineCount(entry string) int {
	return strings.Count(entry, "\n") + 1
}

// toLogical converts a cursor position in backing pixels to logical units.
func toLogical(x, y int, ratio float64) (float64, float64) {
	if ratio <= 0 {
		ratio = 1
	}
	return float64(x) / ratio, float64(y) / ratio
}
