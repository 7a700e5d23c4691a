package renderer

import (
	"github.com/gdamore/tcell/v2"
)

// Frame is one rendered snapshot of the editor: the generated document
// text, the byte span of the selection and the status line.
type Frame struct {
	Text   string
	Start  int
	End    int
	Status string
}

// View draws frames on a terminal, keeping the selection visible.
type View struct {
	term   *Terminal
	scroll int
}

// NewView creates a view on the given terminal.
func NewView(term *Terminal) *View {
	return &View{term: term}
}

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Reverse(true).Bold(true)
)

// Draw renders the frame. The bottom row is the status line; the rest
// shows the document with the selection span reversed. An empty span
// places the hardware cursor at the insertion point.
func (v *View) Draw(f Frame) {
	v.term.mu.Lock()
	defer v.term.mu.Unlock()

	screen := v.term.screen
	screen.Clear()
	width, height := screen.Size()
	if width == 0 || height == 0 {
		return
	}
	docHeight := height - 1

	v.scrollTo(lineOf(f.Text, f.Start), docHeight)

	x, y := 0, 0
	caret := false
	screen.HideCursor()
	for i, r := range f.Text {
		if f.Start == f.End && i == f.Start {
			v.showCursor(screen, x, y, docHeight)
			caret = true
		}
		if r == '\n' {
			y++
			x = 0
			continue
		}
		style := styleText
		if i >= f.Start && i < f.End {
			style = styleSelection
		}
		row := y - v.scroll
		if row >= 0 && row < docHeight && x < width {
			screen.SetContent(x, row, r, nil, style)
		}
		x++
	}
	// Insertion point at the very end of the text.
	if !caret && f.Start == f.End && f.Start >= 0 {
		v.showCursor(screen, x, y, docHeight)
	}

	v.drawStatus(screen, f.Status, width, height-1)
	screen.Show()
}

func (v *View) showCursor(screen tcell.Screen, x, y, docHeight int) {
	row := y - v.scroll
	if row >= 0 && row < docHeight {
		screen.ShowCursor(x, row)
	}
}

// scrollTo adjusts the scroll offset so that line is on screen.
func (v *View) scrollTo(line, docHeight int) {
	if docHeight <= 0 || line < 0 {
		return
	}
	if line < v.scroll {
		v.scroll = line
	}
	if line >= v.scroll+docHeight {
		v.scroll = line - docHeight + 1
	}
}

func (v *View) drawStatus(screen tcell.Screen, status string, width, row int) {
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		screen.SetContent(x, row, r, nil, styleStatus)
		x++
	}
	for ; x < width; x++ {
		screen.SetContent(x, row, ' ', nil, styleStatus)
	}
}

// lineOf counts newlines before byte offset.
func lineOf(text string, offset int) int {
	if offset < 0 {
		return -1
	}
	line := 0
	for i, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
		}
	}
	return line
}
