package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank rune = 0x2800

// Layer identifies what a dot belongs to. When several layers share a cell
// the highest one decides its colour.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerSphere
	LayerBox
	LayerRay
	LayerPoint
	LayerOrigin
)

func (l Layer) String() string {
	switch l {
	case LayerSphere:
		return "sphere"
	case LayerBox:
		return "box"
	case LayerRay:
		return "ray"
	case LayerPoint:
		return "point"
	case LayerOrigin:
		return "origin"
	}
	return "none"
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]Layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]Layer, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Set turns on the dot at sub-pixel (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, l Layer) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	if l > c.Layers[row][col] {
		c.Layers[row][col] = l
	}
}

// IsSet reports whether the dot at sub-pixel (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Layers[i][j] = LayerNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, l Layer) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawMarker stamps a glyph centred on (x, y): a plus for points and a
// filled block for the origin, so both stand out from wireframe lines.
func (c *Canvas) DrawMarker(x, y int, l Layer) {
	switch l {
	case LayerOrigin:
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c.Set(x+dx, y+dy, l)
			}
		}
	case LayerPoint:
		c.Set(x, y, l)
		c.Set(x-1, y, l)
		c.Set(x+1, y, l)
		c.Set(x, y-1, l)
		c.Set(x, y+1, l)
	default:
		c.Set(x, y, l)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with each run of same-layer cells coloured by
// the theme.
func (c *Canvas) Styled(t Theme) string {
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && c.Layers[r][i] == c.Layers[r][start] {
				continue
			}
			run := string(row[start:i])
			if l := c.Layers[r][start]; l != LayerNone {
				run = t.LayerStyle(l).Render(run)
			}
			b.WriteString(run)
			start = i
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
