package pong

import "unicode"

// Glyph metrics in font units. Every glyph sits in a 7x7 cell and the pen
// advances 9 units per character.
const (
	glyphAdvance   = 9
	glyphMaxWidth  = 7
	glyphMaxHeight = 7
)

// glyphRect is a filled rectangle of a glyph in font units. Y grows upward
// from the baseline.
type glyphRect struct {
	x, y, w, h int
}

type glyph struct {
	width int
	rects []glyphRect
}

// glyphBitmaps draws each glyph top row first. Rows of a glyph share a width.
var glyphBitmaps = map[rune][]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D': {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".####"},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {"###", ".#.", ".#.", ".#.", ".#.", ".#.", "###"},
	'J': {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "#.#.#", ".#.#."},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},

	'0': {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", ".###."},
	'2': {".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"},
	'3': {"#####", "...#.", "..#..", "...#.", "....#", "#...#", ".###."},
	'4': {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "####.", "....#", "....#", "#...#", ".###."},
	'6': {"..##.", ".#...", "#....", "####.", "#...#", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."},
	'8': {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	'9': {".###.", "#...#", "#...#", ".####", "....#", "...#.", ".##.."},

	':':  {".", "#", "#", ".", "#", "#", "."},
	'!':  {"#", "#", "#", "#", "#", ".", "#"},
	'?':  {".###.", "#...#", "....#", "...#.", "..#..", ".....", "..#.."},
	'(':  {"..#", ".#.", "#..", "#..", "#..", ".#.", "..#"},
	')':  {"#..", ".#.", "..#", "..#", "..#", ".#.", "#.."},
	',':  {"..", "..", "..", "..", ".#", ".#", "#."},
	'.':  {".", ".", ".", ".", ".", ".", "#"},
	'-':  {".....", ".....", ".....", "#####", ".....", ".....", "....."},
	'\'': {"#", "#", ".", ".", ".", ".", "."},
}

var glyphs = buildGlyphs(glyphBitmaps)

// glyphFor returns the glyph for r. Lowercase letters use the uppercase form.
func glyphFor(r rune) (glyph, bool) {
	g, ok := glyphs[unicode.ToUpper(r)]
	return g, ok
}

func buildGlyphs(bitmaps map[rune][]string) map[rune]glyph {
	out := make(map[rune]glyph, len(bitmaps))
	for r, rows := range bitmaps {
		out[r] = compileGlyph(rows)
	}
	return out
}

// compileGlyph turns a bitmap into rectangles. Horizontal runs are merged
// first, then identical runs on consecutive rows grow into one rectangle.
func compileGlyph(rows []string) glyph {
	g := glyph{}
	if len(rows) > 0 {
		g.width = len(rows[0])
	}

	// Open rectangles keyed by their horizontal span, growing downward.
	type span struct{ x, w int }
	open := map[span]int{}

	for i, row := range rows {
		y := len(rows) - 1 - i
		next := map[span]int{}
		for x := 0; x < len(row); {
			if row[x] != '#' {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] == '#' {
				x++
			}
			s := span{start, x - start}
			if idx, ok := open[s]; ok {
				g.rects[idx].y = y
				g.rects[idx].h++
				next[s] = idx
				continue
			}
			g.rects = append(g.rects, glyphRect{x: s.x, y: y, w: s.w, h: 1})
			next[s] = len(g.rects) - 1
		}
		open = next
	}
	return g
}
