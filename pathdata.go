package vecedit

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// pathDataArgs is the number of numbers each SVG path command consumes.
var pathDataArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'Q': 4,
	'C': 6,
	'Z': 0,
}

// ParsePathData parses SVG path data restricted to the commands a Path can
// hold without conversion: M, L, H, V, Q, C and Z, in absolute and relative
// form. Implicit command repetition is supported; a repeated M becomes L as
// in SVG. Errors wrap ErrPathData.
func ParsePathData(s string) (*Path, error) {
	data := []byte(s)
	p := NewPath()

	var (
		f       [6]float64
		cur     Point
		start   Point
		prevCmd byte
	)
	i := skipCommaWhitespace(data)
	for i < len(data) {
		cmd := prevCmd
		if !startsNumber(data[i]) {
			cmd = data[i]
			i++
			i += skipCommaWhitespace(data[i:])
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("%w: number without command at position %d", ErrPathData, i+1)
		}

		upper := cmd &^ 0x20
		n, ok := pathDataArgs[upper]
		if !ok {
			return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrPathData, cmd, i)
		}
		for j := range n {
			num, k := strconv.ParseFloat(data[i:])
			if k == 0 {
				return nil, fmt.Errorf("%w: command %q needs %d numbers at position %d", ErrPathData, cmd, n, i+1)
			}
			f[j] = num
			i += k
			i += skipCommaWhitespace(data[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}

		switch upper {
		case 'M':
			cur = abs(f[0], f[1])
			start = cur
			p.MoveTo(cur.X, cur.Y)
			// Coordinates following a moveto are implicit linetos.
			cmd = 'L' | (cmd & 0x20)
		case 'L':
			cur = abs(f[0], f[1])
			p.LineTo(cur.X, cur.Y)
		case 'H':
			if rel {
				cur.X += f[0]
			} else {
				cur.X = f[0]
			}
			p.LineTo(cur.X, cur.Y)
		case 'V':
			if rel {
				cur.Y += f[0]
			} else {
				cur.Y = f[0]
			}
			p.LineTo(cur.X, cur.Y)
		case 'Q':
			c := abs(f[0], f[1])
			end := abs(f[2], f[3])
			p.QuadTo(c.X, c.Y, end.X, end.Y)
			cur = end
		case 'C':
			c1 := abs(f[0], f[1])
			c2 := abs(f[2], f[3])
			end := abs(f[4], f[5])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
		case 'Z':
			p.Close()
			cur = start
		}
		prevCmd = cmd
	}
	return p, nil
}

func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == ',' || data[i] == '\n' || data[i] == '\r' || data[i] == '\t') {
		i++
	}
	return i
}

// String returns the path as absolute SVG path data.
func (p *Path) String() string {
	var sb strings.Builder
	for i, s := range p.Segments() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Tag {
		case TagMoveTo:
			sb.WriteByte('M')
		case TagLineTo:
			sb.WriteByte('L')
		case TagQuadTo:
			sb.WriteByte('Q')
		case TagCubicTo:
			sb.WriteByte('C')
		case TagClose:
			sb.WriteByte('Z')
			continue
		}
		for k, v := range s.Coords() {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", v)
		}
	}
	return sb.String()
}
