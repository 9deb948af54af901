// Package level reads, validates and writes level files and builds worlds
// from them.
//
// A level file starts with "width height", followed by exactly height
// terrain rows, followed by entity records in any order:
//
//	player x y
//	monster x y name health attack
//	item x y glyph
//
// Records with an unknown keyword and blank lines are ignored.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samdwyer/rogue/internal/entity"
)

// MaxSize bounds the width and height a level may declare.
const MaxSize = 1024

// MonsterRecord is a "monster x y name health attack" line.
type MonsterRecord struct {
	X, Y   int
	Name   string
	Health int
	Attack int
	Line   int // Source line, 0 when not parsed from text
}

// ItemRecord is an "item x y glyph" line.
type ItemRecord struct {
	X, Y  int
	Glyph rune
	Line  int
}

// Level is parsed level data. It is not a world yet: see Build.
type Level struct {
	Width    int
	Height   int
	Rows     []string // Terrain overrides; a row may be shorter than Width
	Player   *entity.Position
	Monsters []MonsterRecord
	Items    []ItemRecord

	playerLine int
}

// Parse reads level data. Any error is a *MalformedError unless reading
// from r itself fails.
func Parse(r io.Reader) (*Level, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSuffix(scanner.Text(), "\r"), true
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, readError(lineNo, err)
		}
		return nil, malformed(0, nil, "empty level data")
	}

	lvl, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	for y := 0; y < lvl.Height; y++ {
		row, ok := next()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, readError(lineNo, err)
			}
			return nil, malformed(lineNo+1, nil, "missing terrain row %d of %d", y+1, lvl.Height)
		}
		if n := utf8.RuneCountInString(row); n > lvl.Width {
			return nil, malformed(lineNo, nil, "terrain row is %d wide, grid is %d", n, lvl.Width)
		}
		lvl.Rows = append(lvl.Rows, row)
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if err := lvl.parseRecord(lineNo, strings.Fields(line)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, readError(lineNo, err)
	}

	return lvl, nil
}

// readError reports an over-long line as malformed data; anything else is
// a failure of the reader itself.
func readError(lineNo int, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return malformed(lineNo+1, err, "line too long")
	}
	return fmt.Errorf("reading level: %w", err)
}

func parseHeader(line string) (*Level, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, malformed(1, nil, "expected \"width height\", got %q", line)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, malformed(1, err, "invalid width")
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, malformed(1, err, "invalid height")
	}
	if width <= 0 || height <= 0 {
		return nil, malformed(1, nil, "grid size %dx%d must be positive", width, height)
	}
	if width > MaxSize || height > MaxSize {
		return nil, malformed(1, nil, "grid size %dx%d exceeds %dx%d", width, height, MaxSize, MaxSize)
	}

	return &Level{Width: width, Height: height}, nil
}

func (l *Level) parseRecord(line int, fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "player":
		nums, err := ints(line, fields, 1, 2, "x", "y")
		if err != nil {
			return err
		}
		l.Player = &entity.Position{X: nums[0], Y: nums[1]}
		l.playerLine = line

	case "monster":
		if len(fields) < 6 {
			return malformed(line, nil, "monster record needs x y name health attack")
		}
		xy, err := ints(line, fields, 1, 2, "x", "y")
		if err != nil {
			return err
		}
		stats, err := ints(line, fields, 4, 5, "health", "attack")
		if err != nil {
			return err
		}
		l.Monsters = append(l.Monsters, MonsterRecord{
			X: xy[0], Y: xy[1],
			Name:   fields[3],
			Health: stats[0],
			Attack: stats[1],
			Line:   line,
		})

	case "item":
		if len(fields) < 4 {
			return malformed(line, nil, "item record needs x y glyph")
		}
		xy, err := ints(line, fields, 1, 2, "x", "y")
		if err != nil {
			return err
		}
		glyph, _ := utf8.DecodeRuneInString(fields[3])
		l.Items = append(l.Items, ItemRecord{X: xy[0], Y: xy[1], Glyph: glyph, Line: line})
	}

	return nil
}

// ints parses fields[first..last] as integers named by names.
func ints(line int, fields []string, first, last int, names ...string) ([]int, error) {
	if len(fields) <= last {
		return nil, malformed(line, nil, "%s record is missing fields", fields[0])
	}
	out := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, malformed(line, err, "invalid %s %s", fields[0], names[i-first])
		}
		out = append(out, n)
	}
	return out, nil
}

// Encode writes the level in the file format Parse reads.
func (l *Level) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", l.Width, l.Height)
	for _, row := range l.Rows {
		fmt.Fprintln(bw, row)
	}
	if l.Player != nil {
		fmt.Fprintf(bw, "player %d %d\n", l.Player.X, l.Player.Y)
	}
	for _, m := range l.Monsters {
		fmt.Fprintf(bw, "monster %d %d %s %d %d\n", m.X, m.Y, m.Name, m.Health, m.Attack)
	}
	for _, i := range l.Items {
		fmt.Fprintf(bw, "item %d %d %c\n", i.X, i.Y, i.Glyph)
	}

	return bw.Flush()
}
