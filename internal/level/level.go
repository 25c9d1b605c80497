// Package level reads and writes puzzle level definitions. The text format is
// an external collaborator of the solver core: it merely produces the board
// setup the solver consumes.
package level

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KikaPereira03/cakesort/internal/board"
)

// Difficulty is a level's labeled difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

// ParseDifficulty maps a name to a Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "expert":
		return DifficultyExpert, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want Easy, Medium, Hard, or Expert)", s)
	}
}

// Defaults applied when a level file omits the corresponding header.
const (
	defaultParMoves = 10
	defaultWidth    = 4
	defaultHeight   = 3
	defaultCapacity = 6
)

// Level is one puzzle definition: grid shape, metadata, and the sparse
// initial assignment of layer stacks to tube indices (bottom-to-top;
// unlisted tubes are empty).
type Level struct {
	Number     int
	Difficulty Difficulty
	ParMoves   int
	Width      int
	Height     int
	Capacity   int
	Stacks     map[int][]board.Layer
}

// Geometry returns the level's validated board geometry.
func (l *Level) Geometry() (*board.Geometry, error) {
	return board.NewGeometry(l.Width, l.Height, l.Capacity)
}

// Board builds the level's initial board state.
func (l *Level) Board() (*board.Board, error) {
	geo, err := l.Geometry()
	if err != nil {
		return nil, err
	}
	return board.NewFromStacks(geo, l.Stacks)
}

// Parse reads a level definition in the text format:
//
//	# Level 1
//	# Difficulty: Easy
//	# Moves: 8
//	width: 4
//	height: 3
//	capacity: 3
//	0: R2 R2 G3
//	4:
//
// Header comments and the capacity field are optional; missing values fall
// back to defaults. Stack lines list layers bottom-to-top.
func Parse(r io.Reader) (*Level, error) {
	l := &Level{
		Difficulty: DifficultyMedium,
		ParMoves:   defaultParMoves,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Capacity:   defaultCapacity,
		Stacks:     make(map[int][]board.Layer),
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if err := l.parseComment(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		field, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed line %q", lineNo, line)
		}
		field = strings.TrimSpace(field)
		rest = strings.TrimSpace(rest)

		switch field {
		case "width":
			v, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: width: %w", lineNo, err)
			}
			l.Width = v
		case "height":
			v, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: height: %w", lineNo, err)
			}
			l.Height = v
		case "capacity":
			v, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: capacity: %w", lineNo, err)
			}
			l.Capacity = v
		default:
			idx, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: unknown field %q", lineNo, field)
			}
			stack, err := parseStack(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: tube %d: %w", lineNo, idx, err)
			}
			if len(stack) > 0 {
				l.Stacks[idx] = stack
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// parseComment extracts metadata from a "# ..." header line. Comments that
// carry no known metadata are ignored.
func (l *Level) parseComment(line string) error {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	switch {
	case strings.HasPrefix(body, "Level "):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(body, "Level ")))
		if err != nil {
			return fmt.Errorf("level number: %w", err)
		}
		l.Number = n
	case strings.HasPrefix(body, "Difficulty:"):
		d, err := ParseDifficulty(strings.TrimPrefix(body, "Difficulty:"))
		if err != nil {
			return err
		}
		l.Difficulty = d
	case strings.HasPrefix(body, "Moves:"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(body, "Moves:")))
		if err != nil {
			return fmt.Errorf("par moves: %w", err)
		}
		l.ParMoves = n
	}
	return nil
}

// parseStack parses a space-separated run of layer tokens like "R2 G3".
func parseStack(s string) ([]board.Layer, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	stack := make([]board.Layer, 0, len(fields))
	for _, tok := range fields {
		l, err := board.ParseLayer(tok)
		if err != nil {
			return nil, err
		}
		stack = append(stack, l)
	}
	return stack, nil
}

// ParseFile reads a level definition from path.
func ParseFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Encode renders the level in the text format, listing every tube index
// including empty ones, in ascending order. Parse(Encode(l)) reproduces l.
func (l *Level) Encode() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Level %d\n", l.Number)
	fmt.Fprintf(&buf, "# Difficulty: %s\n", l.Difficulty)
	fmt.Fprintf(&buf, "# Moves: %d\n", l.ParMoves)
	fmt.Fprintf(&buf, "width: %d\n", l.Width)
	fmt.Fprintf(&buf, "height: %d\n", l.Height)
	fmt.Fprintf(&buf, "capacity: %d\n", l.Capacity)

	for idx := range l.Width * l.Height {
		stack := l.Stacks[idx]
		toks := make([]string, len(stack))
		for i, layer := range stack {
			toks[i] = layer.String()
		}
		fmt.Fprintf(&buf, "%d: %s\n", idx, strings.Join(toks, " "))
	}
	return buf.Bytes()
}

// WriteFile writes the encoded level to path.
func (l *Level) WriteFile(path string) error {
	return os.WriteFile(path, l.Encode(), 0o644)
}
