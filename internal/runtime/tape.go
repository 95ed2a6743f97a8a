package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/cinta/pkg/domain"
)

// Tape models a bidirectionally-infinite tape with a movable head.
// Cells are stored sparsely in a map keyed by signed position; unset cells
// implicitly hold the blank symbol, so arbitrary leftward/rightward excursions
// cost O(visited cells) space. No stored cell ever holds the blank: writing
// the blank removes the entry instead, which keeps equality and rendering
// independent of how the tape was reached.
type Tape struct {
	blank string
	cells map[int]string
	head  int
}

// NewTape creates an empty tape with the head at position 0.
func NewTape(blank string) *Tape {
	return &Tape{
		blank: blank,
		cells: make(map[int]string),
	}
}

// LoadInput clears the tape, writes each character of input at increasing
// positions starting at 0, and resets the head to 0. Characters equal to the
// blank symbol are stored verbatim: only Write elides blanks.
func (t *Tape) LoadInput(input string) {
	t.cells = make(map[int]string)
	for i, r := range []rune(input) {
		t.cells[i] = string(r)
	}
	t.head = 0
}

// Read returns the symbol under the head, or the blank symbol if unset.
func (t *Tape) Read() string {
	if sym, ok := t.cells[t.head]; ok {
		return sym
	}
	return t.blank
}

// Write sets the cell under the head. Writing the blank symbol removes the
// stored entry, maintaining the sparsity invariant.
func (t *Tape) Write(symbol string) {
	if symbol == t.blank {
		delete(t.cells, t.head)
		return
	}
	t.cells[t.head] = symbol
}

// Move shifts the head one position. Any direction other than L/R/S is a
// fatal input error.
func (t *Tape) Move(direction domain.Move) error {
	switch direction {
	case domain.MoveLeft:
		t.head--
	case domain.MoveRight:
		t.head++
	case domain.MoveStay:
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidMove, string(direction))
	}
	return nil
}

// Head returns the current head position.
func (t *Tape) Head() int {
	return t.head
}

// bounds returns the inclusive position range covering the stored cells and
// the head. With no stored cells the range collapses to the head position.
func (t *Tape) bounds() (int, int) {
	min, max := t.head, t.head
	for pos := range t.cells {
		if pos < min {
			min = pos
		}
		if pos > max {
			max = pos
		}
	}
	return min, max
}

// View returns the symbols from min(used ∪ {head}) to max(used ∪ {head}),
// blank-filled where unset, plus the head's index within that slice. The tape
// is conceptually infinite; this minimal window is what gets rendered.
func (t *Tape) View() ([]string, int) {
	min, max := t.bounds()
	symbols := make([]string, 0, max-min+1)
	for pos := min; pos <= max; pos++ {
		if sym, ok := t.cells[pos]; ok {
			symbols = append(symbols, sym)
		} else {
			symbols = append(symbols, t.blank)
		}
	}
	return symbols, t.head - min
}

// String renders the view as a plain string, head position not marked.
func (t *Tape) String() string {
	symbols, _ := t.View()
	return strings.Join(symbols, "")
}

// Contents renders only the stored cell range, blank-filling interior gaps.
// Unlike String it ignores the head, so a wholly-blank tape yields "".
func (t *Tape) Contents() string {
	if len(t.cells) == 0 {
		return ""
	}
	min, max := 0, 0
	first := true
	for pos := range t.cells {
		if first {
			min, max = pos, pos
			first = false
			continue
		}
		if pos < min {
			min = pos
		}
		if pos > max {
			max = pos
		}
	}
	var sb strings.Builder
	for pos := min; pos <= max; pos++ {
		if sym, ok := t.cells[pos]; ok {
			sb.WriteString(sym)
		} else {
			sb.WriteString(t.blank)
		}
	}
	return sb.String()
}
