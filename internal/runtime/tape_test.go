package runtime

import (
	"testing"

	"github.com/aretw0/cinta/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTape_LoadInputRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"simple", "aabb"},
		{"empty", ""},
		{"single", "a"},
		{"contains blank chars", "aBBa"},
		{"leading and trailing blanks", "BaB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tape := NewTape("B")
			tape.LoadInput(tc.input)

			if tc.input == "" {
				// Empty tape collapses the view to the head cell.
				assert.Equal(t, "B", tape.String())
				assert.Equal(t, "", tape.Contents())
				return
			}
			// Input characters are stored verbatim, even blanks: only
			// Write elides the blank symbol.
			assert.Equal(t, tc.input, tape.String())
			assert.Equal(t, tc.input, tape.Contents())
		})
	}
}

func TestTape_LoadInputResetsHead(t *testing.T) {
	tape := NewTape("B")
	tape.LoadInput("abc")
	require.NoError(t, tape.Move(domain.MoveRight))
	require.NoError(t, tape.Move(domain.MoveRight))

	tape.LoadInput("xy")
	assert.Equal(t, 0, tape.Head())
	assert.Equal(t, "x", tape.Read())
}

func TestTape_WriteBlankElidesCell(t *testing.T) {
	tape := NewTape("B")
	tape.LoadInput("a")

	tape.Write("B")
	assert.Equal(t, "B", tape.Read(), "reading an elided cell returns the blank")
	assert.Equal(t, "", tape.Contents(), "no stored cells remain")

	// Identical to never having written there.
	fresh := NewTape("B")
	fresh.LoadInput("")
	assert.Equal(t, fresh.Read(), tape.Read())
	assert.Equal(t, fresh.Contents(), tape.Contents())
}

func TestTape_MoveInverse(t *testing.T) {
	tape := NewTape("B")
	tape.LoadInput("ab")

	require.NoError(t, tape.Move(domain.MoveLeft))
	require.NoError(t, tape.Move(domain.MoveRight))
	assert.Equal(t, 0, tape.Head())

	require.NoError(t, tape.Move(domain.MoveRight))
	require.NoError(t, tape.Move(domain.MoveLeft))
	assert.Equal(t, 0, tape.Head())

	require.NoError(t, tape.Move(domain.MoveStay))
	assert.Equal(t, 0, tape.Head())
}

func TestTape_MoveInvalidDirection(t *testing.T) {
	tape := NewTape("B")
	err := tape.Move(domain.Move("X"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMove)
}

func TestTape_NegativePositions(t *testing.T) {
	tape := NewTape("B")
	tape.LoadInput("a")

	require.NoError(t, tape.Move(domain.MoveLeft))
	tape.Write("x")

	symbols, head := tape.View()
	assert.Equal(t, []string{"x", "a"}, symbols)
	assert.Equal(t, 0, head)
	assert.Equal(t, "xa", tape.String())
	assert.Equal(t, "xa", tape.Contents())
}

func TestTape_ViewIncludesHeadExcursion(t *testing.T) {
	tape := NewTape("B")
	tape.LoadInput("ab")

	// Walk two cells past the loaded region.
	require.NoError(t, tape.Move(domain.MoveRight))
	require.NoError(t, tape.Move(domain.MoveRight))
	require.NoError(t, tape.Move(domain.MoveRight))

	symbols, head := tape.View()
	assert.Equal(t, []string{"a", "b", "B", "B"}, symbols)
	assert.Equal(t, 3, head)
	assert.Equal(t, "abBB", tape.String())
	// Contents ignores the head, so the excursion leaves no trace.
	assert.Equal(t, "ab", tape.Contents())
}

func TestTape_ContentsFillsInteriorGaps(t *testing.T) {
	tape := NewTape("B")
	tape.LoadInput("abc")
	require.NoError(t, tape.Move(domain.MoveRight))
	tape.Write("B") // punch a hole at position 1

	assert.Equal(t, "aBc", tape.Contents())
}
