package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected int
	}{
		{Ace, 11},
		{Two, 2},
		{Three, 3},
		{Four, 4},
		{Five, 5},
		{Six, 6},
		{Seven, 7},
		{Eight, 8},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			for _, suit := range AllSuits {
				assert.Equal(t, tt.expected, New(tt.rank, suit).Value())
			}
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "5H", New(Five, Hearts).String())
	assert.Equal(t, "AC", New(Ace, Clubs).String())
	assert.Equal(t, "TD", New(Ten, Diamonds).String())
	assert.Equal(t, "KS", New(King, Spades).String())

	for _, suit := range AllSuits {
		for _, rank := range AllRanks {
			assert.Len(t, New(rank, suit).String(), 2)
		}
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Five of Hearts", New(Five, Hearts).Name())
	assert.Equal(t, "Queen of Spades", New(Queen, Spades).Name())
}

func TestParse(t *testing.T) {
	for _, suit := range AllSuits {
		for _, rank := range AllRanks {
			c := New(rank, suit)
			parsed, err := Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}

	for _, bad := range []string{"", "A", "ACE", "1C", "AX", "ac", "10H"} {
		_, err := Parse(bad)
		assert.Error(t, err, "code %q", bad)
	}
}
