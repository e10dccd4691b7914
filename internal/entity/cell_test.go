package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	assert.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	assert.Equal(t, PlayerNone, PlayerNone.Opponent())
}

func TestPlayer_Cell(t *testing.T) {
	assert.Equal(t, CellWhite, PlayerWhite.Cell())
	assert.Equal(t, CellBlack, PlayerBlack.Cell())
}

func TestCell_Owner(t *testing.T) {
	owner, ok := CellBlack.Owner()
	assert.True(t, ok)
	assert.Equal(t, PlayerBlack, owner)

	owner, ok = CellWhite.Owner()
	assert.True(t, ok)
	assert.Equal(t, PlayerWhite, owner)

	_, ok = CellEmpty.Owner()
	assert.False(t, ok)
}

func TestCell_Text(t *testing.T) {
	t.Run("Encodes cells by name", func(t *testing.T) {
		data, err := json.Marshal([]Cell{CellEmpty, CellWhite, CellBlack})

		require.NoError(t, err)
		assert.JSONEq(t, `["empty","white","black"]`, string(data))
	})

	t.Run("Decodes cells by name", func(t *testing.T) {
		var cells []Cell

		err := json.Unmarshal([]byte(`["black","empty","white"]`), &cells)

		require.NoError(t, err)
		assert.Equal(t, []Cell{CellBlack, CellEmpty, CellWhite}, cells)
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		var cell Cell

		err := json.Unmarshal([]byte(`"red"`), &cell)

		assert.ErrorIs(t, err, ErrUnknownCell)
	})
}

func TestPlayer_Text(t *testing.T) {
	t.Run("Round trips through JSON", func(t *testing.T) {
		data, err := json.Marshal(PlayerBlack)
		require.NoError(t, err)
		assert.JSONEq(t, `"black"`, string(data))

		var player Player
		require.NoError(t, json.Unmarshal(data, &player))
		assert.Equal(t, PlayerBlack, player)
	})

	t.Run("Encodes no player as an empty string", func(t *testing.T) {
		data, err := json.Marshal(PlayerNone)

		require.NoError(t, err)
		assert.JSONEq(t, `""`, string(data))
	})

	t.Run("Rejects unknown players", func(t *testing.T) {
		var player Player

		err := json.Unmarshal([]byte(`"empty"`), &player)

		assert.ErrorIs(t, err, ErrUnknownPlayer)
	})
}
