package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapHelpers(t *testing.T) {
	t.Run("keys follow insertion order", func(t *testing.T) {
		m := NewStateChampions()
		Append(m, "TX")
		Append(m, "OK")
		Append(m, "FL")
		Append(m, "TX", ChampionRecord{ClassName: "Street 1"})

		assert.Equal(t, []string{"TX", "OK", "FL"}, Keys(m))
		tx, _ := m.Get("TX")
		assert.Len(t, tx, 1)
	})

	t.Run("GetOrInsert only builds once", func(t *testing.T) {
		m := NewFormatResults()
		built := 0
		newFn := func() *ClassResults {
			built++
			return NewClassResults()
		}

		first := GetOrInsert(m, "SPL", newFn)
		second := GetOrInsert(m, "SPL", newFn)

		assert.Equal(t, 1, built)
		assert.Same(t, first, second)
	})

	t.Run("Append creates then extends", func(t *testing.T) {
		m := NewClassResults()
		Append(m, "a", ResultRecord{Placement: 1})
		Append(m, "b")
		Append(m, "a", ResultRecord{Placement: 2}, ResultRecord{Placement: 3})

		a, _ := m.Get("a")
		b, ok := m.Get("b")
		require.Len(t, a, 3)
		assert.Equal(t, 3, a[2].Placement)
		assert.True(t, ok)
		assert.NotNil(t, b)
		assert.Empty(t, b)
	})

	t.Run("Keys of empty map", func(t *testing.T) {
		assert.Empty(t, Keys(NewFormatResults()))
	})
}

func TestOrderedMapJSON(t *testing.T) {
	t.Run("empty map encodes as object", func(t *testing.T) {
		b, err := json.Marshal(NewStateChampions())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(b))
	})

	t.Run("nested round trip keeps order", func(t *testing.T) {
		team := "Bass Kings"
		in := NewFormatResults()
		sql := GetOrInsert(in, "SQL", NewClassResults)
		Append(sql, "Stock", ResultRecord{Placement: 1, CompetitorName: "Bob Ray", Score: 88})
		spl := GetOrInsert(in, "SPL", NewClassResults)
		Append(spl, "Trunk 1", ResultRecord{Placement: 1, CompetitorName: "Cid Moe", Score: 150})
		Append(spl, "Street 1", ResultRecord{Placement: 1, CompetitorName: "Ann Lee", TeamName: &team, Score: 151.2})

		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.Equal(t,
			`{"SQL":{"Stock":[{"placement":1,"competitorName":"Bob Ray","teamName":null,"state":null,"score":88}]},`+
				`"SPL":{"Trunk 1":[{"placement":1,"competitorName":"Cid Moe","teamName":null,"state":null,"score":150}],`+
				`"Street 1":[{"placement":1,"competitorName":"Ann Lee","teamName":"Bass Kings","state":null,"score":151.2}]}}`,
			string(b))

		var out FormatResults
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, []string{"SQL", "SPL"}, Keys(&out))

		outSPL, ok := out.Get("SPL")
		require.True(t, ok)
		assert.Equal(t, []string{"Trunk 1", "Street 1"}, Keys(outSPL))

		street, _ := outSPL.Get("Street 1")
		require.Len(t, street, 1)
		assert.Equal(t, "Bass Kings", *street[0].TeamName)

		again, err := json.Marshal(&out)
		require.NoError(t, err)
		assert.Equal(t, string(b), string(again))
	})

	t.Run("rejects non-object", func(t *testing.T) {
		var m StateChampions
		assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
	})
}
