package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

type sample struct {
	Year int    `json:"year"`
	Name string `json:"name,omitempty"`
}

func TestJSONCodec(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		c := encoding.GetCodec(Name)
		require.NotNil(t, c)
		assert.Equal(t, "json", c.Name())
	})

	t.Run("round trip", func(t *testing.T) {
		var c JSON
		b, err := c.Marshal(&sample{Year: 2024})
		require.NoError(t, err)
		assert.JSONEq(t, `{"year":2024}`, string(b))

		var out sample
		require.NoError(t, c.Unmarshal(b, &out))
		assert.Equal(t, 2024, out.Year)
	})

	t.Run("empty payload leaves value untouched", func(t *testing.T) {
		out := sample{Year: 1}
		require.NoError(t, JSON{}.Unmarshal(nil, &out))
		assert.Equal(t, 1, out.Year)
	})

	t.Run("invalid payload", func(t *testing.T) {
		var out sample
		err := JSON{}.Unmarshal([]byte(`{"year":"x"}`), &out)
		assert.Error(t, err)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := JSON{}.Marshal(make(chan int))
		assert.Error(t, err)
	})
}
