package optable

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Dispatch(t *testing.T) {
	t.Run("registered callback is invoked", func(t *testing.T) {
		tbl := New[string, string, string]()
		tbl.Register("upper", func(s string) (string, error) {
			return strings.ToUpper(s), nil
		})

		got, err := tbl.Dispatch("upper", "hello")
		require.NoError(t, err)
		assert.Equal(t, "HELLO", got)
	})

	t.Run("unknown tag", func(t *testing.T) {
		tbl := New[string, string, string]()

		invoked := false
		tbl.Register("known", func(s string) (string, error) {
			invoked = true
			return s, nil
		})

		got, err := tbl.Dispatch("unknown", "hello")
		require.Error(t, err)

		var unknownTag *ErrUnknownTag
		require.ErrorAs(t, err, &unknownTag)
		assert.Equal(t, "unknown", unknownTag.Tag)
		assert.Zero(t, got)
		assert.False(t, invoked, "no registered callback may run on an unknown tag")
	})

	t.Run("callback error passes through", func(t *testing.T) {
		wantErr := errors.New("bad input")
		tbl := New[int, int, int]()
		tbl.Register(1, func(int) (int, error) {
			return 0, wantErr
		})

		_, err := tbl.Dispatch(1, 42)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestTable_Register(t *testing.T) {
	t.Run("overwrite replaces the callback", func(t *testing.T) {
		tbl := New[string, int, int]()
		tbl.Register("double", func(v int) (int, error) { return v * 2, nil })
		tbl.Register("double", func(v int) (int, error) { return v * 3, nil })

		got, err := tbl.Dispatch("double", 10)
		require.NoError(t, err)
		assert.Equal(t, 30, got)
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("nil callback removes the registration", func(t *testing.T) {
		tbl := New[string, int, int]()
		tbl.Register("op", func(v int) (int, error) { return v, nil })
		tbl.Register("op", nil)

		_, ok := tbl.Lookup("op")
		assert.False(t, ok)
		assert.Zero(t, tbl.Len())

		var unknownTag *ErrUnknownTag
		_, err := tbl.Dispatch("op", 1)
		assert.ErrorAs(t, err, &unknownTag)
	})
}

func TestTable_Lookup(t *testing.T) {
	tbl := New[uint32, []byte, int]()
	tbl.Register(7, func(b []byte) (int, error) { return len(b), nil })

	cb, ok := tbl.Lookup(7)
	require.True(t, ok)
	n, err := cb([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	cb, ok = tbl.Lookup(8)
	assert.False(t, ok)
	assert.Nil(t, cb)
}
