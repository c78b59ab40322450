package signal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticAndOr(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, Static(3)())
	require.Equal(t, "fallback", Or[string](nil, "fallback")())
	require.Equal(t, "set", Or(Static("set"), "fallback")())
}

func TestWritableReadsReflectLatestValue(t *testing.T) {
	t.Parallel()

	w := NewWritable([]string{"a"})
	read := w.Signal()

	w.Update(func(v []string) []string { return append(v, "b") })
	require.Equal(t, []string{"a", "b"}, read())

	w.Set(nil)
	require.Empty(t, read())
}

func TestWritableSubscribe(t *testing.T) {
	t.Parallel()

	w := NewWritable(0)
	var seen []int
	unsubscribe := w.Subscribe(func(v int) { seen = append(seen, v) })

	w.Set(1)
	w.Set(2)
	unsubscribe()
	w.Set(3)

	require.Equal(t, []int{1, 2}, seen)
}

func TestWritableUnsubscribeDuringNotify(t *testing.T) {
	t.Parallel()

	w := NewWritable(0)
	calls := 0
	var unsubscribe func()
	unsubscribe = w.Subscribe(func(int) {
		calls++
		unsubscribe()
	})

	w.Set(1)
	w.Set(2)
	require.Equal(t, 1, calls)
}
