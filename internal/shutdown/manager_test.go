package shutdown

import (
	"testing"

	"package-calculator/internal/logger"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) Shutdown() {
	*r.calls = append(*r.calls, r.name)
}

func TestShutdownReverseOrderOnce(t *testing.T) {
	var calls []string
	m := NewManager(logger.NoOp{})
	m.Register(recorder{"session", &calls})
	m.Register(recorder{"controller", &calls})

	m.Shutdown()
	m.Shutdown()

	require.Equal(t, []string{"controller", "session"}, calls)
	require.Error(t, m.ctx.Err())

	select {
	case <-m.done:
	default:
		t.Fatal("done channel not closed")
	}
}

func TestListenStopsWithContext(t *testing.T) {
	m := NewManager(logger.NoOp{})
	called := false
	m.Listen(func() { called = true })

	m.Shutdown()
	require.False(t, called)
}
