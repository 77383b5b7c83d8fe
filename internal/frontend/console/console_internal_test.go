package console

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/crawl/content"
	"github.com/cory-johannsen/crawl/internal/gameserver"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func testEngine(t testing.TB) *gameserver.Engine {
	t.Helper()
	c, err := gameserver.LoadContent(content.FS)
	require.NoError(t, err)
	e, err := gameserver.NewEngine(c, zeroSource{}, gameserver.DefaultOptions(), nil)
	require.NoError(t, err)
	return e
}

func TestScanLines_ReleasesReaderAfterStop(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()
	quit := make(chan struct{})
	lines := scanLines(in, quit)

	_, err := io.WriteString(w, "attack\n")
	require.NoError(t, err)
	assert.Equal(t, "attack", <-lines)

	close(quit)
	// The pending line is read but never delivered.
	_, err = io.WriteString(w, "status\n")
	require.NoError(t, err)
	select {
	case line, ok := <-lines:
		assert.False(t, ok, "got %q after quit", line)
	case <-time.After(5 * time.Second):
		t.Fatal("reader goroutine still running")
	}
}

func TestSession_StartStopsOnQuitCommand(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()
	s := New(testEngine(t), in, io.Discard, nil, Options{HeroID: "mago", DungeonID: "caverna_umida"})

	done := make(chan error, 1)
	go func() { done <- s.Start() }()
	_, err := io.WriteString(w, "quit\n")
	require.NoError(t, err)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end")
	}
	select {
	case <-s.quit:
	default:
		t.Fatal("session not stopped after Start returned")
	}
}
