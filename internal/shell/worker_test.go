package shell

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/terminal"
	"github.com/footprint-tools/treesh/internal/usage"
)

func TestWorker_WaitReturnsAfterExit(t *testing.T) {
	f := newFixture()
	src := terminal.NewScriptSource().Line("send mobile binding update").Line("exit")

	w := Start(New(f.root, src, &bytes.Buffer{}, Options{Quiet: true}))

	require.NoError(t, w.Wait())
	require.Equal(t, []string{"send mobile binding update"}, f.update.calls)

	select {
	case <-w.Done():
	default:
		t.Fatal("Done must be closed once Wait returns")
	}
}

func TestWorker_ActionPanicIsSurfaced(t *testing.T) {
	tree := dispatchers.Build([]dispatchers.CommandSpec{
		{Name: "boom", Parent: dispatchers.RootName, Depth: 0, Action: dispatchers.ActionFunc(func(string) {
			panic("action exploded")
		})},
	})
	src := terminal.NewScriptSource().Line("boom").Line("exit")

	err := Start(New(tree.Root, src, &bytes.Buffer{}, Options{Quiet: true})).Wait()

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "action exploded", pe.Value)
	require.NotEmpty(t, pe.Stack)
	require.Equal(t, "shell worker panicked: action exploded", err.Error())
	require.Positive(t, src.Remaining(), "loop stops at the panic")
}

func TestWorker_SourceFailureIsSurfaced(t *testing.T) {
	f := newFixture()
	src := terminal.NewScriptSource()
	src.Err = errors.New("device gone")

	err := Start(New(f.root, src, &bytes.Buffer{}, Options{Quiet: true})).Wait()

	require.True(t, usage.IsKind(err, usage.ErrInputSource))
}

type blockingSource struct {
	release chan struct{}
}

func (b *blockingSource) Next() (terminal.Event, error) {
	<-b.release
	return terminal.Event{}, errors.New("released")
}

func TestWorker_WaitBlocksUntilLoopEnds(t *testing.T) {
	f := newFixture()
	src := &blockingSource{release: make(chan struct{})}

	w := Start(New(f.root, src, &bytes.Buffer{}, Options{Quiet: true}))

	select {
	case <-w.Done():
		t.Fatal("worker ended before input was available")
	case <-time.After(20 * time.Millisecond):
	}

	close(src.release)
	require.Error(t, w.Wait())
}
