package progress

import (
	"fmt"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
)

// stopTimeout bounds how long Stop waits for the program to exit.
const stopTimeout = 500 * time.Millisecond

// runner drives a bubbletea program that renders to out until stopped.
type runner struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

func newRunner(out io.Writer) *runner {
	return &runner{out: out, done: make(chan struct{})}
}

func (r *runner) start(model tea.Model) {
	r.program = tea.NewProgram(model, tea.WithoutSignalHandler(), tea.WithOutput(r.out))
	go func() {
		_, _ = r.program.Run()
		close(r.done)
	}()
}

func (r *runner) stop() {
	if r.program == nil {
		return
	}
	r.program.Quit()

	select {
	case <-r.done:
	case <-time.After(stopTimeout):
	}

	fmt.Fprint(r.out, "\r\033[K")
}
