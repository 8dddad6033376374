package progress

import (
	"fmt"
	"io"
	"sync"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/hdcodedev/gh-context/internal/ui/styles"
)

// Spinner shows an animated message while work of unknown length runs,
// such as listing a repository's issues.
type Spinner struct {
	out     io.Writer
	message string
	mu      sync.Mutex
	run     *runner
}

type spinnerModel struct {
	spinner spinner.Model
	message string
}

// NewSpinner creates a spinner showing message.
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{out: out, message: message}
}

// Start begins the animation. Calling Start twice is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.MutedStyle

	s.run = newRunner(s.out)
	s.run.start(spinnerModel{spinner: sp, message: s.message})
}

// Stop stops the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	run := s.run
	s.run = nil
	s.mu.Unlock()

	if run != nil {
		run.stop()
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}
