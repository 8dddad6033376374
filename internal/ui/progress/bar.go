package progress

import (
	"fmt"
	"io"
	"sync"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/hdcodedev/gh-context/internal/ui/styles"
)

// countUpdate carries the number of finished items.
type countUpdate int

// Bar shows how many of a known number of items are finished.
//
//	████████░░░░░░░░░░░░  4/10 issues
type Bar struct {
	out       io.Writer
	label     string
	total     int
	mu        sync.Mutex
	completed int
	updates   chan countUpdate
	run       *runner
}

type barModel struct {
	progress  progress.Model
	label     string
	total     int
	completed int
	updates   chan countUpdate
}

// NewBar creates a bar for total items described by label (e.g. "issues").
func NewBar(out io.Writer, total int, label string) *Bar {
	return &Bar{
		out:   out,
		label: label,
		total: total,
	}
}

// Start begins drawing the bar. Calling Start twice is a no-op.
func (b *Bar) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.run != nil {
		return
	}

	b.updates = make(chan countUpdate, 16)
	b.run = newRunner(b.out)
	b.run.start(barModel{
		progress: progress.New(
			progress.WithWidth(30),
			progress.WithoutPercentage(),
			progress.WithColors(styles.Primary, styles.Accent),
		),
		label:     b.label,
		total:     b.total,
		completed: b.completed,
		updates:   b.updates,
	})
}

// Set records the number of finished items. Safe for concurrent use;
// counts lower than the current one are ignored.
func (b *Bar) Set(completed int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if completed < b.completed {
		return
	}
	b.completed = completed
	if b.updates == nil {
		return
	}

	// Drop the update if the renderer is behind; a later one supersedes it.
	select {
	case b.updates <- countUpdate(completed):
	default:
	}
}

// Stop stops drawing and clears the line.
func (b *Bar) Stop() {
	b.mu.Lock()
	if b.updates == nil {
		b.mu.Unlock()
		return
	}
	close(b.updates)
	b.updates = nil
	run := b.run
	b.mu.Unlock()

	run.stop()
}

func (m barModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m barModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		n, ok := <-m.updates
		if !ok {
			return tea.Quit()
		}
		return n
	}
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countUpdate:
		m.completed = int(msg)
		return m, m.waitForUpdate()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}
}

func (m barModel) View() tea.View {
	return tea.NewView(m.line())
}

func (m barModel) line() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}
	return fmt.Sprintf("%s %3d/%d %s", m.progress.ViewAs(percent), m.completed, m.total, m.label)
}
