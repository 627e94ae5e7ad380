// Package teatest runs a line-oriented bubbletea model without a terminal.
//
// Input is fed straight into Update and the returned Cmds are run on the
// same goroutine until the queue is empty. Each submitted line records the
// transcript it produced, so tests can assert on one reply at a time.
package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps bounds how many messages one input may cascade into.
const maxSteps = 200

// cmdWait is how long a Cmd may take before its message is dropped.
// Cursor blinks sleep for about half a second and are dropped this way.
const cmdWait = 10 * time.Millisecond

// Driver owns a model and the output of the last submitted line.
type Driver struct {
	t     testing.TB
	model tea.Model
	quit  bool
	last  string
}

// New sizes model to width x height and runs its Init command.
func New(t testing.TB, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	d.run(model.Init())
	return d
}

// Model returns the model as of the last processed message.
func (d *Driver) Model() tea.Model { return d.model }

// Quit reports whether the model asked the program to exit.
func (d *Driver) Quit() bool { return d.quit }

// Send feeds msg to the model. Nothing is delivered after a quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quit {
		return
	}
	var cmd tea.Cmd
	d.model, cmd = d.model.Update(msg)
	d.run(cmd)
}

// Press sends special keys such as tea.KeyUp or tea.KeyCtrlC in order.
func (d *Driver) Press(keys ...tea.KeyType) {
	d.t.Helper()
	for _, k := range keys {
		d.Send(tea.KeyMsg{Type: k})
	}
}

// Line types raw as a single paste, presses Enter and returns the lines
// the model added to its view.
func (d *Driver) Line(raw string) string {
	d.t.Helper()
	before := d.View()
	if raw != "" {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(raw)})
	}
	d.Press(tea.KeyEnter)
	d.last = added(before, d.View())
	return d.last
}

// Say submits a conversation message.
func (d *Driver) Say(message string) string {
	d.t.Helper()
	return d.Line(message)
}

// Slash submits /command with args, double-quoting args that contain
// spaces.
func (d *Driver) Slash(command string, args ...string) string {
	d.t.Helper()
	var b strings.Builder
	b.WriteString("/" + command)
	for _, a := range args {
		b.WriteByte(' ')
		if strings.ContainsAny(a, " \t") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		b.WriteString(a)
	}
	return d.Line(b.String())
}

// View is the model's full render.
func (d *Driver) View() string { return d.model.View() }

// Output is what the last submitted line added to the view.
func (d *Driver) Output() string { return d.last }

// RequireView fails unless the full view contains every want.
func (d *Driver) RequireView(wants ...string) {
	d.t.Helper()
	requireContains(d.t, "view", d.View(), wants)
}

// RequireOutput fails unless the last reply contains every want.
func (d *Driver) RequireOutput(wants ...string) {
	d.t.Helper()
	requireContains(d.t, "reply", d.last, wants)
}

// RejectOutput fails if the last reply contains any of unwanted.
func (d *Driver) RejectOutput(unwanted ...string) {
	d.t.Helper()
	for _, u := range unwanted {
		if strings.Contains(d.last, u) {
			d.t.Fatalf("reply contains %q:\n%s", u, d.last)
		}
	}
}

func requireContains(t testing.TB, what, got string, wants []string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Fatalf("%s does not contain %q:\n%s", what, w, got)
		}
	}
}

// run drains cmd breadth first. Batches are flattened into the queue.
func (d *Driver) run(cmd tea.Cmd) {
	d.t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps == maxSteps {
			d.t.Fatalf("teatest: more than %d messages from one input", maxSteps)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg, ok := await(next)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			d.quit = true
			d.model, _ = d.model.Update(msg)
			return
		default:
			var follow tea.Cmd
			d.model, follow = d.model.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func await(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, msg != nil
	case <-time.After(cmdWait):
		return nil, false
	}
}

// added returns the lines of after that are not shared with before at the
// start or the end.
func added(before, after string) string {
	b := strings.Split(before, "\n")
	a := strings.Split(after, "\n")
	head := 0
	for head < len(b) && head < len(a) && b[head] == a[head] {
		head++
	}
	tail := 0
	for tail < len(b)-head && tail < len(a)-head && b[len(b)-1-tail] == a[len(a)-1-tail] {
		tail++
	}
	return strings.Join(a[head:len(a)-tail], "\n")
}
