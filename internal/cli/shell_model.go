package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/dotori/internal/cli/formatter"
	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/alexanderramin/dotori/internal/convctx"
	"github.com/alexanderramin/dotori/internal/season"
)

// maxTranscript is how many output entries the shell keeps on screen.
const maxTranscript = 40

type shellKeyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Clear  key.Binding
}

func defaultShellKeys() shellKeyMap {
	return shellKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
		Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear screen")),
	}
}

// shellModel is the bubbletea model of the chat REPL. Plain lines are
// analyzed as chat messages against the conversation so far; lines starting
// with / are shell commands or CLI subcommands.
type shellModel struct {
	ctx   context.Context
	app   *App
	input textinput.Model
	keys  shellKeyMap
	width int

	turns      []contract.Turn
	transcript []string

	history     []string
	historyIdx  int
	historyPath string

	quitting bool
}

func newShellModel(ctx context.Context, app *App, historyPath string) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "궁금한 점을 물어보세요"
	ti.CharLimit = 500

	hist := loadHistoryFromPath(historyPath)
	m := shellModel{
		ctx:         ctx,
		app:         app,
		input:       ti,
		keys:        defaultShellKeys(),
		history:     hist,
		historyIdx:  len(hist),
		historyPath: historyPath,
	}
	m.print(formatter.FormatShellWelcome(season.BriefingFor(app.now())))
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.promptPrefixPlain()) - 1
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			m.remember(line)
			return m, m.handleLine(line)
		case key.Matches(msg, m.keys.Prev):
			m.historyUp()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.historyDown()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.transcript = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("안녕히 가세요.") + "\n"
	}
	var b strings.Builder
	for _, entry := range m.transcript {
		b.WriteString(strings.TrimRight(entry, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(m.promptPrefix())
	b.WriteString(m.input.View())
	return b.String()
}

// ── line handling ────────────────────────────────────────────────────────────

func (m *shellModel) handleLine(line string) tea.Cmd {
	if !strings.HasPrefix(line, "/") {
		m.chat(line)
		return nil
	}

	words, err := splitShellArgs(strings.TrimPrefix(line, "/"))
	if err != nil {
		m.print(shellError(err))
		return nil
	}
	if len(words) == 0 {
		return nil
	}

	switch strings.ToLower(words[0]) {
	case "exit", "quit":
		m.quitting = true
		return tea.Quit
	case "help":
		m.print(formatter.FormatShellHelp())
	case "clear":
		m.turns = nil
		m.transcript = nil
		m.print(formatter.Dim("대화 기록을 지웠어요."))
	case "context":
		c := convctx.ExtractConversationContextN(m.turns, m.app.Config.Context.MaxFacilityIDs)
		m.print(formatter.FormatConversationContext(c))
	case "shell":
		m.print(formatter.StyleYellow.Render("이미 셸 안에 있어요."))
	default:
		m.print(m.runSubcommand(words))
	}
	return nil
}

// chat analyzes one message, prints the result and records both sides of
// the exchange so later messages see the context.
func (m *shellModel) chat(line string) {
	m.print(formatter.StyleAcorn.Render("나 ❯ ") + line)

	res, err := m.app.Advisor.Analyze(m.ctx, line, m.turns)
	if err != nil {
		m.print(shellError(err))
		return
	}

	labels := make([]string, len(res.QuickReplies.Buttons))
	for i, btn := range res.QuickReplies.Buttons {
		labels[i] = btn.Label
	}
	m.print(formatter.FormatAnalysis(res) + formatter.FormatQuickReplies(labels))

	reply := res.Empathy
	if reply == "" {
		reply = fmt.Sprintf("%s 질문으로 이해했어요.", res.Intent)
	}
	m.turns = append(m.turns,
		contract.Turn{Role: contract.RoleUser, Content: line},
		contract.Turn{Role: contract.RoleAssistant, Content: reply, Blocks: []contract.Block{res.QuickReplies}},
	)
}

// runSubcommand runs words through a fresh command tree sharing the app and
// returns everything it wrote. Global flags last for this command only.
func (m *shellModel) runSubcommand(words []string) string {
	defer m.app.restore()

	var buf bytes.Buffer
	root := NewRootCmd(m.app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(words)
	if err := root.ExecuteContext(m.ctx); err != nil {
		buf.WriteString(shellError(err))
	}
	return buf.String()
}

func (m *shellModel) print(entry string) {
	m.transcript = append(m.transcript, entry)
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		appendHistoryToPath(m.historyPath, line)
	}
	m.historyIdx = len(m.history)
}

func (m *shellModel) historyUp() {
	if m.historyIdx == 0 {
		return
	}
	m.historyIdx--
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m *shellModel) historyDown() {
	if m.historyIdx >= len(m.history) {
		return
	}
	m.historyIdx++
	if m.historyIdx == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m shellModel) promptPrefixPlain() string {
	return "dotori ❯ "
}

func (m shellModel) promptPrefix() string {
	return formatter.StyleAcorn.Render("dotori") + " " + formatter.Dim("❯") + " "
}

func shellError(err error) string {
	return formatter.StyleRed.Render("오류: " + err.Error())
}
