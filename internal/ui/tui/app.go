package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/usecase"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptExport
	promptLoad
)

const (
	defaultWidth  = 80
	inputHeight   = 8
	resultsHeight = 10
)

type model struct {
	theme Theme
	deps  Deps

	input   textarea.Model
	bar     progress.Model
	results viewport.Model
	prompt  textinput.Model

	promptKind promptKind
	promptPart domain.Partition

	task       *usecase.Task
	running    bool
	progress   domain.BatchProgress
	outcome    domain.BatchOutcome
	hasOutcome bool
	summary    string
	toast      string

	width int
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ta := textarea.New()
	ta.Placeholder = "Paste URLs here, separated by spaces or new lines…"
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(defaultWidth)
	ta.SetHeight(inputHeight)
	ta.Focus()

	ti := textinput.New()
	ti.CharLimit = 0

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		input:   ta,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultWidth)),
		results: viewport.New(defaultWidth, resultsHeight),
		prompt:  ti,
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-6, 20)
		m.input.SetWidth(m.width)
		m.bar.Width = m.width
		m.results.Width = m.width
		m.prompt.Width = m.width - 20
		m.refreshResults()
		return m, nil

	case batchEventMsg:
		m.applyEvent(msg.ev)
		if m.task == nil {
			return m, nil
		}
		return m, listenBatch(m.task)

	case batchDoneMsg:
		return m.finishBatch(msg), nil

	case exportDoneMsg:
		switch {
		case msg.err != nil:
			m.deps.logger().Error("tui.export.failed", "partition", string(msg.partition), "err", msg.err)
			m.toast = userMessage(msg.err)
		case msg.saved != "":
			m.toast = fmt.Sprintf("%s results saved to %s", msg.partition.Label(), msg.saved)
		default:
			m.toast = "Export skipped"
		}
		return m, nil

	case fileLoadedMsg:
		if msg.err != nil {
			m.deps.logger().Error("tui.load.failed", "path", msg.path, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.appendInput(msg.text)
		m.toast = "Loaded " + msg.path
		return m, nil

	case tea.KeyMsg:
		if m.promptKind != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	if m.promptKind != promptNone {
		m.prompt, cmd = m.prompt.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.task != nil {
			m.task.Cancel()
		}
		return m, tea.Quit

	case "ctrl+r":
		return m.startBatch()

	case "esc":
		if m.running && m.task != nil {
			m.task.Cancel()
			m.toast = "Canceling…"
			return m, nil
		}

	case "ctrl+l":
		if m.running {
			m.toast = "Cannot reset while a batch is running"
			return m, nil
		}
		return m.reset(), nil

	case "ctrl+o":
		if m.running {
			return m, nil
		}
		return m.openPrompt(promptLoad, "", "File to load: ", ""), nil

	case "ctrl+w":
		return m.requestExport(domain.PartitionWorking), nil

	case "ctrl+f":
		return m.requestExport(domain.PartitionNotWorking), nil
	}

	if m.running {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.task != nil {
			m.task.Cancel()
		}
		return m, tea.Quit

	case "esc":
		kind := m.promptKind
		m = m.closePrompt()
		if kind == promptExport {
			m.toast = "Export skipped"
		}
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		kind, part := m.promptKind, m.promptPart
		m = m.closePrompt()

		switch kind {
		case promptExport:
			return m, cmdExport(m.deps, m.outcome, part, value)
		case promptLoad:
			if value == "" {
				return m, nil
			}
			return m, cmdLoadFile(m.deps, value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m model) startBatch() (tea.Model, tea.Cmd) {
	if m.running {
		m.toast = userMessage(usecase.ErrBatchRunning)
		return m, nil
	}

	text := m.input.Value()
	if len(domain.NewEntries(text)) == 0 {
		m.toast = userMessage(&domain.OpError{Op: "tui.run", Kind: domain.KindNoURLs, Err: domain.ErrNoURLs})
		return m, nil
	}

	task, cmd, err := startBatchAsync(m.deps, text)
	if err != nil {
		m.toast = userMessage(err)
		return m, nil
	}

	m.task = task
	m.running = true
	m.progress = domain.BatchProgress{}
	m.outcome = domain.BatchOutcome{}
	m.hasOutcome = false
	m.summary = ""
	m.toast = ""
	m.input.Blur()
	m.refreshResults()
	return m, cmd
}

func (m *model) applyEvent(ev domain.Event) {
	switch e := ev.(type) {
	case domain.ProgressEvent:
		m.progress = e.Progress
		m.outcome.Results = append(m.outcome.Results, e.Result)
		m.refreshResults()
		m.results.GotoBottom()
	case domain.SummaryEvent:
		m.summary = e.String()
	case domain.FatalEvent:
		if e.Reason == domain.FatalNoURLs {
			m.toast = "Please enter some URLs to check."
		}
	}
}

func (m model) finishBatch(msg batchDoneMsg) model {
	m.running = false
	m.task = nil
	m.input.Focus()

	if msg.err != nil && !domain.IsKind(msg.err, domain.KindNoURLs) {
		m.deps.logger().Warn("tui.batch.ended", "err", msg.err, "results", len(msg.outcome.Results))
		m.toast = userMessage(msg.err)
	}
	if len(msg.outcome.Results) > 0 {
		m.outcome = msg.outcome
		m.hasOutcome = true
	}
	return m
}

func (m model) requestExport(p domain.Partition) model {
	if m.running {
		m.toast = "Wait for the batch to finish before exporting"
		return m
	}
	if !m.hasOutcome || len(m.outcome.URLs(p)) == 0 {
		m.toast = fmt.Sprintf("No %s URLs to export", strings.ToLower(p.Label()))
		return m
	}
	return m.openPrompt(promptExport, p, fmt.Sprintf("Save %s results to: ", p.Label()), defaultExportPath(m.deps, p))
}

func (m model) openPrompt(kind promptKind, p domain.Partition, label, value string) model {
	m.promptKind = kind
	m.promptPart = p
	m.prompt.Prompt = label
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.input.Blur()
	m.toast = ""
	return m
}

func (m model) closePrompt() model {
	m.promptKind = promptNone
	m.promptPart = ""
	m.prompt.Blur()
	m.prompt.SetValue("")
	if !m.running {
		m.input.Focus()
	}
	return m
}

func (m model) reset() model {
	m.input.Reset()
	m.progress = domain.BatchProgress{}
	m.outcome = domain.BatchOutcome{}
	m.hasOutcome = false
	m.summary = ""
	m.toast = ""
	m.refreshResults()
	return m
}

func (m *model) appendInput(text string) {
	cur := m.input.Value()
	if cur != "" && !strings.HasSuffix(cur, "\n") {
		cur += "\n"
	}
	m.input.SetValue(cur + text)
}

func (m *model) refreshResults() {
	if len(m.outcome.Results) == 0 {
		m.results.SetContent(m.theme.Help.Render("Results will appear here."))
		return
	}
	rendered := make([]string, 0, len(m.outcome.Results))
	for _, r := range m.outcome.Results {
		rendered = append(rendered, renderResultLine(m.theme, r, m.width))
	}
	m.results.SetContent(strings.Join(rendered, "\n"))
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("linkcheck"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Batch URL reachability checker"))
	b.WriteString("\n")
	if m.deps.WorkspaceRoot != "" {
		b.WriteString(m.theme.Help.Render("Workspace: " + m.deps.WorkspaceRoot))
		b.WriteString("\n")
	}
	if m.deps.Debug && m.deps.LogPath != "" {
		b.WriteString(m.theme.Help.Render("Log: " + m.deps.LogPath))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.theme.Card.Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(m.progress.Percent() / 100))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(renderCounters(m.progress)))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Card.Render(m.results.View()))
	b.WriteString("\n")

	if m.summary != "" {
		b.WriteString(m.theme.Title.Render(m.summary))
		b.WriteString("\n")
	}
	if m.promptKind != promptNone {
		b.WriteString(m.theme.Prompt.Render(m.prompt.View()))
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("enter confirm • esc skip"))
		b.WriteString("\n")
	}
	if m.toast != "" {
		b.WriteString(m.theme.Toast.Render(m.toast))
		b.WriteString("\n")
	}

	help := "ctrl+r check • ctrl+o load file • ctrl+w export working • ctrl+f export not working • ctrl+l reset • ctrl+c quit"
	if m.running {
		help = "esc cancel • ctrl+c quit"
	}
	b.WriteString(m.theme.Help.Render(help))

	return wrap.Render(b.String())
}
