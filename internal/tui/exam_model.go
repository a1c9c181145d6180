package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

const (
	defaultQuestion   = "Answer"
	statusLifetime    = 2 * time.Second
	countdownInterval = time.Second
)

// examModel is the exam screen: one marker-aware field per question over a
// tiled dot pattern of the session token.
type examModel struct {
	ctx      context.Context
	services *service.ClientServices

	questions []string
	fields    []*watermark.Field
	focus     int

	pattern    watermark.DotMatrix
	hasPattern bool
	styles     patternStyles
	width      int

	deadline time.Time
	now      func() time.Time

	// clipboard access, replaced in tests
	readClipboard  func() (string, error)
	writeClipboard func(string) error

	status     string
	errMsg     string
	overlayErr string

	confirming    bool
	submitting    bool
	submitted     bool
	abandoned     bool
	quitByUser    bool
	showBuildInfo bool
	serverVersion string
	buildInfo     models.AppBuildInfo
}

func newExamModel(
	ctx context.Context,
	services *service.ClientServices,
	session *watermark.Session,
	exam config.Exam,
	palette models.Palette,
	buildInfo models.AppBuildInfo,
) examModel {
	questions := exam.Questions
	if len(questions) == 0 {
		questions = []string{defaultQuestion}
	}

	fields := make([]*watermark.Field, len(questions))
	for i := range questions {
		fields[i] = watermark.NewField(session, "")
	}

	m := examModel{
		ctx:            ctx,
		services:       services,
		questions:      questions,
		fields:         fields,
		styles:         newPatternStyles(palette),
		now:            time.Now,
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
		buildInfo:      buildInfo,
	}
	if session != nil {
		m.pattern = watermark.RenderDotMatrix(session.Token())
		m.hasPattern = true
	}
	if exam.Duration > 0 {
		m.deadline = m.now().Add(exam.Duration)
	}

	return m
}

// fieldName is the snapshot key of question i.
func fieldName(i int) string {
	return fmt.Sprintf("q%d", i+1)
}

func (m examModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdServerVersion()}
	if !m.deadline.IsZero() {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func (m examModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if m.finished() || m.deadline.IsZero() {
			return m, nil
		}
		if m.submitting {
			return m, tick()
		}
		if !time.Time(msg).Before(m.deadline) {
			m.blurFocused()
			m.submitting = true
			m.status = "Time is up, closing the attempt"
			return m, m.cmdAbandon()
		}
		return m, tick()

	case serverVersionMsg:
		m.serverVersion = string(msg)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus("Saved")

	case submittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.overlayErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.submitted = true
		return m, nil

	case abandonedMsg:
		m.submitting = false
		m.abandoned = true
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil

	case pastedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Paste failed: %v", msg.err)
			return m, nil
		}
		f := m.fields[m.focus]
		f.Insert(msg.text)
		f.Blur()
		m.putFocused()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		return m, m.setStatus("Copied")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m examModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.blurFocused()
		if !m.finished() {
			m.quitByUser = true
		}
		return m, tea.Quit
	}

	switch {
	case m.finished():
		if key.Matches(msg, keys.newline, keys.esc) || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case m.overlayErr != "":
		if key.Matches(msg, keys.newline, keys.esc) {
			m.overlayErr = ""
		}
		return m, nil

	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil

	case m.confirming:
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			m.submitting = true
			return m, m.cmdSubmit()
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil

	case m.submitting:
		return m, nil
	}

	f := m.fields[m.focus]

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.submit):
		m.blurFocused()
		m.confirming = true
		return m, nil

	case key.Matches(msg, keys.next):
		m.blurFocused()
		m.focus = (m.focus + 1) % len(m.fields)
		return m, m.cmdFlush()

	case key.Matches(msg, keys.prev):
		m.blurFocused()
		m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
		return m, m.cmdFlush()

	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(selectedOrAll(f))

	case key.Matches(msg, keys.paste):
		return m, m.cmdPaste()

	case key.Matches(msg, keys.left):
		f.Move(watermark.Left, false)
	case key.Matches(msg, keys.right):
		f.Move(watermark.Right, false)
	case key.Matches(msg, keys.extendLeft):
		f.Move(watermark.Left, true)
	case key.Matches(msg, keys.extendRight):
		f.Move(watermark.Right, true)
	case key.Matches(msg, keys.home):
		f.Select(0, 0)
	case key.Matches(msg, keys.end):
		f.Select(len(f.Value()), len(f.Value()))
	case key.Matches(msg, keys.selectAll):
		f.Select(0, len(f.Value()))

	case key.Matches(msg, keys.backspace):
		f.Delete(watermark.Left)
		m.putFocused()
	case key.Matches(msg, keys.deleteNext):
		f.Delete(watermark.Right)
		m.putFocused()
	case key.Matches(msg, keys.newline):
		f.Insert("\n")
		m.putFocused()

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		f.Insert(text)
		if msg.Paste {
			f.Blur()
		}
		m.putFocused()
	}

	return m, nil
}

func (m examModel) View() string {
	switch {
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	case m.overlayErr != "":
		return appStyle.Render(errorOverlayModel{message: m.overlayErr}.View())
	case m.confirming:
		return appStyle.Render(confirmModel{answered: m.answered(), total: len(m.fields)}.View())
	case m.submitted:
		return appStyle.Render(renderPage("EXAM SUBMITTED", "Your answers were submitted.", "enter: close"))
	case m.abandoned:
		body := "Time is up. Your saved answers were kept."
		if m.errMsg != "" {
			body += "\n" + errorStyle.Render(m.errMsg)
		}
		return appStyle.Render(renderPage("EXAM CLOSED", body, "enter: close"))
	}

	var b strings.Builder
	if m.hasPattern {
		b.WriteString(renderPattern(m.pattern, m.styles, m.width))
		b.WriteString("\n\n")
	}

	for i, q := range m.questions {
		b.WriteString(questionStyle.Render(fmt.Sprintf("%d. %s", i+1, fitText(q, max(m.width-8, 20)))))
		b.WriteString("\n")

		style := fieldStyle
		if i == m.focus {
			style = focusedStyle
		}
		b.WriteString(style.Render(renderField(m.fields[i], i == m.focus)))
		b.WriteString("\n")
	}

	if left := m.timeLeft(); left > 0 {
		b.WriteString(fmt.Sprintf("\nTime left: %s", left.Round(time.Second)))
	}
	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Submitting..."))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: next/prev question  ctrl+y/ctrl+v: copy/paste  ctrl+s: submit  ctrl+b: about  ctrl+c: quit"))

	return appStyle.Render(b.String())
}

func (m examModel) finished() bool {
	return m.submitted || m.abandoned
}

func (m examModel) timeLeft() time.Duration {
	if m.deadline.IsZero() {
		return 0
	}
	return m.deadline.Sub(m.now())
}

func (m examModel) answered() int {
	n := 0
	for _, f := range m.fields {
		if strings.TrimSpace(f.Visible()) != "" {
			n++
		}
	}
	return n
}

// blurFocused re-marks the focused field and records its value.
func (m examModel) blurFocused() {
	m.fields[m.focus].Blur()
	m.putFocused()
}

func (m examModel) putFocused() {
	m.services.Answers.Put(fieldName(m.focus), m.fields[m.focus].Value())
}

func (m *examModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// selectedOrAll returns the selected raw text of f, or its whole value when
// nothing is selected. Markers are copied along with the text.
func selectedOrAll(f *watermark.Field) string {
	sel := f.Selection()
	if sel.Collapsed() {
		return f.Value()
	}
	return f.Value()[sel.Start:sel.End]
}

func tick() tea.Cmd {
	return tea.Tick(countdownInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m examModel) cmdFlush() tea.Cmd {
	ctx, job := m.ctx, m.services.AutosaveJob
	return func() tea.Msg {
		return savedMsg{err: job.Flush(ctx)}
	}
}

// cmdSubmit stops autosaving, then submits every answer. Autosaving resumes
// when the submit fails.
func (m examModel) cmdSubmit() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		services.AutosaveJob.Stop()

		_, version, _ := services.Answers.Pending()
		if err := services.ExamService.Submit(ctx, services.Answers.All()); err != nil {
			services.AutosaveJob.Start(ctx, 0)
			return submittedMsg{err: err}
		}
		services.Answers.MarkSaved(version)
		return submittedMsg{}
	}
}

// cmdAbandon saves what was typed and closes the attempt as abandoned.
func (m examModel) cmdAbandon() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		services.AutosaveJob.Stop()

		if err := services.AutosaveJob.Flush(ctx); err != nil {
			return abandonedMsg{err: err}
		}
		return abandonedMsg{err: services.ExamService.Abandon(ctx)}
	}
}

func (m examModel) cmdServerVersion() tea.Cmd {
	ctx, exam := m.ctx, m.services.ExamService
	return func() tea.Msg {
		version, err := exam.ServerVersion(ctx)
		if err != nil {
			return serverVersionMsg("")
		}
		return serverVersionMsg(version)
	}
}

func (m examModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m examModel) cmdPaste() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		return pastedMsg{text: text, err: err}
	}
}
