package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-rate-pair/internal/config"
	"github.com/MKhiriev/go-rate-pair/internal/service"
	"github.com/MKhiriev/go-rate-pair/models"
)

// converterModel is the single screen of the client: two linked amount
// fields, one per currency. The focused field is the active editor, the
// other one is repainted by the synchronizer after every valid edit.
type converterModel struct {
	services *service.ClientServices
	display  *displayBuffer

	inputs [2]textinput.Model
	labels [2]string
	focus  models.FieldID

	reversed bool
	status   string
	errMsg   string

	appVersion    string
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newConverterModel(services *service.ClientServices, cfg config.ClientConverter, appVersion string, buildInfo models.AppBuildInfo) converterModel {
	display := newDisplayBuffer()
	services.FieldSyncService.RegisterDisplay(display)

	m := converterModel{
		services:   services,
		display:    display,
		labels:     [2]string{cfg.BaseCurrency, cfg.QuoteCurrency},
		focus:      models.FieldBase,
		appVersion: appVersion,
		buildInfo:  buildInfo,
	}

	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 16
		m.inputs[i].CharLimit = 32
		m.inputs[i].SetValue(services.FieldSyncService.FieldText(models.FieldID(i)))
		m.inputs[i].CursorEnd()
	}
	m.inputs[models.FieldBase].Focus()
	services.FieldSyncService.SetActiveEditor(models.FieldBase)

	return m
}

func (m converterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m converterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.status = "Скопировано"
		m.errMsg = ""
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocused(msg)
}

func (m converterModel) updateKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.version):
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down),
		key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
		return m.setFocus(m.focus.Counterpart()), nil
	case key.Matches(keyMsg, keys.copy):
		text := strings.TrimSpace(m.inputs[m.focus.Counterpart()].Value())
		if text == "" {
			m.status = "Нечего копировать"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.swap):
		m.reversed = !m.reversed
		return m, nil
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, nil
	}

	return m.updateFocused(keyMsg)
}

func (m converterModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		m.services.FieldSyncService.OnFieldChanged(m.focus, after)
		m.applyPendingWrites()
	}
	return m, cmd
}

func (m converterModel) setFocus(field models.FieldID) converterModel {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[field].Focus()
	m.inputs[field].CursorEnd()
	m.services.FieldSyncService.SetActiveEditor(field)
	return m
}

// applyPendingWrites repaints widgets from the synchronizer's buffered
// programmatic writes. SetValue emits no change events, so the repaint
// cannot re-enter the service.
func (m *converterModel) applyPendingWrites() {
	for _, w := range m.display.Drain() {
		m.inputs[w.field].SetValue(w.text)
		m.inputs[w.field].CursorEnd()
	}
}

func (m converterModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.appVersion))
	}

	order := [2]models.FieldID{models.FieldBase, models.FieldQuote}
	if m.reversed {
		order = [2]models.FieldID{models.FieldQuote, models.FieldBase}
	}

	var b strings.Builder
	for _, f := range order {
		marker := "  "
		if f == m.focus {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s [%s]\n", marker, m.labels[f], m.inputs[f].View()))
	}
	b.WriteString("\n")
	b.WriteString(m.rateLine())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hotKeys := helpStyle.Render("tab: след. поле │ c: копировать │ r: поменять местами │ v: о программе")
	return appStyle.Render(renderPage(titleStyle.Render("КОНВЕРТЕР ВАЛЮТ"), b.String(), hotKeys))
}

func (m converterModel) rateLine() string {
	convert := m.services.ConvertService
	from, to := models.FieldBase, models.FieldQuote
	amount := convert.Format(convert.Forward(1))
	if m.reversed {
		from, to = to, from
		amount = convert.Format(convert.Inverse(1))
	}
	return fmt.Sprintf("Курс: 1 %s = %s %s", m.labels[from], amount, m.labels[to])
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
