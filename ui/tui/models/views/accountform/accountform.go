// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package accountform is the account opening screen: five inputs, the
// submit button, the inline validity hint and the summary panel.
//
// Validation is eager. Every change re-runs account.Validate, which keeps the
// button disabled and the hint visible until the form is valid. Submitting
// runs the same rules once more as a guard and reports a failure through the
// blocking error dialog.
package accountform

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/core/account"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/internal/logging"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/popup"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
	forminput "github.com/contabancaria/contabancaria/ui/tui/models/helpers/form/input"
	windowtitle "github.com/contabancaria/contabancaria/ui/tui/models/helpers/title"
	"github.com/contabancaria/contabancaria/ui/tui/models/views/alert"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

const (
	defaultWidth = 60
	maxFormWidth = 60
	ageCharLimit = 6
	nameMaxChars = 80
)

var (
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noticeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1).
				MarginTop(1)
)

type KeyMap struct {
	Reset key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Reset} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Reset}} }

// Options configures side effects of a successful submission.
type Options struct {
	// CopySummary writes the summary text to the clipboard.
	CopySummary bool
	// Clipboard replaces the system clipboard writer.
	Clipboard func(string) error
}

type Model struct {
	form    form.Form[account.AccountForm]
	button  *forminput.Button
	keyMap  KeyMap
	opts    Options
	size    util.Size
	summary *account.Summary
	lastErr error
	notice  string
}

func New(opts Options) *Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	m := &Model{
		opts: opts,
		keyMap: KeyMap{
			Reset: key.NewBinding(
				key.WithKeys("ctrl+r"),
				key.WithHelp("ctrl+r", i18n.T("help.reset")),
			),
		},
	}
	m.button = forminput.NewButton(i18n.T("form.submit"), i18n.T("help.submit"), true)

	sexOptions := []forminput.Option{{Label: i18n.T("form.sex.unset"), Value: string(account.SexUnset)}}
	for _, s := range account.Sexes() {
		sexOptions = append(sexOptions, forminput.Option{Label: s.String(), Value: string(s)})
	}

	m.form = form.New(
		form.WithInput[account.AccountForm](string(account.FieldName), forminput.NewText(
			i18n.T("form.name.label"),
			i18n.T("form.name.placeholder"),
			forminput.WithCharLimit(nameMaxChars),
		)),
		form.WithInput[account.AccountForm](string(account.FieldAge), forminput.NewText(
			i18n.T("form.age.label"),
			i18n.T("form.age.placeholder"),
			forminput.WithCharLimit(ageCharLimit),
			forminput.WithAccept(forminput.NumericRunes),
		)),
		form.WithInput[account.AccountForm](string(account.FieldSex), forminput.NewSelect(
			i18n.T("form.sex.label"),
			sexOptions...,
		)),
		form.WithInput[account.AccountForm](string(account.FieldCreditLimit), forminput.NewSlider(
			account.MinCreditLimit,
			account.MaxCreditLimit,
			account.CreditLimitStep,
			account.DefaultCreditLimit,
			CreditLimitLabel,
		)),
		form.WithInput[account.AccountForm](string(account.FieldIsStudent), forminput.NewToggle(
			i18n.T("form.student.label"),
			false,
		)),
		form.WithInput[account.AccountForm]("", m.button),
		form.WithGap[account.AccountForm](1),
		form.WithKeyMap[account.AccountForm](m.keyMap),
		form.WithValidation(account.Validate),
		form.WithOnSubmit(m.onSubmit),
	)
	m.form, _ = m.form.Update(tea.WindowSizeMsg{Width: defaultWidth})

	return m
}

// CreditLimitLabel renders the slider caption with locale grouping, e.g.
// "Limite da Conta: R$ 2.500,00".
func CreditLimitLabel(v int) string {
	return i18n.T("form.credit_limit.label", i18n.Printer().Sprintf("%.2f", float64(v)))
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(tea.WindowSizeMsg{Width: m.formWidth(), Height: m.size.Height})
		return cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, m.keyMap.Reset) {
		return m.Reset()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

// Reset restores the default values and clears the summary.
func (m *Model) Reset() tea.Cmd {
	m.summary = nil
	m.lastErr = nil
	m.notice = ""
	return tea.Batch(m.form.Reset(), windowtitle.Set(""))
}

func (m *Model) onSubmit(result account.AccountForm, err error) tea.Cmd {
	m.notice = ""
	if err == nil {
		var summary account.Summary
		summary, err = account.Submit(result)
		if err == nil {
			return m.accepted(summary)
		}
	}

	m.lastErr = err
	logging.Debugf("account form rejected: %v", err)
	return popup.Open(util.ModelPointer(alert.NewError(err.Error())))
}

func (m *Model) accepted(summary account.Summary) tea.Cmd {
	m.summary = &summary
	m.lastErr = nil
	logging.Infof("account summary produced for %q", summary.Name)

	if m.opts.CopySummary {
		if err := m.opts.Clipboard(summary.String()); err != nil {
			logging.Warnf("could not copy summary to clipboard: %v", err)
		} else {
			m.notice = i18n.T("summary.copied")
		}
	}

	return tea.Batch(
		popup.Open(util.ModelPointer(alert.NewSuccess(summary.String()))),
		windowtitle.Set(i18n.T("summary.success_title")),
	)
}

// Submit runs the submit action as if the button was pressed, bypassing the
// disabled state; the validation guard still applies.
func (m *Model) Submit() tea.Cmd {
	return m.form.Submit()
}

// Values decodes the current widget values.
func (m *Model) Values() account.AccountForm {
	values, _ := m.form.Get()
	return values
}

// SetValues replaces the widget values, snapping the credit limit.
func (m *Model) SetValues(f account.AccountForm) error {
	return m.form.Set(f.WithCreditLimit(f.CreditLimit))
}

// Valid is the eagerly maintained validity of the current values.
func (m *Model) Valid() bool {
	return m.form.Valid()
}

// SubmitEnabled reports whether the submit button accepts presses.
func (m *Model) SubmitEnabled() bool {
	return !m.button.Disabled
}

// Summary is the last accepted summary, nil before the first success or
// after a reset.
func (m *Model) Summary() *account.Summary {
	return m.summary
}

// LastError is the error of the last rejected submission.
func (m *Model) LastError() error {
	return m.lastErr
}

func (m *Model) formWidth() int {
	w := m.size.Width
	if w <= 0 {
		w = defaultWidth
	}
	return min(w-4, maxFormWidth)
}

func (m Model) View() string {
	views := []string{m.form.View()}

	if err := m.form.Err(); err != nil {
		views = append(views,
			"",
			hintStyle.Render(i18n.T("form.invalid_hint")),
			hintDetailStyle.Render(err.Error()),
		)
	}

	if m.notice != "" {
		views = append(views, "", noticeStyle.Render(m.notice))
	}

	if m.summary != nil {
		views = append(views, summaryStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			summaryTitleStyle.Render(i18n.T("form.summary_title")),
			m.summary.String(),
		)))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
