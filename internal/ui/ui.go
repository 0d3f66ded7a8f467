package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
	"todo/internal/todo"
)

type mode int

const (
	modeNormal mode = iota
	modeEditing
	modeRename
)

var (
	helpStyle   = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Strikethrough(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type Model struct {
	cfg    config.Config
	list   *todo.List
	mode   mode
	input  textinput.Model
	status string
}

// Run drives the UI on the alternate screen until the user quits.
// Bubble Tea restores the terminal on every exit path, including
// errors.
func Run(cfg config.Config, status string) error {
	program := tea.NewProgram(New(cfg, status), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func New(cfg config.Config, status string) Model {
	ti := textinput.New()
	ti.Placeholder = "Todo title"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		cfg:    cfg,
		list:   &todo.List{},
		mode:   modeNormal,
		input:  ti,
		status: status,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeEditing:
			return m.updateEditing(msg.String(), msg)
		case modeRename:
			return m.updateRename(msg.String(), msg)
		default:
			return m.updateNormal(msg.String())
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateNormal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.list.MoveSelection(1)
	case m.cfg.Keys.Up, "up":
		m.list.MoveSelection(-1)
	case m.cfg.Keys.Toggle:
		m.list.ToggleSelected()
	case m.cfg.Keys.Delete:
		m.list.DeleteSelected()
	case m.cfg.Keys.Add:
		m.mode = modeEditing
		m.input.Focus()
		m.status = "Type a title and press enter"
	case m.cfg.Keys.Rename:
		i, ok := m.list.Selected()
		if !ok {
			m.status = "No todo to edit"
			return m, nil
		}
		m.mode = modeRename
		m.input.SetValue(m.list.Items()[i].Title)
		m.input.CursorEnd()
		m.input.Focus()
		m.status = "Edit the title and press enter"
	}
	return m, nil
}

func (m Model) updateEditing(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeNormal
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Nothing to add"
		} else {
			m.list.Add(title)
			m.status = fmt.Sprintf("Added %q", title)
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeNormal
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateRename(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeNormal
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.list.RenameSelected(title)
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeNormal
		m.status = "Saved title"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString(fmt.Sprintf("No todos yet. Press '%s' to add one.", keyLabel(m.cfg.Keys.Add)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) helpLine() string {
	k := m.cfg.Keys
	switch m.mode {
	case modeEditing:
		return fmt.Sprintf("%s cancel • %s add the todo", keyLabel(k.Cancel), keyLabel(k.Confirm))
	case modeRename:
		return fmt.Sprintf("%s cancel • %s save the title", keyLabel(k.Cancel), keyLabel(k.Confirm))
	default:
		return fmt.Sprintf("%s/%s move • %s toggle • %s delete • %s add • %s edit • %s quit",
			keyLabel(k.Up), keyLabel(k.Down), keyLabel(k.Toggle), keyLabel(k.Delete),
			keyLabel(k.Add), keyLabel(k.Rename), keyLabel(k.Quit))
	}
}

func (m Model) renderList() string {
	sel, _ := m.list.Selected()
	var b strings.Builder
	for i, t := range m.list.Items() {
		cursor := "  "
		if i == sel {
			cursor = cursorStyle.Render(">") + " "
		}

		checkbox := "[ ]"
		title := t.Title
		if t.Done {
			checkbox = "[x]"
			title = doneStyle.Render(title)
		}

		b.WriteString(fmt.Sprintf("%s%s %s", cursor, checkbox, title))
		b.WriteString("\n")
	}
	return b.String()
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
