package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Mode represents the selected game mode.
type Mode int

const (
	ModeCampaign Mode = iota
	ModeEndless
)

// GameID returns the registry ID of the mode.
func (m Mode) GameID() string {
	if m == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Selection holds the user's choice from the menu.
type Selection struct {
	Mode  Mode
	Level int // 0 = start from beginning, 1-N = specific level
}

// MenuResult is what the menu hands back to the caller.
type MenuResult struct {
	Selection  *Selection // nil unless a game was chosen
	Scoreboard bool       // user asked for high scores
	Quit       bool
}

const (
	itemCampaign = iota
	itemEndless
	itemSelectLevel
	itemScores
)

var menuItems = []string{
	"Campaign",
	"Endless Mode",
	"Select Level...",
	"High Scores",
}

// MenuModel lets users choose the game mode and starting level.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	levels        []t2048.Level
	width         int
	height        int
	keys          MenuKeyMap
	help          help.Model
	result        MenuResult
	done          bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		levels: t2048.Levels(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := MapKeyToMenuAction(m.keys, msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleModeSelect(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	m.result = r
	m.done = true
	return m, tea.Quit
}

func (m MenuModel) handleModeSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		return m.finish(MenuResult{Quit: true})
	case MenuActionScores:
		return m.finish(MenuResult{Scoreboard: true})
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case itemCampaign:
			return m.finish(MenuResult{Selection: &Selection{Mode: ModeCampaign}})
		case itemEndless:
			return m.finish(MenuResult{Selection: &Selection{Mode: ModeEndless}})
		case itemSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case itemScores:
			return m.finish(MenuResult{Scoreboard: true})
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.finish(MenuResult{Selection: &Selection{
			Mode:  ModeCampaign,
			Level: m.levelCursor + 1, // 1-indexed
		}})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode or level selection.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(titleStyle.Render(centerText("SELECT LEVEL", m.width)))
		b.WriteString("\n\n")
		for i, lvl := range m.levels {
			line := fmt.Sprintf("%s%2d. %s (Target: %d)", cursorMark(i == m.levelCursor), lvl.ID, lvl.Name, lvl.Target)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(titleStyle.Render(centerText("2 0 4 8", m.width)))
		b.WriteString("\n\n")
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, item := range menuItems {
			if i == itemCampaign {
				item = fmt.Sprintf("Campaign (%d levels)", len(m.levels))
			}
			b.WriteString(centerText(cursorMark(i == m.cursor)+item, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(m.help.View(m.keys), m.width)))

	return b.String()
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// Result returns what the user chose.
func (m MenuModel) Result() MenuResult {
	return m.result
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := lipgloss.Width(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the mode selection and returns the user's choice.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || !m.done {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}
