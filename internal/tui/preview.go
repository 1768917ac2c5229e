// internal/tui/preview.go
//
// Interactive preview shown before a restore writes anything. bubbletea's
// Elm loop drives it: the model holds the table and the pending output
// path, Update reacts to keys, View renders the tier menu plus a detail
// pane. The preview never writes the archive itself; it only reports
// whether the user confirmed.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/flowlist-restore/internal/tierlist"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true).MarginBottom(1)
	tierStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// tierItem implements list.Item for the tier menu.
type tierItem struct {
	name    string
	folders int
}

func (i tierItem) Title() string       { return fmt.Sprintf("Tier %s", i.name) }
func (i tierItem) Description() string { return fmt.Sprintf("%d folder(s)", i.folders) }
func (i tierItem) FilterValue() string { return i.name }

// Preview is the confirmation screen model.
type Preview struct {
	table      tierlist.Table
	outputPath string
	menu       list.Model
	confirmed  bool
	width      int
	height     int
}

// NewPreview builds the preview model for a table and its pending output
// path.
func NewPreview(table tierlist.Table, outputPath string) *Preview {
	items := make([]list.Item, 0, len(table))
	for _, tier := range table {
		items = append(items, tierItem{name: tier.Name, folders: len(tier.Folders)})
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Tiers"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	return &Preview{table: table, outputPath: outputPath, menu: menu}
}

// Confirmed reports whether the user accepted the restore.
func (p *Preview) Confirmed() bool { return p.confirmed }

// Init is called once when the program starts.
func (p *Preview) Init() tea.Cmd { return nil }

// Update is called when a message is received.
func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.menu.SetSize(max(20, msg.Width/2-4), max(6, msg.Height-8))
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			p.confirmed = true
			return p, tea.Quit
		case "q", "esc", "ctrl+c":
			p.confirmed = false
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

// View renders the tier menu next to the selected tier's folders.
func (p *Preview) View() string {
	header := headerStyle.Render("⬡ FLOWLIST RESTORE")
	body := lipgloss.JoinHorizontal(lipgloss.Top, p.menu.View(), p.detailView())
	summary := detailStyle.Render(fmt.Sprintf(
		"%d folder(s) across %d tier(s) → %s",
		p.table.FolderCount(),
		len(p.table),
		outputStyle.Render(p.outputPath),
	))
	hint := hintStyle.Render("Enter → write archive    Q/Esc → cancel")
	return strings.Join([]string{header, body, summary, hint}, "\n")
}

func (p *Preview) detailView() string {
	tier, ok := p.selectedTier()
	if !ok {
		return ""
	}
	lines := []string{tierStyle.Render(fmt.Sprintf("Tier %s", tier.Name))}
	for _, folder := range tier.Folders {
		lines = append(lines, folderStyle.Render("  "+folder+".txt"))
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))
}

func (p *Preview) selectedTier() (tierlist.Tier, bool) {
	idx := p.menu.Index()
	if idx < 0 || idx >= len(p.table) {
		return tierlist.Tier{}, false
	}
	return p.table[idx], true
}

// Run shows the preview and blocks until the user confirms or cancels.
func Run(table tierlist.Table, outputPath string) (bool, error) {
	program := tea.NewProgram(NewPreview(table, outputPath), tea.WithAltScreen())
	model, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run preview: %w", err)
	}
	final, ok := model.(*Preview)
	if !ok {
		return false, fmt.Errorf("tui: unexpected model type %T", model)
	}
	return final.Confirmed(), nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
