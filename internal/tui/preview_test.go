package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/flowlist-restore/internal/tierlist"
)

func updatePreview(t *testing.T, p *Preview, msg tea.Msg) (*Preview, tea.Cmd) {
	t.Helper()
	model, cmd := p.Update(msg)
	next, ok := model.(*Preview)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return next, cmd
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestPreviewConfirmsOnEnter(t *testing.T) {
	preview := NewPreview(tierlist.Default(), "restored_flowlist.zip")
	if preview.Confirmed() {
		t.Fatalf("preview should start unconfirmed")
	}
	preview, cmd := updatePreview(t, preview, tea.KeyMsg{Type: tea.KeyEnter})
	assertQuit(t, cmd)
	if !preview.Confirmed() {
		t.Fatalf("enter should confirm the restore")
	}
}

func TestPreviewCancelKeys(t *testing.T) {
	cancelKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, key := range cancelKeys {
		preview := NewPreview(tierlist.Default(), "restored_flowlist.zip")
		preview, cmd := updatePreview(t, preview, key)
		assertQuit(t, cmd)
		if preview.Confirmed() {
			t.Fatalf("key %q should cancel the restore", key.String())
		}
	}
}

func TestPreviewNavigationMovesDetailPane(t *testing.T) {
	preview := NewPreview(tierlist.Default(), "restored_flowlist.zip")
	preview, _ = updatePreview(t, preview, tea.WindowSizeMsg{Width: 120, Height: 40})

	tier, ok := preview.selectedTier()
	if !ok || tier.Name != "S" {
		t.Fatalf("expected initial selection S, got %v", tier.Name)
	}
	preview, _ = updatePreview(t, preview, tea.KeyMsg{Type: tea.KeyDown})
	tier, ok = preview.selectedTier()
	if !ok || tier.Name != "A" {
		t.Fatalf("expected selection A after moving down, got %v", tier.Name)
	}
}

func TestPreviewViewShowsSelectedTierFolders(t *testing.T) {
	preview := NewPreview(tierlist.Default(), "restored_flowlist.zip")
	preview, _ = updatePreview(t, preview, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := preview.View()
	if !strings.Contains(view, "Learn Earn.txt") {
		t.Fatalf("view should list the selected tier's folders")
	}
	if !strings.Contains(view, "restored_flowlist.zip") {
		t.Fatalf("view should show the pending output path")
	}
	if !strings.Contains(view, "55 folder(s) across 6 tier(s)") {
		t.Fatalf("view should summarize the table, got:\n%s", view)
	}
}

func TestPreviewIgnoresUnknownKeysWithoutQuitting(t *testing.T) {
	preview := NewPreview(tierlist.Default(), "restored_flowlist.zip")
	preview, cmd := updatePreview(t, preview, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatalf("unknown keys must not quit the preview")
		}
	}
	if preview.Confirmed() {
		t.Fatalf("unknown keys must not confirm the restore")
	}
}
