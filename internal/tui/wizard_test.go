package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/breakdown/internal/config"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestWizard_CancelOnEsc(t *testing.T) {
	w := NewWizard(t.TempDir())

	model, cmd := w.Update(keyMsg("esc"))
	w = model.(*Wizard)

	if !w.cancelled {
		t.Error("esc did not cancel the wizard")
	}
	if cmd == nil {
		t.Error("esc should produce a quit command")
	}
	res, err := w.Result()
	if res != nil || err != nil {
		t.Errorf("cancelled Result() = %v, %v; want nil, nil", res, err)
	}
}

func TestWizard_FreshProjectRunsSetup(t *testing.T) {
	dir := t.TempDir()
	w := NewWizard(dir)

	model, cmd := w.Update(keyMsg("enter"))
	w = model.(*Wizard)

	if w.step != stepRunning {
		t.Fatalf("step = %v, want stepRunning", w.step)
	}
	if cmd == nil {
		t.Fatal("no setup command produced")
	}

	// Execute the setup command and feed its message back.
	msg := cmd()
	done, ok := msg.(setupDoneMsg)
	if !ok {
		t.Fatalf("message type = %T, want setupDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("setup failed: %v", done.err)
	}

	model, _ = w.Update(msg)
	w = model.(*Wizard)
	if w.step != stepDone {
		t.Errorf("step = %v, want stepDone", w.step)
	}

	res, err := w.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if res.WorkingDir != filepath.Join(dir, config.DefaultWorkingDir) {
		t.Errorf("WorkingDir = %q", res.WorkingDir)
	}
}

func TestWizard_ExistingWorkspaceAsksConfirmation(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, config.DefaultWorkingDir), 0o755); err != nil {
		t.Fatal(err)
	}

	w := NewWizard(dir)
	model, _ := w.Update(keyMsg("enter"))
	w = model.(*Wizard)

	if w.step != stepConfirm {
		t.Fatalf("step = %v, want stepConfirm", w.step)
	}

	// Declining cancels.
	model, _ = w.Update(keyMsg("n"))
	w = model.(*Wizard)
	if !w.cancelled {
		t.Error("declining overwrite did not cancel")
	}
}

func TestWizard_ConfirmSetsForce(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, config.DefaultWorkingDir), 0o755); err != nil {
		t.Fatal(err)
	}

	w := NewWizard(dir)
	model, _ := w.Update(keyMsg("enter"))
	w = model.(*Wizard)
	model, cmd := w.Update(keyMsg("y"))
	w = model.(*Wizard)

	if !w.force {
		t.Error("confirming overwrite did not set force")
	}
	if w.step != stepRunning || cmd == nil {
		t.Error("confirming overwrite did not start setup")
	}
}

func TestWizard_View(t *testing.T) {
	w := NewWizard(t.TempDir())

	view := w.View()
	if !strings.Contains(view, "breakdown init") {
		t.Errorf("view missing title: %q", view)
	}
	if !strings.Contains(view, "Project directory") {
		t.Errorf("view missing directory prompt: %q", view)
	}
}
