package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
)

func enter(t *testing.T, m Model, line string) Model {
	t.Helper()
	var tm tea.Model = m
	if line != "" {
		tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return tm.(Model)
}

func godModeModel(t *testing.T) Model {
	t.Helper()
	logging.Discard()
	m := NewModel(config.Default(), nil)
	m = enter(t, m, "")
	if m.Screen != screenHelp {
		t.Fatalf("default title option should open help")
	}
	for i := 1; i < len(helpLines()); i++ {
		m = enter(t, m, "")
	}
	if !strings.Contains(m.View(), "BACK TO TITLE") {
		t.Fatalf("expected end of help")
	}
	m = enter(t, m, godModeWord)
	if m.Screen != screenTitle || !m.GodMode {
		t.Fatalf("typing the word at the end of help should arm god mode")
	}
	return enter(t, m, "1")
}

func TestModel_HelpWithoutWordKeepsStandardMode(t *testing.T) {
	logging.Discard()
	m := NewModel(config.Default(), nil)
	m = enter(t, m, "2")
	for i := 0; i < len(helpLines()); i++ {
		m = enter(t, m, "")
	}
	if m.Screen != screenTitle || m.GodMode {
		t.Fatalf("expected title in standard mode")
	}
	m = enter(t, m, "1")
	if m.Screen != screenCombat || m.Run.Mode != game.ModeStandard {
		t.Fatalf("expected a standard run")
	}
	if !strings.Contains(m.View(), "Beetle 2: 30 HP") {
		t.Fatalf("roster missing from view:\n%s", m.View())
	}
}

func TestModel_CombatAndUpgradePrompts(t *testing.T) {
	m := godModeModel(t)
	if m.Screen != screenCombat || m.Run.Mode != game.ModeGodMode {
		t.Fatalf("expected a god mode run in combat")
	}

	m = enter(t, m, "5")
	if m.notice != "Invalid input." {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	m = enter(t, m, "1")
	m = enter(t, m, "3")
	if m.notice != "Your input is out of range." || !m.awaitingTarget {
		t.Fatalf("out of range target should re-prompt, notice %q", m.notice)
	}
	m = enter(t, m, "x")
	if m.notice != "Please enter a valid integer." {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	m = enter(t, m, "1")
	if !strings.Contains(m.View(), "You eliminated Beetle 1!") {
		t.Fatalf("expected elimination text:\n%s", m.View())
	}
	m = enter(t, m, "1")
	m = enter(t, m, "1")
	if m.Screen != screenUpgrade {
		t.Fatalf("expected upgrade screen after clearing wave 1")
	}
	if !strings.Contains(m.View(), "You have 3 upgrade point(s)") {
		t.Fatalf("points missing:\n%s", m.View())
	}

	m = enter(t, m, "7")
	if m.notice != "Invalid upgrade option." {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	m = enter(t, m, "1")
	m = enter(t, m, "9")
	if !strings.HasPrefix(m.notice, "You don't have enough points.") {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	m = enter(t, m, "-1")
	if !strings.HasPrefix(m.notice, "Invalid input; please enter an integer from 0-3") {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	m = enter(t, m, "2")
	if m.Run.Player.Attack != game.GodModePreset.Attack+20 || m.Screen != screenUpgrade {
		t.Fatalf("expected +20 damage and one point left")
	}
	m = enter(t, m, "4")
	if m.Screen != screenCombat || m.Run.CurrentWave().Number != 2 || m.Run.Player.UpgradePoints != 1 {
		t.Fatalf("expected wave 2 with one point kept")
	}
}

func TestModel_VictoryReturnsToTitle(t *testing.T) {
	m := godModeModel(t)
	for i := 0; i < 200 && m.Screen != screenOutcome; i++ {
		switch m.Screen {
		case screenCombat:
			m = enter(t, m, "1")
			m = enter(t, m, "1")
		case screenUpgrade:
			m = enter(t, m, "4")
		}
	}
	if m.Screen != screenOutcome || m.Run.Outcome != game.OutcomeVictory {
		t.Fatalf("expected victory screen")
	}
	if !strings.Contains(m.View(), "Congratulations!") {
		t.Fatalf("missing victory text:\n%s", m.View())
	}
	m = enter(t, m, "1")
	if m.Screen != screenTitle || m.GodMode || m.Run != nil {
		t.Fatalf("returning to title should reset the run and god mode")
	}
}

func TestDescribe_Distraction(t *testing.T) {
	wasp := describe(engine.Event{Kind: engine.EventDistracted, Actor: "Wasp 1", Variant: game.VariantWasp})
	if len(wasp) != 1 || wasp[0] != "Wasp 1 is distracted by food!" {
		t.Fatalf("unexpected wasp text %v", wasp)
	}
	mosquito := describe(engine.Event{Kind: engine.EventDistracted, Actor: "Mosquito 1", Variant: game.VariantMosquito})
	if len(mosquito) != 2 || mosquito[1] != "another animal!" {
		t.Fatalf("unexpected mosquito text %v", mosquito)
	}
	if describe(engine.Event{Kind: engine.EventRoster}) != nil {
		t.Fatalf("roster events have no text")
	}
}
