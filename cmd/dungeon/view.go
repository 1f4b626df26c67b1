package main

import (
	"fmt"
	"strings"

	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/version"
)

func (m Model) View() string {
	if m.Quitting {
		return "Goodbye\n"
	}
	var b strings.Builder
	switch m.Screen {
	case screenTitle:
		b.WriteString("Python Dungeon\n")
		fmt.Fprintf(&b, "version %s\n\n", version.Version)
		b.WriteString("[1] PLAY\n[2] HELP\n[3] EXIT\n\n")
		b.WriteString("Select option (default 2):\n")
	case screenHelp:
		lines := helpLines()
		for _, l := range lines[:m.helpShown] {
			b.WriteString(l + "\n")
		}
		if m.helpShown < len(lines) {
			b.WriteString("\n[ENTER] Next Line\n")
		} else {
			b.WriteString("\n[ENTER] BACK TO TITLE\n")
		}
	case screenCombat:
		m.writeLog(&b)
		snap := m.Run.Wave.Snapshot()
		fmt.Fprintf(&b, "WAVE %d\n\nENEMIES:\n", snap.Wave)
		for _, e := range snap.Enemies {
			fmt.Fprintf(&b, "[%d] %s: %d HP\n", e.Index+1, e.Name, e.Health)
		}
		b.WriteString("\n[1]: ATTACK\n[2]: HEAL\n")
		status := ""
		if snap.Poisoned {
			status = " (poisoned)"
		}
		fmt.Fprintf(&b, "YOUR HP: %d HP%s\n", snap.PlayerHealth, status)
		if m.awaitingTarget {
			b.WriteString("Select the enemy to attack:\n")
		} else {
			b.WriteString("Please input an option:\n")
		}
	case screenUpgrade:
		m.writeLog(&b)
		b.WriteString("CHOOSE YOUR UPGRADES\n\n")
		b.WriteString("[1] DAMAGE: +10 PER POINT\n[2] HEALTH: +20 PER POINT\n[3] HEALING: +10 PER POINT\n\n")
		b.WriteString("[4] GO TO NEXT WAVE\n")
		fmt.Fprintf(&b, "You have %d upgrade point(s)\n", m.Run.Player.UpgradePoints)
		if m.pending != "" {
			b.WriteString("Input how many points you want\nto spend on the upgrade:\n")
		} else {
			b.WriteString("Choose option:\n")
		}
	case screenOutcome:
		m.writeLog(&b)
		if m.Run.Outcome == game.OutcomeVictory {
			b.WriteString("Congratulations! You have completed\nthe Python Dungeon and your code\nworks once again!\n\nThanks for playing!\n")
		} else {
			b.WriteString("You were unable to keep up with all\nthe bugs in your code. Maybe go\nthrough another round of debugging?\n")
		}
		b.WriteString("\n[1] RETURN TO TITLE\n[2] EXIT\n\nSelect option:\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice + "\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

func (m Model) writeLog(b *strings.Builder) {
	if len(m.log) == 0 {
		return
	}
	for _, l := range m.log {
		b.WriteString(l + "\n")
	}
	b.WriteString("\n")
}
