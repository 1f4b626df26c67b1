package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/service"
)

type screen int

const (
	screenTitle screen = iota
	screenHelp
	screenCombat
	screenUpgrade
	screenOutcome
)

// Model is the whole terminal UI. Every prompt is a line typed into a
// single text input and confirmed with enter.
type Model struct {
	cfg *config.LoadedConfig
	rec service.RunRecorder

	Screen   screen
	Run      *service.Run
	GodMode  bool
	Quitting bool

	input     textinput.Model
	helpShown int
	// log holds what happened since the last prompt.
	log    []string
	notice string

	awaitingTarget bool
	pending        game.UpgradeCategory
}

var upgradeOptions = map[string]game.UpgradeCategory{
	"1": game.UpgradeDamage,
	"2": game.UpgradeHealth,
	"3": game.UpgradeHealing,
}

func NewModel(cfg *config.LoadedConfig, rec service.RunRecorder) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Focus()
	return Model{cfg: cfg, rec: rec, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m.submit(line)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.Screen {
	case screenTitle:
		return m.onTitle(line)
	case screenHelp:
		return m.onHelp(line), nil
	case screenCombat:
		return m.onCombat(line), nil
	case screenUpgrade:
		return m.onUpgrade(line), nil
	case screenOutcome:
		switch line {
		case "1":
			m.Screen = screenTitle
			m.Run = nil
			m.GodMode = false
			m.log = nil
		case "2":
			m.Quitting = true
			return m, tea.Quit
		default:
			m.notice = "Invalid input."
		}
	}
	return m, nil
}

func (m Model) onTitle(line string) (tea.Model, tea.Cmd) {
	switch line {
	case "1":
		return m.startRun(), nil
	case "3":
		m.Quitting = true
		return m, tea.Quit
	}
	m.Screen = screenHelp
	m.helpShown = 1
	return m, nil
}

func (m Model) onHelp(line string) Model {
	if m.helpShown < len(helpLines()) {
		m.helpShown++
		return m
	}
	if line == godModeWord {
		m.GodMode = true
	}
	m.Screen = screenTitle
	return m
}

func (m Model) startRun() Model {
	mode := game.ModeStandard
	if m.GodMode {
		mode = game.ModeGodMode
	}
	r, err := service.NewRun(service.RunOptions{Mode: mode, Campaign: m.cfg.Campaign, Presets: m.cfg.Presets})
	if err != nil {
		logging.Error("failed to start run", err, nil)
		m.notice = "Could not start a run."
		return m
	}
	m.Run = r
	m.Screen = screenCombat
	m.awaitingTarget = false
	m.log = describeAll([]engine.Event{r.Opening()})
	return m
}

func (m Model) onCombat(line string) Model {
	if !m.awaitingTarget {
		switch line {
		case "1":
			m.awaitingTarget = true
		case "2":
			m = m.act(engine.HealIntent())
		default:
			m.notice = "Invalid input."
		}
		return m
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		m.notice = "Please enter a valid integer."
		return m
	}
	return m.act(engine.Attack(n - 1))
}

func (m Model) act(in engine.Intent) Model {
	report, err := service.SubmitAction(m.rec, m.Run, in)
	if errors.Is(err, engine.ErrInvalidTarget) {
		m.notice = "Your input is out of range."
		return m
	}
	if err != nil {
		logging.Error("failed to resolve turn", err, logging.Fields{constants.LogFieldRunID: m.Run.ID})
		m.notice = err.Error()
		return m
	}
	m.awaitingTarget = false
	m.log = describeAll(report.Events)
	m.Screen = screenFor(m.Run.Phase())
	return m
}

func (m Model) onUpgrade(line string) Model {
	if m.pending == "" {
		if line == "4" {
			events, err := service.FinishUpgrades(m.Run)
			return m.afterUpgrade(events, err)
		}
		c, ok := upgradeOptions[line]
		if !ok {
			m.notice = "Invalid upgrade option."
			return m
		}
		m.pending = c
		return m
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		m.notice = "Please enter a valid integer."
		return m
	}
	points := m.Run.Player.UpgradePoints
	events, err := service.SubmitUpgrade(m.Run, engine.Upgrade{Category: m.pending, Points: n})
	if errors.Is(err, engine.ErrInvalidSpendAmount) {
		if n > points {
			m.notice = fmt.Sprintf("You don't have enough points.\nYou currently have %d point(s).", points)
		} else {
			m.notice = fmt.Sprintf("Invalid input; please enter an integer from 0-%d", points)
		}
		return m
	}
	m.pending = ""
	return m.afterUpgrade(events, err)
}

func (m Model) afterUpgrade(events []engine.Event, err error) Model {
	if err != nil {
		logging.Error("failed to apply upgrade", err, logging.Fields{constants.LogFieldRunID: m.Run.ID})
		m.notice = err.Error()
		return m
	}
	m.log = describeAll(events)
	m.Screen = screenFor(m.Run.Phase())
	return m
}

func screenFor(p game.RunPhase) screen {
	switch p {
	case game.PhaseUpgrade:
		return screenUpgrade
	case game.PhaseFinished:
		return screenOutcome
	}
	return screenCombat
}
