package main

import "strings"

const helpText = `
HOW TO PLAY

Fight your way through six waves
of bugs that plague your code.
Each turn you either attack one
enemy or heal yourself.
Healing also cures poison.
After every enemy has acted,
poison deals its damage.

ENEMIES

Beetles may armour up.
Spiders may heal every enemy.
Wasps get distracted by food.
The mosquito waits at the end
and its bite can poison you.

UPGRADES

Each cleared wave earns three
upgrade points.
DAMAGE: +10 per point
HEALTH: +20 max HP per point
HEALING: +10 per point
Unspent points carry over, and
your health is fully restored
before the next wave.

Good luck, and happy debugging!
`

// godModeWord typed at the end of the help pages arms god mode.
const godModeWord = "GODMODE"

func helpLines() []string {
	return strings.Split(strings.Trim(helpText, "\n"), "\n")
}
