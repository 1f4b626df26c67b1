package main

import (
	"fmt"

	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
)

var upgradeNames = map[game.UpgradeCategory]string{
	game.UpgradeDamage:  "strength",
	game.UpgradeHealth:  "health",
	game.UpgradeHealing: "healing",
}

// describe turns one event into the lines shown to the player. Events with
// no text of their own return nil.
func describe(ev engine.Event) []string {
	switch ev.Kind {
	case engine.EventCritical:
		return []string{"You got a critical hit!"}
	case engine.EventEnemyDamaged:
		return []string{fmt.Sprintf("You inflicted %d damage on %s!", ev.Amount, ev.Target)}
	case engine.EventEnemyEliminated:
		return []string{fmt.Sprintf("You eliminated %s!", ev.Target)}
	case engine.EventEnemyAttack:
		return []string{fmt.Sprintf("%s attacks!", ev.Actor)}
	case engine.EventPlayerDamaged:
		return []string{fmt.Sprintf("You took %d damage!", ev.Amount)}
	case engine.EventPlayerDodged:
		return []string{"You dodged the attack!"}
	case engine.EventPlayerHealed:
		return []string{fmt.Sprintf("You recovered %d HP!", ev.Amount)}
	case engine.EventPoisonCured:
		return []string{"You cured the poison!"}
	case engine.EventArmorApplied:
		return []string{fmt.Sprintf("%s applied armour,", ev.Actor), fmt.Sprintf("gaining %d HP!", ev.Amount)}
	case engine.EventSpiderHealAll:
		return []string{fmt.Sprintf("%s healed all enemies", ev.Actor), fmt.Sprintf("for %d health!", ev.Amount)}
	case engine.EventDistracted:
		switch ev.Variant {
		case game.VariantWasp:
			return []string{fmt.Sprintf("%s is distracted by food!", ev.Actor)}
		case game.VariantMosquito:
			return []string{fmt.Sprintf("%s is attracted by", ev.Actor), "another animal!"}
		}
		return []string{fmt.Sprintf("%s is distracted!", ev.Actor)}
	case engine.EventPoisonApplied:
		return []string{"You've been poisoned!"}
	case engine.EventPoisonTick:
		return []string{fmt.Sprintf("You took %d damage from poison!", ev.Amount)}
	case engine.EventPoisonWornOff:
		return []string{"The poison wore off!"}
	case engine.EventWaveCleared:
		return []string{"WAVE CLEARED!"}
	case engine.EventPointsGranted:
		return []string{fmt.Sprintf("You earned %d upgrade point(s)!", ev.Amount)}
	case engine.EventUpgradeApplied:
		return []string{fmt.Sprintf("Upgraded %s successfully!", upgradeNames[ev.Category])}
	case engine.EventUpgradeCanceled:
		return []string{"Upgrade Cancelled."}
	case engine.EventHealthRestored:
		return []string{fmt.Sprintf("Your health was restored to %d HP.", ev.Amount)}
	case engine.EventWaveStarted:
		return []string{fmt.Sprintf("Entering wave %d...", ev.Wave)}
	}
	return nil
}

func describeAll(events []engine.Event) []string {
	var out []string
	for _, ev := range events {
		out = append(out, describe(ev)...)
	}
	return out
}
