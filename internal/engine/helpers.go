package engine

import "github.com/daniel-c5656/python-dungeon/internal/game"

// removeAt drops roster[i] keeping order.
func removeAt(roster []*game.Enemy, i int) []*game.Enemy {
	copy(roster[i:], roster[i+1:])
	roster[len(roster)-1] = nil
	return roster[:len(roster)-1]
}

// WeakestTarget returns the roster index with the lowest health, or -1 for
// an empty roster. Ties keep the earliest index.
func WeakestTarget(roster []EnemyView) int {
	best := -1
	for i, e := range roster {
		if best < 0 || e.Health < roster[best].Health {
			best = i
		}
	}
	return best
}
