package game

// chaseRadius is how far, on each axis, a monster notices the player.
const chaseRadius = 2

// moveMonsters gives every monster near the player one step toward it.
// Detection is a 5x5 box around the player, but a monster only ever moves
// along one axis per turn, horizontal first.
func (w *World) moveMonsters() {
	px, py := w.player.X, w.player.Y

	for _, m := range w.monsters {
		if abs(m.X-px) > chaseRadius || abs(m.Y-py) > chaseRadius {
			continue
		}

		for _, step := range chaseSteps(m.X, m.Y, px, py) {
			if w.grid.CanEnter(m.X+step.dx, m.Y+step.dy) {
				m.Move(step.dx, step.dy)
				break
			}
		}
	}
}

type step struct {
	dx, dy int
}

// chaseSteps lists candidate steps from (mx, my) toward (px, py) in priority
// order: left, right, up, down.
func chaseSteps(mx, my, px, py int) []step {
	steps := make([]step, 0, 2)
	if px < mx {
		steps = append(steps, step{-1, 0})
	}
	if px > mx {
		steps = append(steps, step{1, 0})
	}
	if py < my {
		steps = append(steps, step{0, -1})
	}
	if py > my {
		steps = append(steps, step{0, 1})
	}
	return steps
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
