package ui

import "fmt"

// Legend is the fixed key-binding line shown under the board.
const Legend = "Pause/Play: SPACE | Randomly Spawn Cells: s | Faster: = | Slower: - | Left Click: Toggle Cell"

// StatusLine formats the session summary shown at the top of the board.
func StatusLine(paused bool, aliveCount, speed int, spawning bool) string {
	state := "Running"
	if paused {
		state = "Paused"
	}
	spawn := "False"
	if spawning {
		spawn = "True"
	}
	return fmt.Sprintf("Game State: %s | Alive: %d | Simulation Speed: %d | Spawning: %s",
		state, aliveCount, speed, spawn)
}

// TextOffsets computes the pixel anchors for the two overlay lines from the
// board's pixel dimensions. The x inset shrinks with the board so the text
// stays attached to the left portion of wide boards, floored so it never
// leaves the screen.
func TextOffsets(pxW, pxH, cellSize int) (x, topY, bottomY int) {
	x = pxW - 70*cellSize
	if x < 10 {
		x = 10
	}
	topY = 20
	bottomY = pxH - 20
	if bottomY < topY {
		bottomY = topY
	}
	return x, topY, bottomY
}
