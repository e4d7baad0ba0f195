// Command mirador runs the maze game in a terminal: animated maze
// generation, then a top-down chase to the exit against the clock and
// the stalker.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirador/audio"
	"github.com/lixenwraith/mirador/collision"
	"github.com/lixenwraith/mirador/game"
	"github.com/lixenwraith/mirador/maze"
	"github.com/lixenwraith/mirador/parameter"
	"github.com/lixenwraith/mirador/world"
)

const frameInterval = 33 * time.Millisecond

// generationStepsPerFrame converts the per-step animation delay into a
// batch size for one frame, at least one step per frame.
func generationStepsPerFrame(fast bool) int {
	delayMs := parameter.GenerationStepDelayMs
	if fast {
		delayMs = parameter.GenerationFastStepDelayMs
	}
	steps := int(frameInterval.Milliseconds()) / delayMs
	if steps < 1 {
		steps = 1
	}
	return steps
}

var (
	styleDefault = tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.ColorWhite)
	styleWall      = styleDefault.Foreground(tcell.ColorGray)
	styleConnected = styleDefault.Foreground(tcell.ColorWhite)
	stylePlayer    = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy     = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleExit      = styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWarning   = styleDefault.Foreground(tcell.ColorYellow)
	styleCritical  = styleDefault.Foreground(tcell.ColorRed)
)

type app struct {
	screen tcell.Screen
	sounds *audio.Manager

	state game.Screen

	gen    *maze.Generator
	grid   [][]bool
	exit   maze.Cell // wall-grid coordinates
	sys    *collision.System
	player *game.Player
	enemy  *game.Enemy
	hud    *game.HUD
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("terminal init failed: %v", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Printf("terminal init failed: %v", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	sounds := audio.NewManager()
	if err := sounds.Initialize(); err == nil {
		defer sounds.Cleanup()
	}

	a := &app{
		screen: screen,
		sounds: sounds,
		hud:    game.NewHUD(),
	}
	a.startGeneration()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, open := <-events:
			if !open {
				return
			}
			if !a.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			a.update(dt)
			a.draw()
		}
	}
}

func (a *app) startGeneration() {
	a.state = game.ScreenLoading
	a.gen = maze.NewGenerator(parameter.MazeDefaultWidth, parameter.MazeDefaultHeight)
	a.grid = nil
	a.sys = nil
	a.enemy = nil
	a.hud.Timer = nil
}

// finishGeneration saves the maze and brings up the play state. A maze
// that cannot be written to disk is fatal; the game cannot continue
// without it.
func (a *app) finishGeneration() {
	m := a.gen.Maze()
	if _, err := m.SaveToFile(); err != nil {
		a.screen.Fini()
		log.Printf("failed to save generated maze: %v", err)
		os.Exit(1)
	}

	a.grid = m.Walls
	a.exit = maze.Cell{Row: m.ExitCell.Row*2 + 1, Col: m.ExitCell.Col*2 + 1}

	a.sys = collision.NewSystem(parameter.PlayerRadius, parameter.PlayerCollisionHeight)
	a.sys.BuildFromMaze(a.grid, false)
	a.sys.SetListener(a.sounds)

	a.player = game.NewPlayer()
	a.player.SpawnAtMazeEntrance(a.grid, false)

	width, height := len(a.grid[0]), len(a.grid)
	enemyPos := world.MazeToWorld(a.exit, width, height, parameter.EnemyHeight, false)
	a.enemy = game.NewEnemy(enemyPos)
	a.enemy.Pathfinder.Locked = false

	a.hud.Timer = game.NewGameTimer(game.DefaultTimerConfig())
	a.hud.Timer.Start()

	a.state = game.ScreenGame
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			a.sounds.SetMuted(!a.sounds.Muted())
		case 'p':
			a.togglePause()
		case 'r':
			if a.state == game.ScreenGameOver || a.state == game.ScreenExitReached {
				if a.state == game.ScreenExitReached {
					a.hud.Level++
					a.hud.Score += 100
				}
				a.startGeneration()
			}
		case 'w':
			a.movePlayer(0, -1, false)
		case 's':
			a.movePlayer(0, 1, false)
		case 'a':
			a.movePlayer(-1, 0, false)
		case 'd':
			a.movePlayer(1, 0, false)
		case 'W':
			a.movePlayer(0, -1, true)
		case 'S':
			a.movePlayer(0, 1, true)
		case 'A':
			a.movePlayer(-1, 0, true)
		case 'D':
			a.movePlayer(1, 0, true)
		}
	}
	return true
}

func (a *app) togglePause() {
	switch a.state {
	case game.ScreenGame:
		a.state = game.ScreenPause
		a.hud.Timer.Pause()
		a.enemy.Pathfinder.Locked = true
	case game.ScreenPause:
		a.state = game.ScreenGame
		a.hud.Timer.Resume()
		a.enemy.Pathfinder.Locked = false
	}
}

// movePlayer advances one keypress worth of distance in a cardinal
// direction, resolved against the walls. Shifted keys sprint.
func (a *app) movePlayer(dx, dz float32, sprint bool) {
	if a.state != game.ScreenGame {
		return
	}
	a.player.SetSprinting(sprint)
	step := a.player.Speed * float32(frameInterval.Seconds()) * 4
	current := a.player.Position
	desired := current.Add(mgl32.Vec3{dx * step, 0, dz * step})
	a.player.Position = a.sys.CheckAndResolveCollision(current, desired)
	a.player.UpdateCell(a.grid, false)
}

func (a *app) update(dt float32) {
	switch a.state {
	case game.ScreenLoading:
		steps := generationStepsPerFrame(a.gen.FastMode())
		for i := 0; i < steps && !a.gen.IsComplete(); i++ {
			a.gen.Step()
		}
		if a.gen.IsComplete() {
			a.finishGeneration()
		}

	case game.ScreenGame:
		if a.hud.Timer.Update() {
			a.state = game.ScreenGameOver
			return
		}

		level := a.hud.Level
		a.enemy.Update(a.player.Position, dt, level, a.sys)

		if a.enemyCaughtPlayer() {
			a.state = game.ScreenGameOver
			return
		}
		if a.player.CurrentCell == a.exit {
			a.hud.Timer.Stop()
			a.state = game.ScreenExitReached
		}
	}
}

func (a *app) enemyCaughtPlayer() bool {
	d := a.enemy.Pathfinder.Position.Sub(a.player.Position)
	d[1] = 0
	return d.Len() < parameter.EnemyArrivalThreshold
}

func (a *app) draw() {
	a.screen.Clear()
	switch a.state {
	case game.ScreenLoading:
		a.drawGeneration()
	case game.ScreenGame, game.ScreenPause:
		a.drawMaze()
		a.drawHUD()
		if a.state == game.ScreenPause {
			drawText(a.screen, 0, 0, styleDefault.Bold(true), "PAUSED")
		}
	case game.ScreenGameOver:
		drawText(a.screen, 2, 2, styleCritical, "CAUGHT OR OUT OF TIME")
		drawText(a.screen, 2, 4, styleDefault, "r to retry, q to quit")
	case game.ScreenExitReached:
		drawText(a.screen, 2, 2, styleExit, "EXIT REACHED")
		drawText(a.screen, 2, 4, styleDefault, "r for the next maze, q to quit")
	}
	a.screen.Show()
}

func (a *app) drawGeneration() {
	m := a.gen.Maze()
	connected := a.gen.Connected()

	for row, cells := range m.Walls {
		for col, isWall := range cells {
			style := styleDefault
			ch := ' '
			if isWall {
				ch = '█'
				style = styleWall
			} else if row%2 == 1 && col%2 == 1 {
				cell := maze.Cell{Row: (row - 1) / 2, Col: (col - 1) / 2}
				if _, ok := connected[cell]; ok {
					ch = '·'
					style = styleConnected
				}
			}
			a.screen.SetContent(col, row+1, ch, nil, style)
		}
	}

	mode := ""
	if a.gen.FastMode() {
		mode = " [fast]"
	}
	drawTextf(a.screen, 0, 0, styleDefault, "generating %3.0f%%%s", a.gen.ProgressRatio()*100, mode)
}

func (a *app) drawMaze() {
	width, height := len(a.grid[0]), len(a.grid)
	for row, cells := range a.grid {
		for col, isWall := range cells {
			if isWall {
				a.screen.SetContent(col, row+1, '█', nil, styleWall)
			}
		}
	}
	a.screen.SetContent(a.exit.Col, a.exit.Row+1, 'E', nil, styleExit)

	enemyCell := world.WorldToMaze(a.enemy.Pathfinder.Position, width, height, false)
	a.screen.SetContent(enemyCell.Col, enemyCell.Row+1, 'X', nil, styleEnemy)

	playerCell := a.player.CurrentCell
	a.screen.SetContent(playerCell.Col, playerCell.Row+1, '@', nil, stylePlayer)
}

func (a *app) drawHUD() {
	style := styleDefault
	switch a.hud.Timer.Urgency() {
	case game.TimerWarning:
		style = styleWarning
	case game.TimerCritical:
		style = styleCritical
	}
	drawTextf(a.screen, 0, 0, style, "level %d  score %d  time %s",
		a.hud.Level, a.hud.Score, a.hud.TimerText())
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawTextf(s tcell.Screen, x, y int, style tcell.Style, format string, args ...any) {
	drawText(s, x, y, style, fmt.Sprintf(format, args...))
}
