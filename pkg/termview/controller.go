package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/synthwave/pkg/session"
)

// HoldTicks is how long one arrow key press keeps steering.
// Terminals report key repeats but never a release.
const HoldTicks = 8

// Controller folds terminal events into the per-tick input the machine polls
type Controller struct {
	screen tcell.Screen

	keyDir  int
	held    int
	mouseX  int
	mouse   bool
	restart bool
}

// NewController creates a controller reading pointer positions against screen
func NewController(screen tcell.Screen) *Controller {
	return &Controller{screen: screen}
}

// Handle applies one event. It returns false when the player asked to quit.
func (c *Controller) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			c.steer(1)
		case tcell.KeyRight:
			c.steer(-1)
		case tcell.KeyEnter:
			c.restart = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a', 'A':
				c.steer(1)
			case 'd', 'D':
				c.steer(-1)
			case ' ':
				c.restart = true
			case 'q':
				return false
			}
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !c.mouse {
			c.restart = true
		}
		c.mouse = pressed
		c.mouseX = x

	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true
}

func (c *Controller) steer(dir int) {
	c.keyDir = dir
	c.held = HoldTicks
}

// Poll returns the input for this tick and consumes one-shot requests
func (c *Controller) Poll() session.Input {
	var in session.Input

	if c.mouse {
		w, _ := c.screen.Size()
		in.Dir = 1
		if c.mouseX >= w/2 {
			in.Dir = -1
		}
	}
	if c.held > 0 {
		in.Dir = c.keyDir
		c.held--
	}

	in.Restart = c.restart
	c.restart = false
	return in
}
