package terminal

import (
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/game"
)

var (
	frameStyle  = tcell.StyleDefault.Background(tcell.ColorNavy)
	winStyle    = tcell.StyleDefault.Background(tcell.ColorGreen)
	textStyle   = tcell.StyleDefault
	noticeStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerColor = tcell.ColorRed
	aiColor     = tcell.ColorYellow
	emptyColor  = tcell.ColorBlack
	discRune    = '●'
	helpText    = "r restart   q/Esc quit"
)

// UI draws a session on a tcell screen and feeds input back into it.
// Session updates arrive through Send and are drawn on the event loop.
type UI struct {
	screen     tcell.Screen
	session    *game.Session
	layout     Layout
	hover      int
	buttonDown bool
	notice     string
}

func NewUI(screen tcell.Screen) *UI {
	return &UI{screen: screen, hover: domain.CenterColumn}
}

// Send implements game.Notifier. It may be called from any goroutine.
func (u *UI) Send(msg game.Message) {
	if err := u.screen.PostEvent(tcell.NewEventInterrupt(msg)); err != nil {
		log.Printf("[UI] Dropped %s update: %v", msg.Type, err)
	}
}

// Run starts the session and blocks until the user quits.
func (u *UI) Run(session *game.Session) error {
	if session == nil {
		return errors.New("no session to play")
	}
	u.session = session
	u.screen.EnableMouse()
	u.screen.HideCursor()

	session.Start()
	u.draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.handleEvent(ev) {
			return nil
		}
	}
}

// handleEvent reacts to one event and reports whether the user quit.
func (u *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyLeft:
			u.moveHover(-1)
		case ev.Key() == tcell.KeyRight:
			u.moveHover(1)
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			u.drop(u.hover)
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			u.notice = ""
			u.session.Restart()
		case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '0'+domain.Columns:
			u.hover = int(ev.Rune() - '1')
			u.drop(u.hover)
		}
	case *tcell.EventMouse:
		x, _ := ev.Position()
		column, onBoard := u.layout.ColumnAt(x)
		if onBoard {
			u.hover = column
		}
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !u.buttonDown && onBoard {
			u.drop(column)
		}
		u.buttonDown = pressed
	case *tcell.EventInterrupt:
		if msg, ok := ev.Data().(game.Message); ok && msg.Type == "game_over" {
			log.Printf("[UI] Game over: %s", msg.Outcome)
		}
	}
	u.draw()
	return false
}

func (u *UI) moveHover(delta int) {
	u.hover += delta
	if u.hover < 0 {
		u.hover = 0
	}
	if u.hover >= domain.Columns {
		u.hover = domain.Columns - 1
	}
}

func (u *UI) drop(column int) {
	err := u.session.HandleMove(column)
	switch {
	case err == nil:
		u.notice = ""
	case errors.Is(err, domain.ErrInvalidMove):
		u.notice = "That column is full."
	case errors.Is(err, domain.ErrNotYourTurn):
		u.notice = "Wait for the AI to move."
	case errors.Is(err, domain.ErrGameOver):
		u.notice = "The game is over. Press r to play again."
	default:
		log.Printf("[UI] Move in column %d failed: %v", column, err)
		u.notice = err.Error()
	}
}

func (u *UI) draw() {
	snap := u.session.Snapshot()
	width, height := u.screen.Size()
	u.layout = NewLayout(width, height)
	u.screen.Clear()

	winning := make(map[domain.Cell]bool)
	if snap.WinningLine != nil {
		for _, c := range snap.WinningLine.Cells {
			winning[c] = true
		}
	}

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			style := frameStyle
			if winning[domain.Cell{Row: row, Column: col}] {
				style = winStyle
			}
			x, y := u.layout.CellOrigin(row, col)
			drawDisc(u.screen, x, y, style.Foreground(colorOf(snap.Board[row][col])))
		}
	}

	if !snap.Outcome.IsFinished() && snap.CurrentTurn == domain.PlayerPiece {
		x, _ := u.layout.CellOrigin(0, u.hover)
		drawDisc(u.screen, x, u.layout.HoverY(), textStyle.Foreground(playerColor))
	}

	for col := 0; col < domain.Columns; col++ {
		x, _ := u.layout.CellOrigin(0, col)
		u.screen.SetContent(x+1, u.layout.LabelY(), rune('1'+col), nil, textStyle)
	}

	drawText(u.screen, u.layout.Left, u.layout.StatusY(), textStyle, StatusText(snap))
	drawText(u.screen, u.layout.Left, u.layout.StatusY()+1, noticeStyle, u.notice)
	drawText(u.screen, u.layout.Left, u.layout.StatusY()+2, textStyle, helpText+"   moves "+strconv.Itoa(snap.MoveCount))
	u.screen.Show()
}

func colorOf(p domain.Piece) tcell.Color {
	switch p {
	case domain.PlayerPiece:
		return playerColor
	case domain.AIPiece:
		return aiColor
	}
	return emptyColor
}

// drawDisc fills one cell: pad, disc, two pads.
func drawDisc(s tcell.Screen, x, y int, style tcell.Style) {
	s.SetContent(x, y, ' ', nil, style)
	s.SetContent(x+1, y, discRune, nil, style)
	s.SetContent(x+2, y, ' ', nil, style)
	s.SetContent(x+3, y, ' ', nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
