package screen

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/portal/input"
	"github.com/iw2rmb/portal/internal/logx"
	"github.com/iw2rmb/portal/viewport"
)

// Options configures Run.
type Options struct {
	Styles Styles
	// ShowStatus reserves the last row for the status line.
	ShowStatus bool
}

// Run drives vp from events on scr until the viewport asks to quit or leave,
// or ctx is done. scr must already be initialized; Run does not finalize it.
// It returns the message that ended the loop.
func Run(ctx context.Context, scr tcell.Screen, vp *viewport.Viewport, opts Options) input.Message {
	log := logx.WithBackend(logx.Ctx(ctx), "tcell")
	scr.EnableMouse()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	width, height := scr.Size()
	vp.Resize(textRows(height, opts.ShowStatus))
	log.Debug("screen loop started", "width", width, "height", height)

	for {
		draw(scr, vp, width, height, opts)
		select {
		case <-ctx.Done():
			log.Debug("screen loop cancelled")
			return input.Quit()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				width, height = ev.Size()
				vp.Resize(textRows(height, opts.ShowStatus))
				scr.Sync()
			case *tcell.EventKey:
				if in, ok := TranslateKey(ev); ok {
					if msg, ok := vp.Update(in); ok {
						log.Debug("screen loop finished", "message", msg.Kind)
						return msg
					}
				}
			case *tcell.EventMouse:
				if in, ok := TranslateMouse(ev); ok {
					vp.Update(in)
				}
			}
		}
	}
}

func textRows(height int, status bool) int {
	if status {
		height--
	}
	return max(height, 1)
}

func draw(scr tcell.Screen, vp *viewport.Viewport, width, height int, opts Options) {
	scr.HideCursor()
	vp.Render(NewSink(scr, 0, 0, opts.Styles), width, true)
	if opts.ShowStatus && height > 1 {
		drawStatus(scr, vp, width, height-1, opts.Styles.Status)
	}
	scr.Show()
}

func drawStatus(scr tcell.Screen, vp *viewport.Viewport, width, y int, style tcell.Style) {
	var st viewport.StatusLine
	vp.Status(&st)
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	put := func(x int, s string) {
		for _, r := range s {
			if x >= 0 && x < width {
				row[x] = r
			}
			x++
		}
	}
	put(1, st.Left)
	put((width-len([]rune(st.Middle)))/2, st.Middle)
	put(width-1-len([]rune(st.Right)), st.Right)
	for x, r := range row {
		scr.SetContent(x, y, r, nil, style)
	}
}
