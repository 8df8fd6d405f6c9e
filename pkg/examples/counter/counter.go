// Package counter is a minimal application: a count with buttons that
// increment and decrement it, and a footer rendered through a portal.
package counter

import (
	"src.jubako.dev/pkg/session"
	"src.jubako.dev/pkg/vdom"
)

// Route is the path the counter is conventionally served under.
const Route = "counter"

// Messages of the counter.
type (
	Increment struct{}
	Decrement struct{}
)

// Creator creates a counter for every session.
var Creator session.Creator = session.CreatorFunc(func(*session.Context) session.App {
	return &App{}
})

// App is the counter application. Its state is only accessed through Update
// and View, which the session serializes.
type App struct {
	count  int
	clicks int
}

func (a *App) Update(msg vdom.Msg) session.DirtyFlag {
	switch msg.(type) {
	case Increment:
		a.count++
	case Decrement:
		a.count--
	default:
		return session.NoRender
	}
	a.clicks++
	return session.ShouldRender
}

const buttonStyle = `
	min-width: 120px;
	height: 32px;
`

func (a *App) View() vdom.Node {
	increment := vdom.El("button", vdom.Text("increment")).
		WithStyle(buttonStyle).
		WithHandlers(vdom.Handlers{
			Click: vdom.Handle(func(vdom.MouseEvent) Increment { return Increment{} }),
		})
	decrement := vdom.El("button", vdom.Text("decrement")).
		WithStyle(buttonStyle).
		WithHandlers(vdom.Handlers{
			Click: vdom.Handle(func(vdom.MouseEvent) Decrement { return Decrement{} }),
		})
	buttons := vdom.El("div", increment, decrement).WithStyle(`
		width: 80%;
		display: flex;
		justify-content: space-around;
	`)
	panel := vdom.El("div", vdom.Textf("%d", a.count), buttons).WithStyle(`
		width: 400px;
		height: 120px;
		display: flex;
		flex-direction: column;
		align-items: center;
		justify-content: space-around;
	`)
	footer := vdom.NewPortal(
		vdom.El("footer", vdom.Textf("%d clicks", a.clicks)).WithClass("counter-footer"),
	)
	return vdom.El("div", panel, footer).WithStyle(`
		width: 100%;
		height: 100%;
		display: grid;
		place-items: center;
	`)
}
