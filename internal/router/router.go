package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ascend/internal/nav"
	"github.com/abhisek/ascend/internal/screen"
)

// NavigateMsg asks the router to apply a navigation event.
type NavigateMsg struct {
	Event nav.Event
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(ev nav.Event) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Event: ev} }
}

// NavErrorMsg reports a rejected navigation event.
type NavErrorMsg struct {
	Err error
}

// Factory builds the screen for a view.
type Factory func(v nav.View) (screen.Screen, error)

type entry struct {
	view   nav.View
	screen screen.Screen
}

// Router keeps a stack of screens that mirrors the navigation state. A
// transition to a view already on the stack unwinds to it; any other
// transition pushes a new screen.
type Router struct {
	stack   []entry
	factory Factory
}

// New creates a router rooted at the given view's screen.
func New(root nav.View, s screen.Screen, factory Factory) *Router {
	return &Router{
		stack:   []entry{{view: root, screen: s}},
		factory: factory,
	}
}

// Current returns the navigation state.
func (r *Router) Current() nav.View {
	return r.stack[len(r.stack)-1].view
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Apply runs a navigation event through the state machine and updates the
// stack. The returned command initializes the screen that becomes active.
func (r *Router) Apply(ev nav.Event) (tea.Cmd, error) {
	next, err := nav.Transition(r.Current(), ev)
	if err != nil {
		return nil, err
	}

	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].view == next {
			r.stack = r.stack[:i+1]
			// Re-run Init so the revealed screen reloads its data.
			return r.stack[i].screen.Init(), nil
		}
	}

	s, err := r.factory(next)
	if err != nil {
		return nil, err
	}
	r.stack = append(r.stack, entry{view: next, screen: s})
	return s.Init(), nil
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(NavigateMsg); ok {
		cmd, err := r.Apply(msg.Event)
		if err != nil {
			return func() tea.Msg { return NavErrorMsg{Err: err} }
		}
		return cmd
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1].screen = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
