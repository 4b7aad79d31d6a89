package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/natikozel/Snake/game"
)

type rendererEntry struct {
	renderer LayerRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    Canvas
	layout    Layout
	theme     Theme
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing onto screen
func NewRenderOrchestrator(screen tcell.Screen, layout Layout, theme Theme) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		canvas:    NewScreenCanvas(screen, layout),
		layout:    layout,
		theme:     theme,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// NewDefaultOrchestrator registers the board layers and the HUD
func NewDefaultOrchestrator(screen tcell.Screen, layout Layout, viKeys bool) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen, layout, DefaultTheme())
	o.Register(BackgroundRenderer{}, PriorityBackground)
	o.Register(FoodRenderer{}, PriorityFood)
	o.Register(SnakeRenderer{}, PrioritySnake)
	o.Register(NewHUDRenderer(viKeys), PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r LayerRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Layout returns the board to terminal mapping
func (o *RenderOrchestrator) Layout() Layout {
	return o.layout
}

// Resize resynchronises the terminal after a size change
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// Render executes the render pipeline: clear, render all layers, show
func (o *RenderOrchestrator) Render(s game.State) {
	ctx := RenderContext{
		State:  s,
		Canvas: o.canvas,
		Screen: o.screen,
		Layout: o.layout,
		Theme:  o.theme,
	}

	o.screen.Clear()
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx)
	}
	o.screen.Show()
}
