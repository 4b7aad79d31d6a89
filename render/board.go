package render

// BackgroundRenderer clears the board
type BackgroundRenderer struct{}

func (BackgroundRenderer) Render(ctx RenderContext) {
	ctx.Canvas.Clear(ctx.Theme.Background)
}

// FoodRenderer paints the food cell
type FoodRenderer struct{}

func (FoodRenderer) Render(ctx RenderContext) {
	if !ctx.State.HasFood {
		return
	}
	cell := ctx.State.Board.CellSize
	ctx.Canvas.FillRect(ctx.State.Food.X, ctx.State.Food.Y, cell, cell, ctx.Theme.Food)
}

// SnakeRenderer paints every body segment with a border
type SnakeRenderer struct{}

func (SnakeRenderer) Render(ctx RenderContext) {
	cell := ctx.State.Board.CellSize
	for _, seg := range ctx.State.Body {
		ctx.Canvas.FillRect(seg.X, seg.Y, cell, cell, ctx.Theme.Snake)
		ctx.Canvas.StrokeRect(seg.X, seg.Y, cell, cell, ctx.Theme.SnakeBorder)
	}
}
