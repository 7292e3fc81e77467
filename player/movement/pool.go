package movement

import (
	"sync"

	"github.com/oomph-ac/nightfall/player"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &movementContext{}
	},
}

func newCtx(p *player.Player, input player.InputState) *movementContext {
	ctx := ctxPool.Get().(*movementContext)
	ctx.mPlayer = p
	ctx.input = input
	ctx.dt = input.DeltaTime
	ctx.grounded = p.Grounded()
	return ctx
}

func putCtx(ctx *movementContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *movementContext) reset() {
	ctx.mPlayer = nil
	ctx.input = player.InputState{}
	ctx.dt = 0
	ctx.grounded = false
}
