package player

// Handler receives the notifications the simulation sends to systems outside of it: the UI,
// the audio mixer and the scene loader.
type Handler interface {
	// HandleSanityChange is called whenever the sanity meter changes value.
	HandleSanityChange(old, current float32)
	// HandleAmbientStop is called when the terminal sequence starts and ambient audio should stop.
	HandleAmbientStop()
	// HandleTerminalScreen is called when the terminal sequence starts and its screen should show.
	HandleTerminalScreen()
	// HandleSceneTransition is called once per run, at the end of the terminal sequence.
	HandleSceneTransition()
}

// NopHandler is a Handler that does nothing.
type NopHandler struct{}

func (NopHandler) HandleSanityChange(float32, float32) {}
func (NopHandler) HandleAmbientStop()                  {}
func (NopHandler) HandleTerminalScreen()               {}
func (NopHandler) HandleSceneTransition()              {}
