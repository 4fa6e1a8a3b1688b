package core

// Audio plays the single game sound. Implementations are best-effort: the game
// behaves the same whether or not the sound is actually heard.
type Audio interface {
	Play()
}

// NopAudio is an Audio that does nothing.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play() {}

// AudioFunc adapts a function to the Audio interface.
type AudioFunc func()

// Play calls f.
func (f AudioFunc) Play() {
	f()
}
