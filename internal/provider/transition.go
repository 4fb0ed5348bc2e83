package provider

// Coords are optional pointer coordinates hinting where an animated mode
// reveal should originate.
type Coords struct {
	X float64
	Y float64
}

// Transition is the optional animated mode-flip capability of the host
// environment. Commit performs the visual swap; implementations decide when
// to invoke it. The engine never waits for the animation to finish.
type Transition interface {
	Run(coords *Coords, commit func())
}

// NoopTransition applies the swap immediately with no animation. It is the
// fallback for hosts without a view-transition primitive.
type NoopTransition struct{}

func (NoopTransition) Run(_ *Coords, commit func()) {
	commit()
}
