package subgraph

import (
	"fmt"

	"feeTierScope/internal/model"
)

// ClampWindow limits a tick window to the protocol tick range.
func ClampWindow(w model.TickWindow) (model.TickWindow, error) {
	if w.Upper < w.Lower {
		return model.TickWindow{}, fmt.Errorf("upper tick must be >= lower tick")
	}
	if w.Lower < model.MinTick {
		w.Lower = model.MinTick
	}
	if w.Upper > model.MaxTick {
		w.Upper = model.MaxTick
	}
	if w.Upper < w.Lower {
		return model.TickWindow{}, fmt.Errorf("window outside tick range")
	}
	return w, nil
}
