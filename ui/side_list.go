package ui

// rowGate decides which side-list signals open a tab. A click on a new row
// emits row-selected and then row-activated in the same main-loop turn; only
// the first may open a tab. settle runs from an idle callback after that turn.
type rowGate struct {
	selecting bool
}

func (g *rowGate) selected() {
	g.selecting = true
}

func (g *rowGate) activated() bool {
	return !g.selecting
}

func (g *rowGate) settle() {
	g.selecting = false
}
