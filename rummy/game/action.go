package game

// Action is one discrete move applied to a Session.
type Action interface {
	actionName() string
}

type StartAction struct{}

type DrawAction struct {
	FromDiscard bool
}

type DiscardAction struct {
	Index int
}

// KnockAction ends the current turn with a knock.
type KnockAction struct{}

// PassAction ends the current turn without knocking.
type PassAction struct{}

type ReorderAction struct {
	From int
	To   int
}

// SelectAction marks a card in the current hand; a negative index clears it.
type SelectAction struct {
	Index int
}

type NextRoundAction struct{}

func (StartAction) actionName() string     { return "start" }
func (DrawAction) actionName() string      { return "draw" }
func (DiscardAction) actionName() string   { return "discard" }
func (KnockAction) actionName() string     { return "knock" }
func (PassAction) actionName() string      { return "pass" }
func (ReorderAction) actionName() string   { return "reorder" }
func (SelectAction) actionName() string    { return "select" }
func (NextRoundAction) actionName() string { return "next_round" }
