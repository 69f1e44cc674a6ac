package game

// Controller makes the decisions for one seat. Returning an error stops the game;
// consts.ErrorsExit means the player asked to leave.
type Controller interface {
	Name() string
	// ChooseDraw reports whether to take the top of the discard pile instead of the deck.
	ChooseDraw(view View) (bool, error)
	// ChooseDiscard returns a DiscardAction, or a ReorderAction/SelectAction to rearrange first.
	ChooseDiscard(view View) (Action, error)
	ChooseKnock(view View) (bool, error)
}
