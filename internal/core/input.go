package core

// Action is a semantic player intent, decoupled from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionNext
	ActionPrev
	ActionSelect
	ActionUndo
	ActionRedo
	ActionHint
	ActionShuffle
	ActionPause
	ActionCancelShuffle
	ActionNewGame
	ActionHelp
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionLeft:          "Left",
	ActionRight:         "Right",
	ActionUp:            "Up",
	ActionDown:          "Down",
	ActionNext:          "Next",
	ActionPrev:          "Prev",
	ActionSelect:        "Select",
	ActionUndo:          "Undo",
	ActionRedo:          "Redo",
	ActionHint:          "Hint",
	ActionShuffle:       "Shuffle",
	ActionPause:         "Pause",
	ActionCancelShuffle: "CancelShuffle",
	ActionNewGame:       "NewGame",
	ActionHelp:          "Help",
	ActionQuit:          "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Direction returns the unit step for cursor movement actions.
// ok is false for actions that do not move the cursor spatially.
func (a Action) Direction() (dx, dy int, ok bool) {
	switch a {
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	case ActionUp:
		return 0, -1, true
	case ActionDown:
		return 0, 1, true
	}
	return 0, 0, false
}
