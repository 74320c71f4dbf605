package data

// Action is the label and icon shown on a toolbar button.
type Action struct {
	Label string
	Icon  string
}

// Toolbar action identifiers.
const (
	ActionNew     = "new"
	ActionSave    = "save"
	ActionRefresh = "refresh"
	ActionDelete  = "delete"
	ActionUndo    = "undo"
	ActionRedo    = "redo"
	ActionFind    = "find"
	ActionDetail  = "detail"
)

// ToolAction is one entry of a tab toolbar.
type ToolAction struct {
	ID string
	Action
}

// ToolbarActions returns the tab toolbar entries in display order.
// Only ActionDetail is bound to behavior.
func ToolbarActions() []ToolAction {
	return []ToolAction{
		{ActionNew, Action{"New", "list-add"}},
		{ActionSave, Action{"Save", "document-save"}},
		{ActionRefresh, Action{"Refresh", "view-refresh"}},
		{ActionDelete, Action{"Delete", "list-remove"}},
		{ActionUndo, Action{"Undo", "edit-undo"}},
		{ActionRedo, Action{"Redo", "edit-redo"}},
		{ActionFind, Action{"Search", "edit-find"}},
		{ActionDetail, Action{"View detail", "view-fullscreen"}},
	}
}
