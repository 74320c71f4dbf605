package data

import (
	"testing"

	"github.com/google/uuid"
)

func TestPanel_String(t *testing.T) {
	tests := []struct {
		panel    Panel
		expected string
	}{
		{PanelList, "List"},
		{PanelDetail, "Detail"},
		{Panel(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.panel.String(); got != tt.expected {
				t.Errorf("Panel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewTab(t *testing.T) {
	tab := NewTab("Window 3")

	if tab.ID == uuid.Nil {
		t.Error("NewTab should assign an ID")
	}
	if tab.Title != "Window 3" {
		t.Errorf("Title = %v, want Window 3", tab.Title)
	}
	if tab.Panel() != PanelList {
		t.Errorf("Panel() = %v, want List", tab.Panel())
	}
	if tab.Store().RowCount() != 50 {
		t.Errorf("RowCount() = %v, want 50", tab.Store().RowCount())
	}
	if len(tab.Detail()) != 5 {
		t.Errorf("len(Detail()) = %v, want 5", len(tab.Detail()))
	}
}

func TestNewTab_DistinctIdentity(t *testing.T) {
	a := NewTab("Window 1")
	b := NewTab("Window 1")

	if a.ID == b.ID {
		t.Error("tabs with the same title must have distinct IDs")
	}
	if a.Store() == b.Store() {
		t.Error("every tab must own its store")
	}
}

func TestTab_ToggleParity(t *testing.T) {
	for n := 0; n <= 7; n++ {
		tab := NewTab("Window 0")
		for i := 0; i < n; i++ {
			tab.Toggle()
		}

		want := PanelList
		if n%2 == 1 {
			want = PanelDetail
		}
		if tab.Panel() != want {
			t.Errorf("after %d toggles Panel() = %v, want %v", n, tab.Panel(), want)
		}
	}
}

func TestTab_ToggleReturnsNewPanel(t *testing.T) {
	tab := NewTab("Window 0")

	if got := tab.Toggle(); got != PanelDetail {
		t.Errorf("first Toggle() = %v, want Detail", got)
	}
	if got := tab.Toggle(); got != PanelList {
		t.Errorf("second Toggle() = %v, want List", got)
	}
}

func TestTab_ToggleAction(t *testing.T) {
	tab := NewTab("Window 0")

	want := Action{Label: "View detail", Icon: "view-fullscreen"}
	if got := tab.ToggleAction(); got != want {
		t.Errorf("ToggleAction() = %+v, want %+v", got, want)
	}

	tab.Toggle()
	want = Action{Label: "List view", Icon: "view-restore"}
	if got := tab.ToggleAction(); got != want {
		t.Errorf("ToggleAction() after toggle = %+v, want %+v", got, want)
	}
}

func TestToolbarActions(t *testing.T) {
	actions := ToolbarActions()

	wantIDs := []string{
		ActionNew, ActionSave, ActionRefresh, ActionDelete,
		ActionUndo, ActionRedo, ActionFind, ActionDetail,
	}
	if len(actions) != len(wantIDs) {
		t.Fatalf("len(ToolbarActions()) = %v, want %v", len(actions), len(wantIDs))
	}
	for i, id := range wantIDs {
		if actions[i].ID != id {
			t.Errorf("actions[%d].ID = %v, want %v", i, actions[i].ID, id)
		}
		if actions[i].Label == "" || actions[i].Icon == "" {
			t.Errorf("actions[%d] has empty label or icon: %+v", i, actions[i])
		}
	}

	detail := actions[len(actions)-1]
	if detail.Action != NewTab("x").ToggleAction() {
		t.Errorf("detail action = %+v, want the initial toggle action", detail.Action)
	}
}
