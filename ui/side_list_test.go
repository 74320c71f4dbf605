package ui

import "testing"

func TestRowGate(t *testing.T) {
	tests := []struct {
		name   string
		events string // s = selected, a = activated, i = idle
		want   int
	}{
		{"click on new row", "sai", 1},
		{"click on selected row", "a", 1},
		{"click twice on same row", "saia", 2},
		{"keyboard selection", "si", 1},
		{"keyboard selection then enter", "sia", 2},
		{"two clicks on different rows", "saisai", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g rowGate
			opened := 0
			for _, ev := range tt.events {
				switch ev {
				case 's':
					g.selected()
					opened++
				case 'a':
					if g.activated() {
						opened++
					}
				case 'i':
					g.settle()
				}
			}
			if opened != tt.want {
				t.Errorf("tabs opened = %v, want %v", opened, tt.want)
			}
		})
	}
}
