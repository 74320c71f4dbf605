package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles; colors derive from currentColor so light and dark
// schemes both work.
const appCSS = `
/* Side list */
.side-list > row {
    border-radius: 6px;
    margin: 1px 6px;
}

.side-list > row:selected {
    background-color: alpha(#3584e4, 0.2);
}

/* Tab headers */
button.tab-close {
    min-width: 20px;
    min-height: 20px;
    padding: 0;
}

/* Data tab */
.tab-toolbar button {
    padding: 4px 8px;
}

.table-header {
    padding: 6px 12px;
    font-weight: 600;
    border-bottom: 1px solid alpha(currentColor, 0.15);
}

.data-rows > row:hover {
    background-color: alpha(currentColor, 0.05);
}

.detail-form label {
    opacity: 0.8;
}

/* Dialogs */
.connection-dialog stackswitcher {
    margin-bottom: 6px;
}

.preferences-card {
    border-radius: 12px;
    border: 1px solid alpha(currentColor, 0.15);
}

.settings-title {
    font-weight: 600;
}

.dialog-button {
    min-width: 80px;
}

/* Status Bar */
.status-label {
    opacity: 0.8;
}

/* Entry fields */
entry {
    border-radius: 6px;
    min-height: 30px;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
