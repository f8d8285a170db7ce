package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutDetailWidth is the minimum width to show publisher and grade.
	LayoutDetailWidth = 120
)

// DrawerWidth is the width of the filter drawer pane.
const DrawerWidth = 34

// ActionTimeout bounds a single fetch triggered from the UI.
const ActionTimeout = 10 * time.Second
