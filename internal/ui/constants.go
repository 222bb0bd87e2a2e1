// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/3 of total width)
	SidebarWidthRatio = 3

	// MinSidebarWidth keeps the conversation list readable on narrow terminals
	MinSidebarWidth = 24

	// NavRailHeight is the section tab row at the top of the sidebar
	NavRailHeight = 1

	// InputHeight is the height of the composer including its border
	InputHeight = 3

	// AccessoryHeight is the row under the input used by the picker,
	// recording bar and record triggers
	AccessoryHeight = 1

	// SidebarSearchCharLimit caps the sidebar search query
	SidebarSearchCharLimit = 64

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout calculations
	MinTerminalWidth  = 60
	MinTerminalHeight = 12
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60
)

// Flash message timing
const (
	// FlashDuration is how long a footer flash stays visible
	FlashDuration = 3 * time.Second

	// FlashTickInterval is how often the footer checks for expiry
	FlashTickInterval = 500 * time.Millisecond
)
