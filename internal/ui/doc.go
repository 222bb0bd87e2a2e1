// Package ui provides the display components of Dialogo.
//
// # Overview
//
// The ui package renders workspace snapshots with Bubble Tea components and
// Lipgloss styling. Components never mutate conversation state; the app
// package translates key presses into workspace events and hands the
// resulting snapshot back through Apply.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│ Nav rail        │  Timeline                         │
//	│ Conversations   │                                   │
//	│ (1/3 width)     ├───────────────────────────────────┤
//	│                 │  Composer input                   │
//	│                 │  Picker / recording bar           │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title and the open conversation with its presence.
//
// Footer: Context-aware key hints and transient flash messages.
//
// Sidebar: Section rail plus the conversation list with avatars, unread
// counts and previews truncated by display width.
//
// Chat: Message timeline in a viewport, the composer input and the accessory
// row. Record triggers are drawn disabled while a recording is running.
//
// Panels: Contacts, notifications, profile and settings sections.
//
// # Styles
//
// Styles live in styles.go and are rebuilt from the active Theme whenever
// SetTheme is called.
package ui
