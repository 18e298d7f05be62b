// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI drives a [registrar.Registrar] through three views:
//  1. [CourseListView] : Browse the catalog with live slot counts
//  2. [PromptView] : Enter a student ID to register, drop, or look up
//  3. [StudentView] : Show a student's registered courses
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving results via the Msg union type.
// Registrar calls run inside [tea.Cmd] funcs so the outcome arrives as a message and is shown on the status line.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, r/d/s, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
