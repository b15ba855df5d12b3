// Package ui implements an interactive terminal album browser using bubbletea's Elm architecture.
//
// The TUI has four views:
//  1. [AlbumListView] : Browse albums matching the active filters
//  2. [GenreDrawerView] : Stage genre picks
//  3. [YearDrawerView] : Stage a year pick
//  4. [FavouritesView] : Review and remove favourites
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Filter state lives in a browse.Session; each transition yields one request which runs as a tea.Cmd, and results from
// superseded requests are dropped by the session.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, space, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
