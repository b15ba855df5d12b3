package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/sounds-of-canada/internal/models"
)

var (
	_ list.Item = albumItem{}
	_ list.Item = choiceItem{}
)

// albumItem wraps [models.Album] to implement [list.Item].
type albumItem struct {
	album     models.Album
	favourite bool
}

func (i albumItem) FilterValue() string { return i.album.Title }
func (i albumItem) Title() string {
	if i.favourite {
		return "♥ " + i.album.Title
	}
	return i.album.Title
}
func (i albumItem) Description() string {
	if i.album.Artist == "" {
		return "Unknown Artist"
	}
	return i.album.Artist
}

// choiceItem is one drawer option.
type choiceItem struct {
	value    string
	selected bool
}

func (i choiceItem) FilterValue() string { return i.value }
func (i choiceItem) Title() string {
	if i.selected {
		return fmt.Sprintf("[x] %s", i.value)
	}
	return fmt.Sprintf("[ ] %s", i.value)
}
func (i choiceItem) Description() string { return "" }

func albumItems(albums []models.Album, isFavourite func(int64) bool) []list.Item {
	items := make([]list.Item, len(albums))
	for i, a := range albums {
		items[i] = albumItem{album: a, favourite: isFavourite(a.ID)}
	}
	return items
}

func newList(items []list.Item, title string, showDescription bool) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = showDescription
	if !showDescription {
		delegate.SetSpacing(0)
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}
