package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/sounds-of-canada/internal/browse"
	"github.com/desertthunder/sounds-of-canada/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgAlbumsFetched MsgKind = iota
	MsgFavouriteToggled
)

// albumsFetchedMsg is the constructor for [MsgAlbumsFetched]
func albumsFetchedMsg(res browse.Result) Msg {
	return Msg{kind: MsgAlbumsFetched, data: res}
}

type favouriteToggled struct {
	album   models.Album
	present bool
	err     error
}

// favouriteToggledMsg is the constructor for [MsgFavouriteToggled]
func favouriteToggledMsg(album models.Album, present bool, err error) Msg {
	return Msg{kind: MsgFavouriteToggled, data: favouriteToggled{album, present, err}}
}
