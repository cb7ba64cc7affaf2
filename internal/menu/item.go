package menu

import (
	"github.com/layoutlab/nodekit/internal/catalog"
	"github.com/layoutlab/nodekit/internal/keys"
	"github.com/layoutlab/nodekit/internal/nodes"
)

// ItemType distinguishes the entries of a layout.
type ItemType string

const (
	ItemKind      ItemType = "kind"
	ItemSeparator ItemType = "separator"
	ItemPlugin    ItemType = "plugin"
	ItemNone      ItemType = "none"
)

// NoneText is the text of the item that selects no kind.
const NoneText = "None"

// Item is one entry of a toolbar or menu.
type Item struct {
	Type     ItemType         `json:"type"`
	Kind     nodes.KindID     `json:"kind,omitzero"`
	Text     string           `json:"text,omitempty"`
	Tooltip  string           `json:"tooltip,omitempty"`
	Icon     string           `json:"icon,omitempty"`
	Shortcut keys.Combo       `json:"shortcut,omitzero"`
	Overflow bool             `json:"overflow,omitempty"`
	Plugin   catalog.PluginID `json:"plugin,omitempty"`
	Children []Item           `json:"children,omitempty"`
}

// IsSeparator reports whether the item is a separator.
func (i Item) IsSeparator() bool { return i.Type == ItemSeparator }

func separator() Item { return Item{Type: ItemSeparator} }
