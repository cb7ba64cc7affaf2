package menu

import (
	"fmt"

	"github.com/layoutlab/nodekit/internal/catalog"
	"github.com/layoutlab/nodekit/internal/logger"
	"github.com/layoutlab/nodekit/internal/nodes"
)

// Style selects how kind items are presented.
type Style int

const (
	// Toolbar items show only their icon; the label becomes the tooltip.
	Toolbar Style = iota
	// Menu items show their label and shortcut.
	Menu
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Toolbar:
		return "toolbar"
	case Menu:
		return "menu"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle converts a style name back to a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "toolbar":
		return Toolbar, nil
	case "menu":
		return Menu, nil
	default:
		return 0, fmt.Errorf("unknown menu style %q (want toolbar or menu)", s)
	}
}

// Options controls Build.
type Options struct {
	Style Style
	// IncludeNone prepends a "None" entry followed by a separator.
	IncludeNone bool
}

// Build lays out cat: the built-in groups separated from each other, then a
// separator and a container per registered plugin. A catalog without
// built-in groups has no kind items at all; only the "None" entry remains
// when requested.
func Build(cat *catalog.Catalog, opts Options) ([]Item, error) {
	items, err := kindItems(cat, opts.Style)
	if err != nil {
		return nil, err
	}

	if opts.IncludeNone {
		items = append([]Item{{Type: ItemNone, Text: NoneText}, separator()}, items...)
	}

	logger.Debug("Built kind layout", logger.Fields(
		logger.FieldComponent, "menu",
		logger.FieldCount, len(items),
	))
	return items, nil
}

func kindItems(cat *catalog.Catalog, style Style) ([]Item, error) {
	groups := cat.BuiltInGroups()
	if len(groups) == 0 {
		return nil, nil
	}

	var items []Item
	for i, g := range groups {
		if i > 0 {
			items = append(items, separator())
		}
		for _, k := range g.Kinds() {
			it, err := kindItem(cat, k, style)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}

	for _, reg := range cat.AllRegistrations() {
		container := Item{Type: ItemPlugin, Plugin: reg.Plugin}
		if style == Menu {
			container.Text = string(reg.Plugin)
		} else {
			container.Tooltip = string(reg.Plugin)
		}
		for _, k := range reg.Kinds {
			// Entries inside a drop-down always show their label.
			it, err := kindItem(cat, k, Menu)
			if err != nil {
				return nil, fmt.Errorf("building items for plugin %s: %w", reg.Plugin, err)
			}
			container.Children = append(container.Children, it)
		}
		items = append(items, separator(), container)
	}
	return items, nil
}

func kindItem(cat *catalog.Catalog, kind nodes.KindID, style Style) (Item, error) {
	d, err := cat.Describe(kind)
	if err != nil {
		return Item{}, err
	}
	it := Item{
		Type:     ItemKind,
		Kind:     kind,
		Icon:     d.Icon,
		Shortcut: d.DefaultShortcut,
	}
	switch style {
	case Toolbar:
		it.Tooltip = d.Label
		it.Overflow = d.CanOverflowInToolbar
	default:
		it.Text = d.Label
	}
	return it, nil
}

// RefreshShortcuts re-reads the shortcut of every kind item, including items
// nested in plugin containers. Items whose kind is no longer known keep
// their previous shortcut.
func RefreshShortcuts(items []Item, cat *catalog.Catalog) {
	for i := range items {
		it := &items[i]
		switch it.Type {
		case ItemKind:
			d, err := cat.Describe(it.Kind)
			if err != nil {
				continue
			}
			it.Shortcut = d.DefaultShortcut
		case ItemPlugin:
			RefreshShortcuts(it.Children, cat)
		}
	}
}
