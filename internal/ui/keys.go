package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	Help          key.Binding
	Refresh       key.Binding
	Prompt        key.Binding
	Search        key.Binding
	Frontpage     key.Binding
	Inbox         key.Binding
	Subscriptions key.Binding
	Multireddits  key.Binding
	PrevTheme     key.Binding
	NextTheme     key.Binding
	YankPermalink key.Binding
	YankURL       key.Binding

	// Movement
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Sort orders
	Sort1 key.Binding
	Sort2 key.Binding
	Sort3 key.Binding
	Sort4 key.Binding
	Sort5 key.Binding
	Sort6 key.Binding
	Sort7 key.Binding

	// Page actions
	Back     key.Binding
	Select   key.Binding
	Open     key.Binding
	Fold     key.Binding
	Upvote   key.Binding
	Downvote key.Binding
	Save     key.Binding
	Reply    key.Binding
	Compose  key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Sibling  key.Binding
	Parent   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "refresh"),
		),
		Prompt: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "go to"),
		),
		Search: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "search"),
		),
		Frontpage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "front page"),
		),
		Inbox: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inbox"),
		),
		Subscriptions: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "subscriptions"),
		),
		Multireddits: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "multireddits"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "prev theme"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "next theme"),
		),
		YankPermalink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy permalink"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy link"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("m", "pgup"),
			key.WithHelp("m", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Sort1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort 1"),
		),
		Sort2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort 2"),
		),
		Sort3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort 3"),
		),
		Sort4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort 4"),
		),
		Sort5: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "sort 5"),
		),
		Sort6: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "sort 6"),
		),
		Sort7: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "sort 7"),
		),

		Back: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "back"),
		),
		Select: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/→", "open"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open thread"),
		),
		Fold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fold"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "upvote"),
		),
		Downvote: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "downvote"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save"),
		),
		Reply: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reply"),
		),
		Compose: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "compose"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Sibling: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "next sibling"),
		),
		Parent: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "parent"),
		),
	}
}

// bindings maps the config action names onto the keyMap fields.
func (k *keyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"quit":           &k.Quit,
		"help":           &k.Help,
		"refresh":        &k.Refresh,
		"prompt":         &k.Prompt,
		"search":         &k.Search,
		"frontpage":      &k.Frontpage,
		"inbox":          &k.Inbox,
		"subscriptions":  &k.Subscriptions,
		"multireddits":   &k.Multireddits,
		"prev_theme":     &k.PrevTheme,
		"next_theme":     &k.NextTheme,
		"yank_permalink": &k.YankPermalink,
		"yank_url":       &k.YankURL,
		"up":             &k.Up,
		"down":           &k.Down,
		"page_up":        &k.PageUp,
		"page_down":      &k.PageDown,
		"top":            &k.Top,
		"bottom":         &k.Bottom,
		"sort_1":         &k.Sort1,
		"sort_2":         &k.Sort2,
		"sort_3":         &k.Sort3,
		"sort_4":         &k.Sort4,
		"sort_5":         &k.Sort5,
		"sort_6":         &k.Sort6,
		"sort_7":         &k.Sort7,
		"back":           &k.Back,
		"select":         &k.Select,
		"open":           &k.Open,
		"fold":           &k.Fold,
		"upvote":         &k.Upvote,
		"downvote":       &k.Downvote,
		"save":           &k.Save,
		"reply":          &k.Reply,
		"compose":        &k.Compose,
		"edit":           &k.Edit,
		"delete":         &k.Delete,
		"sibling":        &k.Sibling,
		"parent":         &k.Parent,
	}
}

// ApplyKeymap rebinds actions from config overrides. Each entry maps an
// action name to its new key list; an empty list disables the action.
// Unknown action names are reported so typos do not silently leave the
// default binding in place.
func (k *keyMap) ApplyKeymap(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	bindings := k.bindings()

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		binding, ok := bindings[name]
		if !ok {
			return fmt.Errorf("unknown keymap action %q", name)
		}
		keys := overrides[name]
		if len(keys) == 0 {
			binding.SetEnabled(false)
			continue
		}
		binding.SetKeys(keys...)
		binding.SetHelp(strings.Join(keys, "/"), binding.Help().Desc)
	}
	return nil
}
