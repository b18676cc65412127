package layout

import "strings"

// Kind is the closed set of node types a design tree may contain.
type Kind uint8

const (
	// Containers
	KindBox Kind = iota
	KindScreen
	KindPanel
	KindGrid
	KindModal
	KindTabs
	KindMenu
	KindList
	KindTree

	// Leaves
	KindText
	KindButton
	KindTextInput
	KindTextArea
	KindCheckbox
	KindRadio
	KindSelect
	KindProgressBar
	KindSpinner
	KindDivider
	KindStatusBar

	kindCount
)

var kindNames = [kindCount]string{
	KindBox:         "box",
	KindScreen:      "screen",
	KindPanel:       "panel",
	KindGrid:        "grid",
	KindModal:       "modal",
	KindTabs:        "tabs",
	KindMenu:        "menu",
	KindList:        "list",
	KindTree:        "tree",
	KindText:        "text",
	KindButton:      "button",
	KindTextInput:   "textinput",
	KindTextArea:    "textarea",
	KindCheckbox:    "checkbox",
	KindRadio:       "radio",
	KindSelect:      "select",
	KindProgressBar: "progressbar",
	KindSpinner:     "spinner",
	KindDivider:     "divider",
	KindStatusBar:   "statusbar",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind converts a type tag such as "Button", "text-input" or
// "progress_bar" into a Kind.
func ParseKind(s string) (Kind, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, name := range kindNames {
		if name == key {
			return Kind(i), true
		}
	}
	return KindBox, false
}

// IsContainer reports whether nodes of this kind are expected to own children.
func (k Kind) IsContainer() bool {
	return k < KindText
}

// IsItemCollection reports whether the kind can size itself from Content.Items.
func (k Kind) IsItemCollection() bool {
	switch k {
	case KindTabs, KindMenu, KindList, KindTree, KindStatusBar:
		return true
	}
	return false
}

// forcesColumn reports whether the kind always stacks its children vertically.
func (k Kind) forcesColumn() bool {
	return k == KindList || k == KindTree
}
