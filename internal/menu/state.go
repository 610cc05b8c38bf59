// Package menu implements the interactive menu state machine. A pure
// transition function decides the next state from the current state and one
// sanitized input token; state handlers do the terminal I/O and store calls.
package menu

import "fmt"

// State is one screen of the interactive workflow.
type State int

// Menu states. ExitProgram is terminal.
const (
	MainMenu State = iota
	ViewProducts
	AddProduct
	UpdateProduct
	RemoveProduct
	SearchProduct
	DisplaySummary
	ExitProgram
)

var stateNames = map[State]string{
	MainMenu:       "MAIN_MENU",
	ViewProducts:   "VIEW_PRODUCTS",
	AddProduct:     "ADD_PRODUCT",
	UpdateProduct:  "UPDATE_PRODUCT",
	RemoveProduct:  "REMOVE_PRODUCT",
	SearchProduct:  "SEARCH_PRODUCT",
	DisplaySummary: "DISPLAY_SUMMARY",
	ExitProgram:    "EXIT_PROGRAM",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == ExitProgram
}

// Effect is a side effect the handler must perform alongside a transition.
type Effect int

// Effects returned by Transition.
const (
	EffectNone Effect = iota
	// EffectInvalidOption: show an invalid-option message and wait for
	// acknowledgment before moving on.
	EffectInvalidOption
	// EffectSortMenu: show the sort sub-menu and stay in ViewProducts.
	EffectSortMenu
)

// mainMenuChoices maps main menu tokens to their target state.
var mainMenuChoices = map[string]State{
	"1": ViewProducts,
	"2": AddProduct,
	"3": UpdateProduct,
	"4": RemoveProduct,
	"5": SearchProduct,
	"6": DisplaySummary,
	"0": ExitProgram,
}

// Transition returns the state that follows from after the user enters
// input at that state's menu. It performs no I/O.
//
// For the add, update, remove and search states the input is the answer to
// the "again / main menu / exit" prompt shown after each operation.
// Unrecognized input stays in MainMenu when already there and falls back to
// MainMenu everywhere else, always with EffectInvalidOption.
func Transition(from State, input string) (State, Effect) {
	switch from {
	case MainMenu:
		if next, ok := mainMenuChoices[input]; ok {
			return next, EffectNone
		}
	case ViewProducts:
		switch input {
		case "1":
			return ViewProducts, EffectSortMenu
		case "2":
			return MainMenu, EffectNone
		case "3":
			return ExitProgram, EffectNone
		}
	case AddProduct, UpdateProduct, RemoveProduct, SearchProduct:
		switch input {
		case "1":
			return from, EffectNone
		case "2":
			return MainMenu, EffectNone
		case "3":
			return ExitProgram, EffectNone
		}
	case DisplaySummary:
		switch input {
		case "1":
			return MainMenu, EffectNone
		case "2":
			return ExitProgram, EffectNone
		}
	case ExitProgram:
		return ExitProgram, EffectNone
	}
	return MainMenu, EffectInvalidOption
}
