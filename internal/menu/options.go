package menu

import "github.com/mesh-intelligence/stockroom/pkg/types"

// sortOption is one entry of the sort sub-menu.
type sortOption struct {
	field     types.SortField
	ascending bool
}

// defaultSort is the order the product list opens with: newest first.
var defaultSort = sortOption{types.SortByCreatedAt, false}

// sortOptions maps sort sub-menu tokens to their ordering.
var sortOptions = map[string]sortOption{
	"a": {types.SortByID, true},
	"b": {types.SortByID, false},
	"1": {types.SortByName, true},
	"2": {types.SortByName, false},
	"3": {types.SortByPrice, true},
	"4": {types.SortByPrice, false},
	"5": {types.SortByCreatedAt, false},
	"6": {types.SortByCreatedAt, true},
	"7": {types.SortByUpdatedAt, false},
	"8": {types.SortByUpdatedAt, true},
	"9": defaultSort,
}

// sortNavigation maps sort sub-menu tokens that leave the product list.
var sortNavigation = map[string]State{
	"0": MainMenu,
	"x": ExitProgram,
}

// updateField is a product field the update sub-menu can change.
type updateField int

const (
	fieldName updateField = iota + 1
	fieldPrice
	fieldQuantity
	fieldIncrease
	fieldDecrease
)

var updateFieldChoices = map[string]updateField{
	"1": fieldName,
	"2": fieldPrice,
	"3": fieldQuantity,
	"4": fieldIncrease,
	"5": fieldDecrease,
}

var updateNavigation = map[string]State{
	"6": MainMenu,
	"0": ExitProgram,
}

// searchMode selects which product attribute a fragment is matched against.
type searchMode int

const (
	searchByID searchMode = iota + 1
	searchByName
)

var searchModeChoices = map[string]searchMode{
	"1": searchByID,
	"2": searchByName,
}

var searchNavigation = map[string]State{
	"3": MainMenu,
	"4": ExitProgram,
}
