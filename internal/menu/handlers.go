package menu

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func (m *Machine) mainMenu() (State, error) {
	m.con.Clear()
	m.con.Banner("INVENTORY MANAGEMENT SYSTEM")
	m.con.Menu(
		"[1] View Products",
		"[2] Add Product",
		"[3] Update Product",
		"[4] Remove Product",
		"[5] Search Product",
		"[6] View Summary",
		"[0] Exit",
	)
	choice, err := m.con.Choice("Select an option: ")
	if err != nil {
		return MainMenu, err
	}

	next, effect := Transition(MainMenu, choice)
	if effect == EffectInvalidOption {
		m.con.Println("\nInvalid input - Returning...")
		if err := m.con.Pause(); err != nil {
			return MainMenu, err
		}
	}
	return next, nil
}

// viewProducts lists the inventory newest first and lets the user re-sort
// it until they leave the list.
func (m *Machine) viewProducts() (State, error) {
	products := m.store.SortBy(defaultSort.field, defaultSort.ascending)

	for {
		m.con.Clear()
		m.con.ProductTable(products, "CURRENT INVENTORY")
		m.con.Menu("[1] Sort Options", "[2] Return to Main Menu", "[3] Exit Program")
		choice, err := m.con.Choice("Select an option: ")
		if err != nil {
			return ViewProducts, err
		}

		next, effect := Transition(ViewProducts, choice)
		switch effect {
		case EffectInvalidOption:
			return m.invalid()
		case EffectNone:
			return next, nil
		}

		m.con.Clear()
		m.con.Header("SORT OPTIONS")
		m.con.Menu(
			"[A] Sort by ID (Ascending)",
			"[B] Sort by ID (Descending)",
			"[1] Sort by Name (Ascending)",
			"[2] Sort by Name (Descending)",
			"[3] Sort by Price (Lowest to Highest)",
			"[4] Sort by Price (Highest to Lowest)",
			"[5] Sort by Creation Date (Newest First)",
			"[6] Sort by Creation Date (Oldest First)",
			"[7] Sort by Last Updated (Newest First)",
			"[8] Sort by Last Updated (Oldest First)",
			"[9] Default",
			"[0] Return to Main Menu",
			"[X] Exit Program",
		)
		choice, err = m.con.Choice("Select an option: ")
		if err != nil {
			return ViewProducts, err
		}
		if state, ok := sortNavigation[choice]; ok {
			return state, nil
		}
		opt, ok := sortOptions[choice]
		if !ok {
			return m.invalid()
		}
		products = m.store.SortBy(opt.field, opt.ascending)
	}
}

func (m *Machine) addProduct() (State, error) {
	m.con.Clear()
	m.con.Header("ADD PRODUCT")

	id, err := m.con.Choice("Enter Product ID (press Enter to return): ")
	if err != nil || id == "" {
		return MainMenu, err
	}
	name, err := m.con.Name("Enter Product Name (press Enter to return): ")
	if err != nil || name == "" {
		return MainMenu, err
	}
	quantity, ok, err := m.con.Quantity("Enter Quantity (press Enter to return): ")
	if err != nil || !ok {
		return MainMenu, err
	}
	price, ok, err := m.con.Price("Enter Price (press Enter to return): ")
	if err != nil || !ok {
		return MainMenu, err
	}

	confirmed, err := m.con.Confirm("Are you sure (y/n): ")
	if err != nil {
		return AddProduct, err
	}
	if !confirmed {
		m.con.Println("Product was not added.")
		return AddProduct, nil
	}

	m.con.Separator('-')
	product := types.NewProduct(id, name, quantity, price)
	if m.store.Add(product) {
		m.log.Info().Str("product_id", product.ID()).Msg("product added")
		m.con.Printf("Product '%s' added successfully!\n", product.Name())
	} else {
		m.con.Printf("Product with ID [%s] already exists!\n", product.ID())
	}
	m.con.Println()
	if err := m.con.Pause(); err != nil {
		return AddProduct, err
	}

	return m.again(AddProduct, "Add Another Product")
}

func (m *Machine) updateProduct() (State, error) {
	m.con.Clear()
	m.con.Header("UPDATE PRODUCT")

	id, err := m.con.Choice("Enter Product ID to update (press Enter to return): ")
	if err != nil {
		return UpdateProduct, err
	}
	if id == "" {
		m.con.Println("Returning to Main Menu...")
		return MainMenu, nil
	}

	product, ok := m.store.FindByID(id)
	if !ok {
		m.con.Println("Product not found!")
		if err := m.con.Pause(); err != nil {
			return UpdateProduct, err
		}
		return UpdateProduct, nil
	}

	m.con.ProductDetails(product)
	m.con.Println()
	m.con.Header("SELECT FIELD TO UPDATE")
	m.con.Menu(
		"[1] Update name",
		"[2] Update price",
		"[3] Update quantity",
		"[4] Increase quantity",
		"[5] Decrease quantity",
		"[6] Return to Main Menu",
		"[0] Exit Program",
	)
	choice, err := m.con.Choice("Select an option: ")
	if err != nil {
		return UpdateProduct, err
	}
	if state, ok := updateNavigation[choice]; ok {
		return state, nil
	}
	field, ok := updateFieldChoices[choice]
	if !ok {
		return m.invalid()
	}

	m.con.Separator('-')
	if err := m.applyUpdate(id, field); err != nil {
		return UpdateProduct, err
	}
	m.con.Println()
	if err := m.con.Pause(); err != nil {
		return UpdateProduct, err
	}

	return m.again(UpdateProduct, "Update Another Product")
}

// applyUpdate reads the new value for field, asks for confirmation, and
// applies the change through the store. An empty value skips the update.
func (m *Machine) applyUpdate(id string, field updateField) error {
	var mutate func(p *types.Product) bool

	switch field {
	case fieldName:
		name, err := m.con.Name("Enter new product name (press Enter to skip): ")
		if err != nil || name == "" {
			return err
		}
		mutate = func(p *types.Product) bool { return p.SetName(name) }
	case fieldPrice:
		price, ok, err := m.con.Price("Enter new product price (press Enter to skip): ")
		if err != nil || !ok {
			return err
		}
		mutate = func(p *types.Product) bool { return p.SetPrice(price) }
	default:
		label := map[updateField]string{
			fieldQuantity: "Enter new quantity (press Enter to skip): ",
			fieldIncrease: "Enter quantity to add to current stock (press Enter to skip): ",
			fieldDecrease: "Enter quantity to subtract from current stock (press Enter to skip): ",
		}[field]
		n, ok, err := m.con.Quantity(label)
		if err != nil || !ok {
			return err
		}
		mutate = func(p *types.Product) bool {
			switch field {
			case fieldIncrease:
				return p.IncreaseQuantity(n)
			case fieldDecrease:
				return p.DecreaseQuantity(n)
			default:
				return p.SetQuantity(n)
			}
		}
	}

	confirmed, err := m.con.Confirm("Are you sure (y/n): ")
	if err != nil {
		return err
	}
	if !confirmed {
		m.con.Println("No changes made.")
		return nil
	}

	found, applied := m.store.Update(id, mutate)
	switch {
	case !found:
		m.con.Printf("\nProduct [%s] no longer exists.\n", id)
	case !applied:
		m.con.Printf("\nProduct [%s] was not changed.\n", id)
	default:
		product, _ := m.store.FindByID(id)
		m.log.Info().Str("product_id", id).Msg("product updated")
		m.con.Printf("\nProduct [%s] updated: %s\n", id, product)
	}
	return nil
}

func (m *Machine) removeProduct() (State, error) {
	m.con.Clear()
	m.con.Header("REMOVE PRODUCT")

	id, err := m.con.Choice("Enter Product ID to remove (press Enter to return): ")
	if err != nil || id == "" {
		return MainMenu, err
	}

	product, ok := m.store.FindByID(id)
	if !ok {
		m.con.Printf("\nProduct ID [%s] not found!\n", id)
		m.con.Separator('-')
		if err := m.con.Pause(); err != nil {
			return RemoveProduct, err
		}
		return RemoveProduct, nil
	}

	m.con.Separator('-')
	prompt := fmt.Sprintf("Are you sure you want to remove [%s] '%s'? (y/n): ", product.ID(), product.Name())
	confirmed, err := m.con.Confirm(prompt)
	if err != nil {
		return RemoveProduct, err
	}
	if !confirmed {
		m.con.Println("Removal cancelled.")
		m.con.Separator('-')
		if err := m.con.Pause(); err != nil {
			return RemoveProduct, err
		}
		return RemoveProduct, nil
	}

	if !m.store.Remove(id) {
		m.con.Printf("\nProduct [%s] could not be removed.\n", id)
	} else {
		m.log.Info().Str("product_id", id).Msg("product removed")
		m.con.Println("\nProduct removed successfully!")
	}
	m.con.Separator('-')
	if err := m.con.Pause(); err != nil {
		return RemoveProduct, err
	}

	return m.again(RemoveProduct, "Remove Another Product")
}

func (m *Machine) searchProduct() (State, error) {
	m.con.Clear()
	m.con.Header("SEARCH PRODUCT")

	if m.store.TotalProducts() == 0 {
		m.con.Println("The inventory is empty.")
		m.con.Println("Returning...")
		m.con.Separator('-')
		if err := m.con.Pause(); err != nil {
			return MainMenu, err
		}
		return MainMenu, nil
	}

	m.con.Menu("[1] Search by ID", "[2] Search by Name", "[3] Return to Main Menu", "[4] Exit Program")
	choice, err := m.con.Choice("Select an option: ")
	if err != nil {
		return SearchProduct, err
	}
	if state, ok := searchNavigation[choice]; ok {
		return state, nil
	}
	mode, ok := searchModeChoices[choice]
	if !ok {
		return m.invalid()
	}

	m.con.Separator('-')
	var results []*types.Product
	switch mode {
	case searchByID:
		fragment, err := m.con.Choice("Enter Product ID (press Enter to return): ")
		if err != nil || fragment == "" {
			return SearchProduct, err
		}
		results = m.store.SearchByID(fragment)
	case searchByName:
		fragment, err := m.con.Choice("Enter keyword (press Enter to return): ")
		if err != nil || fragment == "" {
			return SearchProduct, err
		}
		results = m.store.SearchByName(fragment)
	}

	if len(results) == 0 {
		m.con.Println("\nNo products found")
		m.con.Separator('-')
	} else {
		m.con.ProductTable(results, "RESULTS")
	}
	if err := m.con.Pause(); err != nil {
		return SearchProduct, err
	}

	return m.again(SearchProduct, "Search Again")
}

func (m *Machine) displaySummary() (State, error) {
	m.con.Clear()
	m.con.Header("INVENTORY SUMMARY")
	m.con.Printf("Total Products: %s\n", humanize.Comma(int64(m.store.TotalProducts())))
	m.con.Printf("Total Stock Quantity: %s\n", humanize.Comma(int64(m.store.TotalStockQuantity())))
	m.con.Printf("Total Inventory Value: $%s\n", types.FormatPrice(m.store.TotalInventoryValue()))
	m.con.Separator('-')
	m.con.Menu("[1] Return to Main Menu", "[2] Exit Program")

	choice, err := m.con.Choice("Select an option: ")
	if err != nil {
		return DisplaySummary, err
	}
	return m.follow(DisplaySummary, choice)
}
