package api

import (
	"fmt"
	"net/url"
	"strconv"

	"pubquiz-admin/internal/models"
)

// ListMenus retrieves all menus
func (c *Client) ListMenus() ([]models.Menu, error) {
	var menus []models.Menu
	if err := c.get("/menus", nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// GetMenu retrieves a single menu by ID
func (c *Client) GetMenu(id int64) (models.Menu, error) {
	var menu models.Menu
	if err := c.get(fmt.Sprintf("/menus/%d", id), nil, &menu); err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

// CreateMenu creates a menu; the server assigns the ID
func (c *Client) CreateMenu(menu models.Menu) (models.Menu, error) {
	var created models.Menu
	if err := c.post("/menus", menu, &created); err != nil {
		return models.Menu{}, err
	}
	return created, nil
}

// UpdateMenu replaces the menu identified by menu.ID
func (c *Client) UpdateMenu(menu models.Menu) (models.Menu, error) {
	var updated models.Menu
	if err := c.put(fmt.Sprintf("/menus/%d", menu.ID), menu, &updated); err != nil {
		return models.Menu{}, err
	}
	return updated, nil
}

// DeleteMenu deletes a menu by ID
func (c *Client) DeleteMenu(id int64) error {
	return c.delete(fmt.Sprintf("/menus/%d", id))
}

// ListCategories retrieves categories, optionally filtered by menu.
// A zero menuID returns all categories.
func (c *Client) ListCategories(menuID int64) ([]models.Category, error) {
	query := url.Values{}
	if menuID != 0 {
		query.Set("menu_id", strconv.FormatInt(menuID, 10))
	}
	var categories []models.Category
	if err := c.get("/categories", query, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory retrieves a single category by ID
func (c *Client) GetCategory(id int64) (models.Category, error) {
	var category models.Category
	if err := c.get(fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// CreateCategory creates a category; the server assigns the ID
func (c *Client) CreateCategory(category models.Category) (models.Category, error) {
	var created models.Category
	if err := c.post("/categories", category, &created); err != nil {
		return models.Category{}, err
	}
	return created, nil
}

// UpdateCategory replaces the category identified by category.ID
func (c *Client) UpdateCategory(category models.Category) (models.Category, error) {
	var updated models.Category
	if err := c.put(fmt.Sprintf("/categories/%d", category.ID), category, &updated); err != nil {
		return models.Category{}, err
	}
	return updated, nil
}

// DeleteCategory deletes a category by ID
func (c *Client) DeleteCategory(id int64) error {
	return c.delete(fmt.Sprintf("/categories/%d", id))
}

// ListMenuItems retrieves menu items, optionally filtered by category.
// A zero categoryID returns all items.
func (c *Client) ListMenuItems(categoryID int64) ([]models.MenuItem, error) {
	query := url.Values{}
	if categoryID != 0 {
		query.Set("category_id", strconv.FormatInt(categoryID, 10))
	}
	var items []models.MenuItem
	if err := c.get("/menu-items", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListMenuItemsByMenu retrieves all items of a menu, joined through its
// categories on the server
func (c *Client) ListMenuItemsByMenu(menuID int64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.get(fmt.Sprintf("/menu-items/by-menu/%d", menuID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem retrieves a single menu item by ID
func (c *Client) GetMenuItem(id int64) (models.MenuItem, error) {
	var item models.MenuItem
	if err := c.get(fmt.Sprintf("/menu-items/%d", id), nil, &item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// CreateMenuItem creates a menu item; the server assigns the ID
func (c *Client) CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	var created models.MenuItem
	if err := c.post("/menu-items", item, &created); err != nil {
		return models.MenuItem{}, err
	}
	return created, nil
}

// UpdateMenuItem replaces the menu item identified by item.ID
func (c *Client) UpdateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	var updated models.MenuItem
	if err := c.put(fmt.Sprintf("/menu-items/%d", item.ID), item, &updated); err != nil {
		return models.MenuItem{}, err
	}
	return updated, nil
}

// DeleteMenuItem deletes a menu item by ID. The server cascades the
// delete to the item's options.
func (c *Client) DeleteMenuItem(id int64) error {
	return c.delete(fmt.Sprintf("/menu-items/%d", id))
}

// ListItemOptions retrieves item options, optionally filtered by menu
// item. A zero menuItemID returns all options.
func (c *Client) ListItemOptions(menuItemID int64) ([]models.ItemOption, error) {
	query := url.Values{}
	if menuItemID != 0 {
		query.Set("menu_item_id", strconv.FormatInt(menuItemID, 10))
	}
	var options []models.ItemOption
	if err := c.get("/item-options", query, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// CreateItemOption creates an item option; the server assigns the ID
func (c *Client) CreateItemOption(option models.ItemOption) (models.ItemOption, error) {
	var created models.ItemOption
	if err := c.post("/item-options", option, &created); err != nil {
		return models.ItemOption{}, err
	}
	return created, nil
}

// UpdateItemOption replaces the item option identified by option.ID
func (c *Client) UpdateItemOption(option models.ItemOption) (models.ItemOption, error) {
	var updated models.ItemOption
	if err := c.put(fmt.Sprintf("/item-options/%d", option.ID), option, &updated); err != nil {
		return models.ItemOption{}, err
	}
	return updated, nil
}

// DeleteItemOption deletes an item option by ID
func (c *Client) DeleteItemOption(id int64) error {
	return c.delete(fmt.Sprintf("/item-options/%d", id))
}
