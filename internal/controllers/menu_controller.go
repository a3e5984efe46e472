package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/services"
)

// MenuController handles HTTP requests for menus, categories, menu
// items and item options
type MenuController interface {
	GetAllMenus(c *gin.Context)
	GetMenuByID(c *gin.Context)
	CreateMenu(c *gin.Context)
	UpdateMenu(c *gin.Context)
	DeleteMenu(c *gin.Context)

	GetAllCategories(c *gin.Context)
	GetCategoryByID(c *gin.Context)
	CreateCategory(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)

	GetAllMenuItems(c *gin.Context)
	GetMenuItemsByMenu(c *gin.Context)
	GetMenuItemByID(c *gin.Context)
	CreateMenuItem(c *gin.Context)
	UpdateMenuItem(c *gin.Context)
	DeleteMenuItem(c *gin.Context)

	GetAllItemOptions(c *gin.Context)
	CreateItemOption(c *gin.Context)
	UpdateItemOption(c *gin.Context)
	DeleteItemOption(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *menuController {
	return &menuController{service: service}
}

// GetAllMenus godoc
// @Summary List menus
// @Description Get all menus
// @Tags menus
// @Produce json
// @Success 200 {array} models.Menu
// @Failure 500 {object} models.APIError
// @Router /menus [get]
func (c *menuController) GetAllMenus(ctx *gin.Context) {
	menus, err := c.service.ListMenus()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, menus)
}

// GetMenuByID godoc
// @Summary Get menu by ID
// @Tags menus
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Menu
// @Failure 404 {object} models.APIError
// @Router /menus/{id} [get]
func (c *menuController) GetMenuByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	menu, err := c.service.GetMenu(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, menu)
}

// CreateMenu godoc
// @Summary Create a menu
// @Tags menus
// @Accept json
// @Produce json
// @Param menu body models.Menu true "Menu object"
// @Success 201 {object} models.Menu
// @Failure 400 {object} models.APIError
// @Router /menus [post]
func (c *menuController) CreateMenu(ctx *gin.Context) {
	var menu models.Menu
	if err := ctx.ShouldBindJSON(&menu); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	created, err := c.service.CreateMenu(menu)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateMenu godoc
// @Summary Update a menu
// @Tags menus
// @Accept json
// @Produce json
// @Param id path int true "Menu ID"
// @Param menu body models.Menu true "Menu object"
// @Success 200 {object} models.Menu
// @Failure 404 {object} models.APIError
// @Router /menus/{id} [put]
func (c *menuController) UpdateMenu(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var menu models.Menu
	if err := ctx.ShouldBindJSON(&menu); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	menu.ID = id
	updated, err := c.service.UpdateMenu(menu)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteMenu godoc
// @Summary Delete a menu
// @Description Delete a menu. Fails with 409 while categories still reference it.
// @Tags menus
// @Produce json
// @Param id path int true "Menu ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /menus/{id} [delete]
func (c *menuController) DeleteMenu(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteMenu(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllCategories godoc
// @Summary List categories
// @Description Get all categories, optionally filtered by menu
// @Tags categories
// @Produce json
// @Param menu_id query int false "Filter by menu ID"
// @Success 200 {array} models.Category
// @Failure 500 {object} models.APIError
// @Router /categories [get]
func (c *menuController) GetAllCategories(ctx *gin.Context) {
	menuID, ok := queryID(ctx, "menu_id")
	if !ok {
		return
	}
	categories, err := c.service.ListCategories(menuID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategoryByID godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.APIError
// @Router /categories/{id} [get]
func (c *menuController) GetCategoryByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	category, err := c.service.GetCategory(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.Category true "Category object"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.APIError
// @Router /categories [post]
func (c *menuController) CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	created, err := c.service.CreateCategory(category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.Category true "Category object"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.APIError
// @Router /categories/{id} [put]
func (c *menuController) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	category.ID = id
	updated, err := c.service.UpdateCategory(category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category. Fails with 409 while menu items still reference it.
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /categories/{id} [delete]
func (c *menuController) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllMenuItems godoc
// @Summary List menu items
// @Description Get all menu items, optionally filtered by category
// @Tags menu-items
// @Produce json
// @Param category_id query int false "Filter by category ID"
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /menu-items [get]
func (c *menuController) GetAllMenuItems(ctx *gin.Context) {
	categoryID, ok := queryID(ctx, "category_id")
	if !ok {
		return
	}
	items, err := c.service.ListMenuItems(categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuItemsByMenu godoc
// @Summary List menu items for a menu
// @Description Get all items belonging to any category of the menu
// @Tags menu-items
// @Produce json
// @Param menu_id path int true "Menu ID"
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /menu-items/by-menu/{menu_id} [get]
func (c *menuController) GetMenuItemsByMenu(ctx *gin.Context) {
	menuID, ok := pathID(ctx, "menu_id")
	if !ok {
		return
	}
	items, err := c.service.ListMenuItemsByMenu(menuID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuItemByID godoc
// @Summary Get menu item by ID
// @Tags menu-items
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.APIError
// @Router /menu-items/{id} [get]
func (c *menuController) GetMenuItemByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.service.GetMenuItem(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Tags menu-items
// @Accept json
// @Produce json
// @Param item body models.MenuItem true "Menu item object"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Router /menu-items [post]
func (c *menuController) CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	created, err := c.service.CreateMenuItem(item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Tags menu-items
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body models.MenuItem true "Menu item object"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.APIError
// @Router /menu-items/{id} [put]
func (c *menuController) UpdateMenuItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	item.ID = id
	updated, err := c.service.UpdateMenuItem(item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Delete a menu item together with its options
// @Tags menu-items
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /menu-items/{id} [delete]
func (c *menuController) DeleteMenuItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteMenuItem(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllItemOptions godoc
// @Summary List item options
// @Description Get all item options, optionally filtered by menu item
// @Tags item-options
// @Produce json
// @Param menu_item_id query int false "Filter by menu item ID"
// @Success 200 {array} models.ItemOption
// @Failure 500 {object} models.APIError
// @Router /item-options [get]
func (c *menuController) GetAllItemOptions(ctx *gin.Context) {
	menuItemID, ok := queryID(ctx, "menu_item_id")
	if !ok {
		return
	}
	options, err := c.service.ListItemOptions(menuItemID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}

// CreateItemOption godoc
// @Summary Create an item option
// @Tags item-options
// @Accept json
// @Produce json
// @Param option body models.ItemOption true "Item option object"
// @Success 201 {object} models.ItemOption
// @Failure 400 {object} models.APIError
// @Router /item-options [post]
func (c *menuController) CreateItemOption(ctx *gin.Context) {
	var option models.ItemOption
	if err := ctx.ShouldBindJSON(&option); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	created, err := c.service.CreateItemOption(option)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateItemOption godoc
// @Summary Update an item option
// @Tags item-options
// @Accept json
// @Produce json
// @Param id path int true "Item option ID"
// @Param option body models.ItemOption true "Item option object"
// @Success 200 {object} models.ItemOption
// @Failure 404 {object} models.APIError
// @Router /item-options/{id} [put]
func (c *menuController) UpdateItemOption(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var option models.ItemOption
	if err := ctx.ShouldBindJSON(&option); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	option.ID = id
	updated, err := c.service.UpdateItemOption(option)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteItemOption godoc
// @Summary Delete an item option
// @Tags item-options
// @Produce json
// @Param id path int true "Item option ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /item-options/{id} [delete]
func (c *menuController) DeleteItemOption(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteItemOption(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
