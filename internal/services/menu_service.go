package services

import (
	"fmt"

	"gorm.io/gorm"

	"pubquiz-admin/internal/idgen"
	"pubquiz-admin/internal/models"
)

// MenuService provides access to menus, categories, menu items and
// item options, enforcing the cross-entity integrity rules: foreign
// keys must reference existing parents, menu and category deletes are
// guarded, menu item deletes cascade to their options.
type MenuService interface {
	ListMenus() ([]models.Menu, error)
	GetMenu(id int64) (models.Menu, error)
	CreateMenu(menu models.Menu) (models.Menu, error)
	UpdateMenu(menu models.Menu) (models.Menu, error)
	// DeleteMenu refuses with a ConflictError while categories reference the menu
	DeleteMenu(id int64) error

	// ListCategories returns all categories, or the categories of a menu when menuID is nonzero
	ListCategories(menuID int64) ([]models.Category, error)
	GetCategory(id int64) (models.Category, error)
	CreateCategory(category models.Category) (models.Category, error)
	UpdateCategory(category models.Category) (models.Category, error)
	// DeleteCategory refuses with a ConflictError while menu items reference the category
	DeleteCategory(id int64) error

	// ListMenuItems returns all items, or the items of a category when categoryID is nonzero
	ListMenuItems(categoryID int64) ([]models.MenuItem, error)
	// ListMenuItemsByMenu joins items through the menu's categories
	ListMenuItemsByMenu(menuID int64) ([]models.MenuItem, error)
	GetMenuItem(id int64) (models.MenuItem, error)
	CreateMenuItem(item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(item models.MenuItem) (models.MenuItem, error)
	// DeleteMenuItem cascades to the item's options in one transaction
	DeleteMenuItem(id int64) error

	ListItemOptions(menuItemID int64) ([]models.ItemOption, error)
	GetItemOption(id int64) (models.ItemOption, error)
	CreateItemOption(option models.ItemOption) (models.ItemOption, error)
	UpdateItemOption(option models.ItemOption) (models.ItemOption, error)
	DeleteItemOption(id int64) error
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) ListMenus() ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *menuService) GetMenu(id int64) (models.Menu, error) {
	var menu models.Menu
	if err := s.db.First(&menu, id).Error; err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (s *menuService) CreateMenu(menu models.Menu) (models.Menu, error) {
	if menu.ID == 0 {
		menu.ID = idgen.NextID()
	}
	if err := s.db.Create(&menu).Error; err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (s *menuService) UpdateMenu(menu models.Menu) (models.Menu, error) {
	if err := s.db.First(&models.Menu{}, menu.ID).Error; err != nil {
		return models.Menu{}, err
	}
	if err := s.db.Save(&menu).Error; err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (s *menuService) DeleteMenu(id int64) error {
	if err := s.db.First(&models.Menu{}, id).Error; err != nil {
		return err
	}
	var dependents int64
	if err := s.db.Model(&models.Category{}).Where("menu_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return &models.ConflictError{
			Count:   int(dependents),
			Message: fmt.Sprintf("cannot delete menu: %d categories reference it", dependents),
		}
	}
	return s.db.Delete(&models.Menu{}, id).Error
}

func (s *menuService) ListCategories(menuID int64) ([]models.Category, error) {
	var categories []models.Category
	query := s.db.Order("display_order")
	if menuID != 0 {
		query = query.Where("menu_id = ?", menuID)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *menuService) GetCategory(id int64) (models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *menuService) CreateCategory(category models.Category) (models.Category, error) {
	if err := s.db.First(&models.Menu{}, category.MenuID).Error; err != nil {
		return models.Category{}, &models.ValidationError{Field: "menu_id", Message: "menu not found"}
	}
	if category.ID == 0 {
		category.ID = idgen.NextID()
	}
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *menuService) UpdateCategory(category models.Category) (models.Category, error) {
	if err := s.db.First(&models.Category{}, category.ID).Error; err != nil {
		return models.Category{}, err
	}
	if err := s.db.First(&models.Menu{}, category.MenuID).Error; err != nil {
		return models.Category{}, &models.ValidationError{Field: "menu_id", Message: "menu not found"}
	}
	if err := s.db.Save(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *menuService) DeleteCategory(id int64) error {
	if err := s.db.First(&models.Category{}, id).Error; err != nil {
		return err
	}
	var dependents int64
	if err := s.db.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return &models.ConflictError{
			Count:   int(dependents),
			Message: fmt.Sprintf("cannot delete category: %d menu items reference it", dependents),
		}
	}
	return s.db.Delete(&models.Category{}, id).Error
}

func (s *menuService) ListMenuItems(categoryID int64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := s.db.Order("display_order")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) ListMenuItemsByMenu(menuID int64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Where("category_id IN (?)", s.db.Model(&models.Category{}).Select("id").Where("menu_id = ?", menuID)).
		Order("display_order").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) GetMenuItem(id int64) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if err := s.db.First(&models.Category{}, item.CategoryID).Error; err != nil {
		return models.MenuItem{}, &models.ValidationError{Field: "category_id", Message: "category not found"}
	}
	if item.ID == 0 {
		item.ID = idgen.NextID()
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if err := s.db.First(&models.MenuItem{}, item.ID).Error; err != nil {
		return models.MenuItem{}, err
	}
	if err := s.db.First(&models.Category{}, item.CategoryID).Error; err != nil {
		return models.MenuItem{}, &models.ValidationError{Field: "category_id", Message: "category not found"}
	}
	if err := s.db.Save(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) DeleteMenuItem(id int64) error {
	if err := s.db.First(&models.MenuItem{}, id).Error; err != nil {
		return err
	}
	// Options go with the item in the same transaction
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.ItemOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuItem{}, id).Error
	})
}

func (s *menuService) ListItemOptions(menuItemID int64) ([]models.ItemOption, error) {
	var options []models.ItemOption
	query := s.db
	if menuItemID != 0 {
		query = query.Where("menu_item_id = ?", menuItemID)
	}
	if err := query.Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (s *menuService) GetItemOption(id int64) (models.ItemOption, error) {
	var option models.ItemOption
	if err := s.db.First(&option, id).Error; err != nil {
		return models.ItemOption{}, err
	}
	return option, nil
}

func (s *menuService) CreateItemOption(option models.ItemOption) (models.ItemOption, error) {
	if err := s.db.First(&models.MenuItem{}, option.MenuItemID).Error; err != nil {
		return models.ItemOption{}, &models.ValidationError{Field: "menu_item_id", Message: "menu item not found"}
	}
	if option.ID == 0 {
		option.ID = idgen.NextID()
	}
	if err := s.db.Create(&option).Error; err != nil {
		return models.ItemOption{}, err
	}
	return option, nil
}

func (s *menuService) UpdateItemOption(option models.ItemOption) (models.ItemOption, error) {
	if err := s.db.First(&models.ItemOption{}, option.ID).Error; err != nil {
		return models.ItemOption{}, err
	}
	if err := s.db.Save(&option).Error; err != nil {
		return models.ItemOption{}, err
	}
	return option, nil
}

func (s *menuService) DeleteItemOption(id int64) error {
	if err := s.db.First(&models.ItemOption{}, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.ItemOption{}, id).Error
}
