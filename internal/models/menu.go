package models

// Menu is a named collection of categories shown to a room
type Menu struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// Category groups menu items inside a menu. DisplayOrder is used for
// sorting only and is not unique.
type Category struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	MenuID       int64  `json:"menu_id" gorm:"index;not null" validate:"required"`
	Name         string `json:"name" gorm:"not null" validate:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// MenuItem is a single orderable item inside a category
type MenuItem struct {
	ID           int64   `json:"id" gorm:"primaryKey"`
	CategoryID   int64   `json:"category_id" gorm:"index;not null" validate:"required"`
	Name         string  `json:"name" gorm:"not null" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	ImagePath    string  `json:"image_path"`
	IsAvailable  bool    `json:"is_available"`
	IsPopular    bool    `json:"is_popular"`
	DisplayOrder int     `json:"display_order"`
}

// ItemOption is an add-on for a menu item. PriceAddition may be zero or
// negative (discount options).
type ItemOption struct {
	ID            int64   `json:"id" gorm:"primaryKey"`
	MenuItemID    int64   `json:"menu_item_id" gorm:"index;not null" validate:"required"`
	Name          string  `json:"name" gorm:"not null" validate:"required"`
	PriceAddition float64 `json:"price_addition"`
}
