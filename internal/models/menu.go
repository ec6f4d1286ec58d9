package models

import "io"

// Категории меню, которые предлагает форма блюда.
const (
	CategorySnacks     = "Snacks"
	CategoryBreakfast  = "Breakfast"
	CategoryLunch      = "Lunch"
	CategoryDrinks     = "Drinks"
	CategoryStationery = "Stationery"
)

type MenuSubCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

type MenuItem struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	Stock       int              `json:"stock"`
	SubCategory *MenuSubCategory `json:"subCategory,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
}

// MenuItemInput поля формы блюда. Для закусок подкатегория обязательна.
type MenuItemInput struct {
	Name        string   `validate:"required"`
	Price       *float64 `validate:"required,gte=0"`
	Category    string   `validate:"required,oneof=Snacks Breakfast Lunch Drinks Stationery"`
	Stock       *int     `validate:"required,gte=0"`
	SubCategory string   `validate:"required_if=Category Snacks"`
}

// Upload файл изображения, пересылаемый бэкенду.
type Upload struct {
	Filename string
	Content  io.Reader
}

type Advertisement struct {
	ID       string `json:"_id"`
	ImageURL string `json:"imageUrl"`
	IsActive bool   `json:"isActive"`
}

// ServiceHours часы завтрака и обеда в формате HH:MM.
type ServiceHours struct {
	BreakfastStart string `json:"breakfastStart" validate:"required,datetime=15:04"`
	BreakfastEnd   string `json:"breakfastEnd" validate:"required,datetime=15:04"`
	LunchStart     string `json:"lunchStart" validate:"required,datetime=15:04"`
	LunchEnd       string `json:"lunchEnd" validate:"required,datetime=15:04"`
}

// DefaultServiceHours часы, к которым сбрасывает администратор.
var DefaultServiceHours = ServiceHours{
	BreakfastStart: "08:00",
	BreakfastEnd:   "11:00",
	LunchStart:     "12:00",
	LunchEnd:       "15:00",
}
