package models

// DishCategory is stored as its member name so rows stay readable.
type DishCategory string

const (
	CategoryAppetizer  DishCategory = "Appetizer"
	CategoryMainCourse DishCategory = "MainCourse"
	CategoryDessert    DishCategory = "Dessert"
	CategoryBeverage   DishCategory = "Beverage"
)

func (c DishCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

type Dish struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name"`
	Description string       `gorm:"type:varchar(500)" json:"description"`
	Price       float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    DishCategory `gorm:"type:varchar(20);not null" json:"category"`
}
