package entities

type MeasurementUnit string

const (
	UnitPiece      MeasurementUnit = "Piece"
	UnitGram       MeasurementUnit = "Gram"
	UnitKilogram   MeasurementUnit = "Kilogram"
	UnitMilliliter MeasurementUnit = "Milliliter"
	UnitLiter      MeasurementUnit = "Liter"
	UnitTablespoon MeasurementUnit = "Tablespoon"
	UnitTeaspoon   MeasurementUnit = "Teaspoon"
	UnitPackage    MeasurementUnit = "Package"
	UnitCup        MeasurementUnit = "Cup"
)

type DishType string

const (
	DishFirstCourse DishType = "FirstCourse"
	DishMainCourse  DishType = "MainCourse"
	DishSalad       DishType = "Salad"
	DishDessert     DishType = "Dessert"
	DishBeverage    DishType = "Beverage"
	DishAppetizer   DishType = "Appetizer"
)

type RecipeStatus string

const (
	StatusDraft     RecipeStatus = "Draft"
	StatusPublished RecipeStatus = "Published"
	StatusArchived  RecipeStatus = "Archived"
)
