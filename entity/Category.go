package entity

// Category ของเมนูมีแค่สองค่า: เครื่องดื่ม กับ อาหาร
type Category string

const (
	CategoryDrinks Category = "drinks"
	CategoryFood   Category = "food"
)

func (c Category) Valid() bool {
	return c == CategoryDrinks || c == CategoryFood
}
