package models

type PlusClothing struct {
	ID            int    `gorm:"primaryKey;column:id"`
	ClothingName  string `gorm:"column:clothing_name;type:varchar(50)"`
	ClothingParts string `gorm:"column:clothing_parts;type:varchar(100)"`
}

func (PlusClothing) TableName() string {
	return "catalog_clothing"
}

func (c PlusClothing) Classname() string { return c.ClothingName }
func (c PlusClothing) Sets() string      { return c.ClothingParts }
