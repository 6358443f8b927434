package models

// CometClothing mirrors the Arcturus layout; Comet only widens the name column.
type CometClothing struct {
	ID     int    `gorm:"primaryKey;column:id"`
	Name   string `gorm:"column:name;type:varchar(255)"`
	SetIDs string `gorm:"column:setid;type:varchar(255)"`
}

func (CometClothing) TableName() string {
	return "catalog_clothing"
}

func (c CometClothing) Classname() string { return c.Name }
func (c CometClothing) Sets() string      { return c.SetIDs }
