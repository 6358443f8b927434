package models

// ArcturusClothing is a row of Arcturus' catalog_clothing. SetIDs is a comma
// separated list of figure set ids unlocked by the clothing furni.
type ArcturusClothing struct {
	ID     int    `gorm:"primaryKey;column:id"`
	Name   string `gorm:"column:name;type:varchar(75)"`
	SetIDs string `gorm:"column:setid;type:varchar(75)"`
}

func (ArcturusClothing) TableName() string {
	return "catalog_clothing"
}

func (c ArcturusClothing) Classname() string { return c.Name }
func (c ArcturusClothing) Sets() string      { return c.SetIDs }
