package site

type Site struct {
	ID   uint64 `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

func (Site) TableName() string {
	return "sites"
}
