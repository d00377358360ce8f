package model

const DefaultCurrency = "INR"

type Item struct {
	ID            uint64   `gorm:"primaryKey;autoIncrement"`
	Title         string   `gorm:"size:150;not null"`
	Description   string   `gorm:"type:text;not null"`
	Price         float64  `gorm:"not null"`
	Currency      string   `gorm:"size:10;not null;default:INR"`
	ImageFilename *string  `gorm:"size:150"`
	SellerID      uint64   `gorm:"column:seller_id;index;not null"`
	Location      string   `gorm:"size:255;not null"`
	Latitude      *float64
	Longitude     *float64
	IsSold        bool `gorm:"column:is_sold;not null;default:false"`
}

func (Item) TableName() string {
	return "items"
}
