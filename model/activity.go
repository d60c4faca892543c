package model

type Activity struct {
	DTO
	Title        string   `gorm:"not null" json:"title"`
	Slug         string   `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string   `gorm:"not null" json:"description"`
	Image        string   `gorm:"not null" json:"image"`
	Date         string   `gorm:"not null" json:"date"`
	Time         string   `gorm:"not null" json:"time"`
	Participants string   `gorm:"not null" json:"participants"`
	Category     string   `gorm:"size:10;not null;index" json:"category"`
	Format       string   `gorm:"size:10;not null" json:"format"`
	Package      string   `gorm:"size:10;not null;default:standard" json:"package"`
	Price        float64  `gorm:"not null;default:0" json:"price"`
	PriceUnit    string   `json:"priceUnit"`
	Location     string   `json:"location,omitempty"`
	Instructor   string   `json:"instructor,omitempty"`
	Features     []string `gorm:"serializer:json;type:jsonb" json:"features"`
	IsActive     bool     `gorm:"not null" json:"isActive"`
}

type Activities []Activity

type ActivityInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Image        string   `json:"image" validate:"required"`
	Date         string   `json:"date" validate:"required"`
	Time         string   `json:"time" validate:"required"`
	Participants string   `json:"participants" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof=games class music sports other"`
	Format       string   `json:"format" validate:"required,oneof=online offline"`
	Package      string   `json:"package" validate:"omitempty,oneof=vip standard"`
	Price        float64  `json:"price" validate:"gte=0"`
	PriceUnit    string   `json:"priceUnit"`
	Location     string   `json:"location"`
	Instructor   string   `json:"instructor"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"isActive" copier:"-"`
}

type FilterActivity struct {
	Category string `query:"category"`
	Format   string `query:"format"`
	Package  string `query:"package"`
	Search   string `query:"search"`
}
