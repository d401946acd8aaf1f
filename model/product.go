package model

// Product is a bilingual catalog row. English fields are canonical;
// Italian fields fall back to English when empty.
type Product struct {
	DTO
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	Name          string  `gorm:"not null" validate:"required" json:"name"`
	NameIt        string  `json:"nameIt"`
	Description   string  `gorm:"type:text" json:"description"`
	DescriptionIt string  `gorm:"type:text" json:"descriptionIt"`
	Brand         string  `gorm:"index" json:"brand"`
	Flavor        string  `gorm:"index" json:"flavor"`
	StrengthMg    float64 `json:"strengthMg"` // nicotine per pouch
	PackSize      int     `gorm:"default:1" json:"packSize"`
	Price         float64 `validate:"gte=0" json:"price"`
	Image         string  `json:"image"`
	Active        *bool   `gorm:"default:true;index" json:"active"`
}

type CreateProductInput struct {
	Name          string  `validate:"required" json:"name"`
	NameIt        string  `json:"nameIt"`
	Description   string  `json:"description"`
	DescriptionIt string  `json:"descriptionIt"`
	Brand         string  `json:"brand"`
	Flavor        string  `json:"flavor"`
	StrengthMg    float64 `validate:"gte=0" json:"strengthMg"`
	PackSize      int     `validate:"gte=1" json:"packSize"`
	Price         float64 `validate:"gte=0" json:"price"`
	Image         string  `json:"image"`
}

type UpdateProductInput struct {
	Name          *string  `json:"name,omitempty"`
	NameIt        *string  `json:"nameIt,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DescriptionIt *string  `json:"descriptionIt,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	Flavor        *string  `json:"flavor,omitempty"`
	StrengthMg    *float64 `json:"strengthMg,omitempty"`
	PackSize      *int     `json:"packSize,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

type FilterProduct struct {
	Pagination
	SearchKey  string   `query:"searchKey" json:"searchKey"`
	Brand      *string  `query:"brand" json:"brand"`
	Flavor     *string  `query:"flavor" json:"flavor"`
	StrengthMg *float64 `query:"strengthMg" json:"strengthMg"`
	Active     *bool    `query:"active" json:"active"`
}
