package model

// Page is a CMS-driven marketing page. Blocks holds the ordered block
// list as raw JSON; the storefront renders it, this API only stores it.
type Page struct {
	DTO
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Title     string `gorm:"not null" validate:"required" json:"title"`
	TitleIt   string `json:"titleIt"`
	Blocks    string `gorm:"type:text" json:"blocks"`
	Published bool   `gorm:"default:false;index" json:"published"`
}

type CreatePageInput struct {
	Title   string `validate:"required" json:"title"`
	TitleIt string `json:"titleIt"`
	Blocks  string `json:"blocks"`
}

type UpdatePageInput struct {
	Title     *string `json:"title,omitempty"`
	TitleIt   *string `json:"titleIt,omitempty"`
	Blocks    *string `json:"blocks,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// Menu is a navigation menu keyed by its placement on the storefront.
type Menu struct {
	DTO
	Location string `gorm:"uniqueIndex;not null" validate:"required" json:"location"` // header, footer
	Items    string `gorm:"type:text" json:"items"`                                   // JSON array of {label, labelIt, href}
}

// SiteMeta is a key/value row for site-wide metadata (titles, SEO tags).
type SiteMeta struct {
	DTO
	Key   string `gorm:"uniqueIndex;not null" validate:"required" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
