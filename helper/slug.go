package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSlug slugifies name and appends a counter until no row
// of the given model claims it.
func GenerateUniqueSlug(tx *gorm.DB, tableModel any, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(tableModel).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
