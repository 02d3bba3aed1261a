// file: internals/features/compliance/model/nep_category_model.go
package model

// NEPCategoryModel: fixed credit-classification vocabulary, seeded once and
// institution-independent. Max = 0 means no upper bound for the category.
type NEPCategoryModel struct {
	NEPCategoryCode        string `json:"nep_category_code" gorm:"type:varchar(10);primaryKey;column:nep_category_code"`
	NEPCategoryName        string `json:"nep_category_name" gorm:"type:text;not null;column:nep_category_name"`
	NEPCategoryMinCredits  int    `json:"nep_category_min_credits" gorm:"not null;column:nep_category_min_credits"`
	NEPCategoryMaxCredits  int    `json:"nep_category_max_credits" gorm:"not null;default:0;column:nep_category_max_credits"`
	NEPCategoryIsMandatory bool   `json:"nep_category_is_mandatory" gorm:"not null;default:true;column:nep_category_is_mandatory"`
}

func (NEPCategoryModel) TableName() string { return "nep_categories" }
