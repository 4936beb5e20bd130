package models

// DocumentType is a catalog entry for the kinds of documents citizens can request
type DocumentType struct {
	ID          uint   `gorm:"column:doctype_id;primaryKey;autoIncrement" json:"doctype_id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName overrides the table name for GORM
func (DocumentType) TableName() string {
	return "document_types"
}
