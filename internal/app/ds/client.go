package ds

// Clients table
type Client struct {
	ID    uint     `gorm:"primaryKey" json:"id"`
	Name  string   `gorm:"type:varchar(100)" json:"name"`
	Value *float64 `gorm:"type:decimal(12,2)" json:"value"` // Nullable, omitted on create stores null
	Phone string   `gorm:"type:varchar(30)" json:"phone"`
}
