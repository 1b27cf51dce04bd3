package ds

import "time"

// Licenses table. Client holds the client name as free text, there is no
// foreign key to clients.
type License struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Client    string    `gorm:"type:varchar(100);index" json:"client"`
	Seed      string    `gorm:"type:text" json:"seed"`
	License   string    `gorm:"type:text" json:"license"`
	Value     *float64  `gorm:"type:decimal(12,2)" json:"value"`
	Image     *string   `gorm:"type:varchar(255)" json:"image"`  // Nullable, set only after a successful upload
	Payment   *string   `gorm:"type:varchar(30)" json:"payment"` // Nullable until POST /payment
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Models lists every table managed by the auto-migration.
func Models() []any {
	return []any{&User{}, &Client{}, &License{}}
}
