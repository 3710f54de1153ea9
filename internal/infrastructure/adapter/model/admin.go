package model

// Admin represents the database model for back-office admins
type Admin struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100)"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Password string `gorm:"type:varchar(100);not null"` // bcrypt hash
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
