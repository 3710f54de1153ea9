package model

// Vehicle represents the database model for user vehicles
type Vehicle struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	UserID        uint64 `gorm:"not null;index"`
	VehicleNumber string `gorm:"type:varchar(20);not null"`
	VehicleMake   string `gorm:"type:varchar(50)"`
	VehicleModel  string `gorm:"type:varchar(50)"`
}

// TableName specifies the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}
