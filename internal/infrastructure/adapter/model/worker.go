package model

// Worker represents the database model for station workers
type Worker struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	StationID   uint64 `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(100)"`
	PhoneNumber string `gorm:"type:varchar(10);not null;uniqueIndex"`
	Passcode    string `gorm:"type:varchar(100);not null"`
}

// TableName specifies the table name for Worker
func (Worker) TableName() string {
	return "workers"
}
