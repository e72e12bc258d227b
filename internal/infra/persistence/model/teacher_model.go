package model

import "time"

// TeacherModel mirrors the 'teachers' table.
type TeacherModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Surname   string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Degree    string `gorm:"type:varchar(100)"`
	Position  string `gorm:"type:varchar(100)"`
	Login     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_teachers_login"`
	Password  string `gorm:"type:varchar(255);not null"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}
