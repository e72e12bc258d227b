// Package model holds the GORM persistence models of the account partitions.
package model

import "time"

// StudentModel mirrors the 'students' table.
type StudentModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Surname   string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Login     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_students_login"`
	Password  string `gorm:"type:varchar(255);not null"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
