package model

import "time"

// AdminModel mirrors the 'admins' table. Admins have no soft-delete column.
type AdminModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Login     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_admins_login"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// All lists every partition model, in login priority order.
func All() []any {
	return []any{&StudentModel{}, &TeacherModel{}, &AdminModel{}}
}
