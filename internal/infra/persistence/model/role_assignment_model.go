package model

import "time"

// RoleAssignmentModel is the GORM-specific struct for the 'role_assignments' table.
type RoleAssignmentModel struct {
	Email     string `gorm:"type:varchar(320);primaryKey"`
	Role      string `gorm:"type:varchar(32);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleAssignmentModel) TableName() string {
	return "role_assignments"
}

// Models lists every persisted model, in creation order.
func Models() []any {
	return []any{
		&PurchaseModel{},
		&DeviceAccessEntryModel{},
		&RoleAssignmentModel{},
	}
}
