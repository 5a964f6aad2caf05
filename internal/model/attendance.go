package model

// Attendance 考勤表 — 对应 attendances
// 本期仅建模入库，无对外接口
type Attendance struct {
	ID         int64  `gorm:"primaryKey"       json:"id"`
	EmployeeID int64  `json:"employeeId"`
	Date       string `gorm:"type:varchar(20)" json:"date"`
	Status     string `gorm:"type:varchar(20)" json:"status"` // Present / Absent / Half-day / Leave
	BaseModel
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }
