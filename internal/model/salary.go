package model

// 工资状态约定值
const (
	SalaryStatusUnpaid = "UNPAID"
	SalaryStatusPaid   = "PAID"
)

// Salary 工资记录表 — 对应 salaries
type Salary struct {
	ID           int64   `gorm:"primaryKey"         json:"id"`
	EmployeeName string  `gorm:"type:varchar(100)"  json:"employeeName"`
	Month        string  `gorm:"type:varchar(20)"   json:"month"`
	Amount       float64 `gorm:"type:numeric(12,2)" json:"amount"`
	Status       string  `gorm:"type:varchar(20);not null;default:'UNPAID'" json:"status"`
	BaseModel
}

// TableName 指定表名
func (Salary) TableName() string { return "salaries" }
