package model

// Department 部门表 — 对应 departments
type Department struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text"                  json:"description,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }
