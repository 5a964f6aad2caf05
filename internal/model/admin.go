package model

// Admin 管理员表 — 对应 admins
// 与 User 凭证相互独立（沿用来源系统的设计）
type Admin struct {
	ID    int64  `gorm:"primaryKey"        json:"id"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Email string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone string `gorm:"type:varchar(50)"  json:"phone,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Admin) TableName() string { return "admins" }
