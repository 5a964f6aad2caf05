package model

// Notification 通知表 — 对应 notifications
// 本期仅建模入库，无对外接口
type Notification struct {
	ID         int64  `gorm:"primaryKey"        json:"id"`
	Title      string `gorm:"type:varchar(200)" json:"title"`
	Message    string `gorm:"type:text"         json:"message"`
	Date       string `gorm:"type:varchar(20)"  json:"date"`
	TargetRole string `gorm:"type:varchar(50)"  json:"targetRole"` // ADMIN / EMPLOYEE / ALL
	BaseModel
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }
