package model

// Event 公司活动表 — 对应 events
// Date 为 "2006-01-02" 格式字符串，与前端约定一致
type Event struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text"                  json:"description,omitempty"`
	Date        string `gorm:"type:varchar(20)"           json:"date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Event) TableName() string { return "events" }
