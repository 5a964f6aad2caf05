package dto

// ── 请假模块 DTO ──

// UpdateLeaveStatusRequest 请假状态补丁请求
// 仅替换 status 字段，其余字段保持原值
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,max=20"`
}
