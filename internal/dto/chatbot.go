package dto

// ── 聊天机器人 DTO ──

// ChatRequest 聊天消息请求
// 字段缺失按空字符串处理，不做拒绝
type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	Role     string `json:"role"`
}

// ChatResponse 聊天回复
type ChatResponse struct {
	Reply string `json:"reply"`
}
