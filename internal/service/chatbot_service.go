package service

import (
	"fmt"

	"ems/backend/internal/dto"
)

// ChatbotService 聊天机器人业务接口
// 纯函数回显，无状态、无持久化、无外部调用
type ChatbotService interface {
	Send(req *dto.ChatRequest) *dto.ChatResponse
}

type chatbotService struct{}

// NewChatbotService 创建 ChatbotService 实例
func NewChatbotService() ChatbotService {
	return &chatbotService{}
}

func (s *chatbotService) Send(req *dto.ChatRequest) *dto.ChatResponse {
	// 字段缺失时按空字符串拼接，不做拒绝
	reply := fmt.Sprintf("You said: %s (Language: %s, Role: %s)",
		req.Message, req.Language, req.Role)
	return &dto.ChatResponse{Reply: reply}
}
