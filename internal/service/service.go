package service

import (
	"go.uber.org/zap"

	"ems/backend/config"
	"ems/backend/internal/model"
	"ems/backend/internal/repository"
	"ems/backend/pkg/jwt"
	"ems/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Admin      EntityService[model.Admin]
	Employee   EmployeeService
	Department EntityService[model.Department]
	Event      EntityService[model.Event]
	Leave      LeaveService
	Salary     SalaryService
	Chatbot    ChatbotService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Admin:      NewAdminService(repo, logger),
		Employee:   NewEmployeeService(repo, logger),
		Department: NewDepartmentService(repo, logger),
		Event:      NewEventService(repo, logger),
		Leave:      NewLeaveService(repo, logger),
		Salary:     NewSalaryService(repo, logger),
		Chatbot:    NewChatbotService(),
		Export:     NewExportService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
