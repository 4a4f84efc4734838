package service

import (
	"go.uber.org/zap"

	"github.com/rodartecode/catering-event-manager-sub002/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Availability AvailabilityService
	Conflict     ConflictService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Availability: NewAvailabilityService(repo, logger),
		Conflict:     NewConflictService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
