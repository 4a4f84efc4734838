package dto

// ── 可用性模块 DTO ──
//
// 对外契约固定使用 camelCase 字段名，与调用方（资源指派工作流前端）约定一致

// ScheduleEntryResponse 排期条目响应
// 时间戳一律按 RFC3339 输出
type ScheduleEntryResponse struct {
	ID         int64   `json:"id"`
	ResourceID int64   `json:"resourceId"`
	EventID    int64   `json:"eventId"`
	EventName  string  `json:"eventName"`
	TaskID     *int64  `json:"taskId,omitempty"`
	TaskTitle  *string `json:"taskTitle,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Notes      *string `json:"notes,omitempty"`
}

// ResourceAvailabilityResponse 资源在日期范围内的占用情况
type ResourceAvailabilityResponse struct {
	ResourceID int64                   `json:"resourceId"`
	Entries    []ScheduleEntryResponse `json:"entries"`
}

// ResourceResponse 资源描述信息响应
type ResourceResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	IsAvailable bool     `json:"isAvailable"`
	Notes       *string  `json:"notes,omitempty"`
}
