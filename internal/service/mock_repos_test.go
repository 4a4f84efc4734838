package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/rodartecode/catering-event-manager-sub002/internal/model"
)

// ── Mock ResourceRepository ──

type mockResourceRepo struct {
	resources map[int64]*model.Resource
	err       error // 非空时强制返回该错误，模拟存储故障
}

func newMockResourceRepo() *mockResourceRepo {
	return &mockResourceRepo{resources: make(map[int64]*model.Resource)}
}

func (m *mockResourceRepo) GetByID(_ context.Context, id int64) (*model.Resource, error) {
	if m.err != nil {
		return nil, m.err
	}
	if r, ok := m.resources[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ScheduleEntryRepository ──

type mockScheduleEntryRepo struct {
	entries    map[int64]*model.ScheduleEntry
	err        error
	queryCount int // 记录存储往返次数，用于断言快速路径不触库
}

func newMockScheduleEntryRepo() *mockScheduleEntryRepo {
	return &mockScheduleEntryRepo{entries: make(map[int64]*model.ScheduleEntry)}
}

func (m *mockScheduleEntryRepo) ListForResourceInRange(_ context.Context, resourceID int64, start, end time.Time) ([]model.ScheduleEntry, error) {
	m.queryCount++
	if m.err != nil {
		return nil, m.err
	}
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if e.ResourceID != resourceID {
			continue
		}
		// 闭区间相交：es <= end AND ee >= start
		if !e.StartTime.After(end) && !e.EndTime.Before(start) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (m *mockScheduleEntryRepo) ListOverlapping(_ context.Context, resourceIDs []int64, start, end time.Time, excludeID *int64) ([]model.ScheduleEntry, error) {
	m.queryCount++
	if m.err != nil {
		return nil, m.err
	}
	idSet := make(map[int64]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		idSet[id] = true
	}
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if !idSet[e.ResourceID] {
			continue
		}
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if e.Overlaps(start, end) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ResourceID != result[j].ResourceID {
			return result[i].ResourceID < result[j].ResourceID
		}
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}
