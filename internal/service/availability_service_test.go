package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rodartecode/catering-event-manager-sub002/internal/model"
	"github.com/rodartecode/catering-event-manager-sub002/internal/repository"
	"github.com/rodartecode/catering-event-manager-sub002/pkg/apperrors"
)

// ── 测试辅助 ──

func setupTestAvailabilityService() (AvailabilityService, *mockResourceRepo, *mockScheduleEntryRepo) {
	resourceRepo := newMockResourceRepo()
	entryRepo := newMockScheduleEntryRepo()
	repo := &repository.Repository{
		Resource:      resourceRepo,
		ScheduleEntry: entryRepo,
	}
	svc := NewAvailabilityService(repo, zap.NewNop())
	return svc, resourceRepo, entryRepo
}

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

// ── GetResourceAvailability 测试 ──

func TestAvailabilityService_GetResourceAvailability_EndBeforeStart(t *testing.T) {
	svc, _, entryRepo := setupTestAvailabilityService()

	_, err := svc.GetResourceAvailability(context.Background(), 1, day(17, 0), day(9, 0))
	if err == nil {
		t.Fatal("期望校验错误，实际成功")
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation {
		t.Errorf("期望 Validation 错误，实际: %v", err)
	}
	if appErr.Message != "end_date must be after start_date" {
		t.Errorf("期望消息 end_date must be after start_date，实际: %s", appErr.Message)
	}
	if entryRepo.queryCount != 0 {
		t.Errorf("校验失败不应触库，实际查询 %d 次", entryRepo.queryCount)
	}
}

func TestAvailabilityService_GetResourceAvailability_EqualDatesAccepted(t *testing.T) {
	// 起止相等是允许的（冲突检测则拒绝零长窗口，两者刻意不对称）
	svc, _, _ := setupTestAvailabilityService()

	result, err := svc.GetResourceAvailability(context.Background(), 1, day(9, 0), day(9, 0))
	if err != nil {
		t.Fatalf("起止相等应成功: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("期望空列表，实际 %d 条", len(result.Entries))
	}
}

func TestAvailabilityService_GetResourceAvailability_EmptyRange(t *testing.T) {
	svc, _, _ := setupTestAvailabilityService()

	result, err := svc.GetResourceAvailability(context.Background(), 42, day(8, 0), day(20, 0))
	if err != nil {
		t.Fatalf("无条目时应成功返回空列表: %v", err)
	}
	if result.ResourceID != 42 {
		t.Errorf("期望 resourceId=42，实际=%d", result.ResourceID)
	}
	if result.Entries == nil || len(result.Entries) != 0 {
		t.Error("期望非 nil 空列表")
	}
}

func TestAvailabilityService_GetResourceAvailability_ReturnsEntriesInOrder(t *testing.T) {
	svc, _, entryRepo := setupTestAvailabilityService()

	taskID := int64(7)
	taskTitle := "摆台"
	entryRepo.entries[1] = &model.ScheduleEntry{
		ID: 1, ResourceID: 5, EventID: 100, EventName: "春季晚宴",
		StartTime: day(14, 0), EndTime: day(18, 0),
	}
	entryRepo.entries[2] = &model.ScheduleEntry{
		ID: 2, ResourceID: 5, EventID: 101, EventName: "午间自助",
		TaskID: &taskID, TaskTitle: &taskTitle,
		StartTime: day(9, 0), EndTime: day(12, 0),
	}
	entryRepo.entries[3] = &model.ScheduleEntry{
		ID: 3, ResourceID: 6, EventID: 102, EventName: "其他资源的条目",
		StartTime: day(9, 0), EndTime: day(12, 0),
	}

	result, err := svc.GetResourceAvailability(context.Background(), 5, day(0, 0), day(23, 0))
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("期望 2 条，实际 %d 条", len(result.Entries))
	}
	// 按 start_time 升序
	if result.Entries[0].ID != 2 || result.Entries[1].ID != 1 {
		t.Errorf("期望按开始时间升序 [2,1]，实际 [%d,%d]", result.Entries[0].ID, result.Entries[1].ID)
	}
	// 可选任务字段透传
	if result.Entries[0].TaskID == nil || *result.Entries[0].TaskID != 7 {
		t.Error("期望 taskId=7 透传")
	}
	if result.Entries[0].TaskTitle == nil || *result.Entries[0].TaskTitle != "摆台" {
		t.Error("期望 taskTitle 透传")
	}
	if result.Entries[1].TaskID != nil {
		t.Error("无任务的条目 taskId 应为空")
	}
}

func TestAvailabilityService_GetResourceAvailability_StoreError(t *testing.T) {
	svc, _, entryRepo := setupTestAvailabilityService()
	entryRepo.err = errors.New("connection refused")

	_, err := svc.GetResourceAvailability(context.Background(), 1, day(9, 0), day(17, 0))
	if apperrors.KindOf(err) != apperrors.KindInternal {
		t.Errorf("期望 Internal 错误，实际: %v", err)
	}
	// 对外消息不得泄露底层错误文本
	if apperrors.MessageOf(err) != "internal server error" {
		t.Errorf("期望通用消息，实际: %s", apperrors.MessageOf(err))
	}
}

// ── GetResourceByID 测试 ──

func TestAvailabilityService_GetResourceByID_Success(t *testing.T) {
	svc, resourceRepo, _ := setupTestAvailabilityService()
	rate := 85.50
	notes := "仅限周末"
	resourceRepo.resources[3] = &model.Resource{
		ID: 3, Name: "主厨", Type: model.ResourceTypeStaff,
		HourlyRate: &rate, IsAvailable: true, Notes: &notes,
	}

	result, err := svc.GetResourceByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetResourceByID 应成功: %v", err)
	}
	if result.Name != "主厨" || result.Type != "staff" {
		t.Errorf("资源字段不符: %+v", result)
	}
	if result.HourlyRate == nil || *result.HourlyRate != 85.50 {
		t.Error("期望 hourlyRate=85.50")
	}
	if result.Notes == nil || *result.Notes != "仅限周末" {
		t.Error("期望 notes 透传")
	}
}

func TestAvailabilityService_GetResourceByID_OptionalFieldsAbsent(t *testing.T) {
	svc, resourceRepo, _ := setupTestAvailabilityService()
	resourceRepo.resources[4] = &model.Resource{
		ID: 4, Name: "保温餐车", Type: model.ResourceTypeEquipment, IsAvailable: false,
	}

	result, err := svc.GetResourceByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("GetResourceByID 应成功: %v", err)
	}
	if result.HourlyRate != nil || result.Notes != nil {
		t.Error("未设置的可选列应表现为缺失，而不是零值")
	}
	if result.IsAvailable {
		t.Error("期望 isAvailable=false")
	}
}

func TestAvailabilityService_GetResourceByID_NotFound(t *testing.T) {
	svc, _, _ := setupTestAvailabilityService()

	_, err := svc.GetResourceByID(context.Background(), 99999)
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("期望 NotFound 错误，实际: %v", err)
	}
	var appErr *apperrors.Error
	errors.As(err, &appErr)
	if appErr.Message != "resource not found" {
		t.Errorf("期望消息 resource not found，实际: %s", appErr.Message)
	}
}

func TestAvailabilityService_GetResourceByID_StoreError(t *testing.T) {
	svc, resourceRepo, _ := setupTestAvailabilityService()
	resourceRepo.err = errors.New("connection refused")

	_, err := svc.GetResourceByID(context.Background(), 1)
	if apperrors.KindOf(err) != apperrors.KindInternal {
		t.Errorf("非 no rows 的存储错误应映射为 Internal，实际: %v", err)
	}
}
