package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rodartecode/catering-event-manager-sub002/internal/model"
	"github.com/rodartecode/catering-event-manager-sub002/internal/repository"
	"github.com/rodartecode/catering-event-manager-sub002/pkg/apperrors"
)

// ExportService 排期导出业务接口
//
// 设计说明：
//   - 可用性查询的下载形态：同一份"资源在日期范围内的占用"数据，
//     提供 Excel (.xlsx) 与 iCalendar (RFC 5545) 两种格式
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 日期校验规则与可用性查询一致：仅拒绝 endDate 严格早于 startDate
type ExportService interface {
	// ExportResourceSchedule 导出资源排期为 Excel
	ExportResourceSchedule(ctx context.Context, resourceID int64, startDate, endDate time.Time) (*bytes.Buffer, string, error)

	// ExportResourceCalendar 导出资源排期为 iCalendar
	ExportResourceCalendar(ctx context.Context, resourceID int64, startDate, endDate time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// loadSchedule 取资源与范围内条目，两种导出共用
func (s *exportService) loadSchedule(ctx context.Context, resourceID int64, startDate, endDate time.Time) (*model.Resource, []model.ScheduleEntry, error) {
	if endDate.Before(startDate) {
		return nil, nil, apperrors.Validation("end_date must be after start_date")
	}

	res, err := s.repo.Resource.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("resource not found")
		}
		s.logger.Error("查询资源失败", zap.Int64("id", resourceID), zap.Error(err))
		return nil, nil, apperrors.Internal("failed to get resource", err)
	}

	entries, err := s.repo.ScheduleEntry.ListForResourceInRange(ctx, resourceID, startDate, endDate)
	if err != nil {
		s.logger.Error("查询资源排期失败", zap.Int64("resource_id", resourceID), zap.Error(err))
		return nil, nil, apperrors.Internal("failed to get resource availability", err)
	}

	return res, entries, nil
}

// ═══════════════════════════════════════════════════════════
// ExportResourceSchedule — 导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：单 Sheet，首行表头，每条排期条目一行
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportResourceSchedule(ctx context.Context, resourceID int64, startDate, endDate time.Time) (*bytes.Buffer, string, error) {
	res, entries, err := s.loadSchedule(ctx, resourceID, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Event", "Task", "Start", "End", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", apperrors.Internal("failed to generate schedule export", err)
		}
	}

	for row, e := range entries {
		taskTitle := ""
		if e.TaskTitle != nil {
			taskTitle = *e.TaskTitle
		}
		notes := ""
		if e.Notes != nil {
			notes = *e.Notes
		}
		values := []interface{}{
			e.EventName,
			taskTitle,
			e.StartTime.Format(conflictTimeLayout),
			e.EndTime.Format(conflictTimeLayout),
			notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", apperrors.Internal("failed to generate schedule export", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Int64("resource_id", resourceID), zap.Error(err))
		return nil, "", apperrors.Internal("failed to generate schedule export", err)
	}

	filename := fmt.Sprintf("%s-schedule-%s.xlsx", res.Name, startDate.Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportResourceCalendar — 导出为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每条排期条目一个 VEVENT；UID 取条目 ID，保证同一条目重复导出幂等

func (s *exportService) ExportResourceCalendar(ctx context.Context, resourceID int64, startDate, endDate time.Time) (*bytes.Buffer, string, error) {
	res, entries, err := s.loadSchedule(ctx, resourceID, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//catering-event-manager//schedule-core//EN")

	for i := range entries {
		e := &entries[i]
		ev := cal.AddEvent(fmt.Sprintf("schedule-entry-%d@%s", e.ID, "catering-event-manager"))
		ev.SetStartAt(e.StartTime)
		ev.SetEndAt(e.EndTime)
		ev.SetSummary(fmt.Sprintf("%s — %s", res.Name, e.EventName))
		if e.TaskTitle != nil {
			ev.SetDescription(*e.TaskTitle)
		}
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		s.logger.Error("生成 ICS 失败", zap.Int64("resource_id", resourceID), zap.Error(err))
		return nil, "", apperrors.Internal("failed to generate calendar export", err)
	}

	filename := fmt.Sprintf("%s-schedule-%s.ics", res.Name, startDate.Format("20060102"))
	return &buf, filename, nil
}
