package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/rodartecode/catering-event-manager-sub002/internal/service"
	"github.com/rodartecode/catering-event-manager-sub002/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSchedule 导出资源排期为 Excel
// GET /resource-availability/export?resource_id=&start_date=&end_date=
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	resourceID, start, end, ok := MustBindScheduleRangeQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportResourceSchedule(c.Request.Context(), resourceID, start, end)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	writeDownload(c, contentTypeXLSX, filename, buf.Bytes())
}

// ExportCalendar 导出资源排期为 iCalendar
// GET /resource-availability/calendar?resource_id=&start_date=&end_date=
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	resourceID, start, end, ok := MustBindScheduleRangeQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportResourceCalendar(c.Request.Context(), resourceID, start, end)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	writeDownload(c, contentTypeICS, filename, buf.Bytes())
}

// writeDownload 设置下载响应头并写出文件内容
func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
