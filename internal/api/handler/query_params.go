package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rodartecode/catering-event-manager-sub002/pkg/response"
)

// ── 参数错误码 ──
//
// 查询参数在进入 Service 层之前校验，每种失败对应独立的机器可读错误码，
// 供调用方 UI 渲染精确提示。业务规则校验（起止顺序等）由 Service 层负责，
// 统一报 VALIDATION 码

const (
	codeMissingParameters  = "missing_parameters"
	codeInvalidResourceID  = "invalid_resource_id"
	codeInvalidStartDate   = "invalid_start_date"
	codeInvalidEndDate     = "invalid_end_date"
	codeInvalidRequestBody = "invalid_request_body"
)

// MustBindScheduleRangeQuery 从查询串提取 resource_id / start_date / end_date。
// 任一参数缺失或格式非法时写入 400 响应并返回 ok=false，
// 调用方应在 ok=false 时直接 return
func MustBindScheduleRangeQuery(c *gin.Context) (resourceID int64, start, end time.Time, ok bool) {
	rawID := c.Query("resource_id")
	rawStart := c.Query("start_date")
	rawEnd := c.Query("end_date")

	if rawID == "" || rawStart == "" || rawEnd == "" {
		response.BadRequest(c, codeMissingParameters, "resource_id, start_date and end_date are required")
		return 0, time.Time{}, time.Time{}, false
	}

	resourceID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.BadRequest(c, codeInvalidResourceID, "resource_id must be an integer")
		return 0, time.Time{}, time.Time{}, false
	}

	start, err = time.Parse(time.RFC3339, rawStart)
	if err != nil {
		response.BadRequest(c, codeInvalidStartDate, "start_date must be an RFC3339 timestamp")
		return 0, time.Time{}, time.Time{}, false
	}

	end, err = time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		response.BadRequest(c, codeInvalidEndDate, "end_date must be an RFC3339 timestamp")
		return 0, time.Time{}, time.Time{}, false
	}

	return resourceID, start, end, true
}
