package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rodartecode/catering-event-manager-sub002/internal/service"
	"github.com/rodartecode/catering-event-manager-sub002/pkg/response"
)

// AvailabilityHandler 可用性模块 HTTP 处理器
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler 创建 AvailabilityHandler
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// GetResourceAvailability 查询资源在日期范围内的排期
// GET /resource-availability?resource_id=&start_date=&end_date=
func (h *AvailabilityHandler) GetResourceAvailability(c *gin.Context) {
	resourceID, start, end, ok := MustBindScheduleRangeQuery(c)
	if !ok {
		return
	}

	result, err := h.availabilitySvc.GetResourceAvailability(c.Request.Context(), resourceID, start, end)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.OK(c, result)
}

// GetResource 查询资源描述信息
// GET /resources/:id
func (h *AvailabilityHandler) GetResource(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, codeInvalidResourceID, "resource id must be an integer")
		return
	}

	result, err := h.availabilitySvc.GetResourceByID(c.Request.Context(), id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.OK(c, result)
}
