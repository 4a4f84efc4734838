package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if KindOf(Validation("bad input")) != KindValidation {
		t.Error("期望 Validation 类别")
	}
	if KindOf(NotFound("missing")) != KindNotFound {
		t.Error("期望 NotFound 类别")
	}
	if KindOf(Internal("boom", errors.New("cause"))) != KindInternal {
		t.Error("期望 Internal 类别")
	}
	// 非本包错误一律按 Internal 处理
	if KindOf(errors.New("plain")) != KindInternal {
		t.Error("未知错误应归为 Internal")
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NotFound("missing"))
	if KindOf(wrapped) != KindNotFound {
		t.Error("包装后的错误应仍能识别类别")
	}
}

func TestMessageOf_InternalHidesCause(t *testing.T) {
	err := Internal("failed to check conflicts", errors.New("pq: connection refused"))
	if MessageOf(err) != "internal server error" {
		t.Errorf("Internal 对外应为通用消息，实际: %s", MessageOf(err))
	}
	if MessageOf(Validation("end_time must be after start_time")) != "end_time must be after start_time" {
		t.Error("Validation 消息应原样透出")
	}
}

func TestUnwrap_PreservesChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to get resource availability", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is 应能穿透到底层原因")
	}
	if err.Error() != "failed to get resource availability: connection refused" {
		t.Errorf("Error() 输出不符: %s", err.Error())
	}
}
