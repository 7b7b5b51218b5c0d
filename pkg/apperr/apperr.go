// Package apperr 定义业务错误的分类，handler层据此决定HTTP状态码
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal        Kind = iota // 500，意料之外的错误（包括存储错误）
	KindValidation                  // 400，缺字段或字段格式不对
	KindUnauthenticated             // 401，没有或无效的凭证
	KindForbidden                   // 403，不是资源的拥有者
	KindNotFound                    // 404，引用的资源不存在
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(kind Kind, message string) error {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) error {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

func Validation(msg string) error {
	return New(KindValidation, msg)
}

func Unauthenticated(msg string) error {
	return New(KindUnauthenticated, msg)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

func NotFound(msg string) error {
	return New(KindNotFound, msg)
}

// Internal 包装存储层等意料之外的错误，cause会原样透传给调用方
func Internal(cause error) error {
	return Wrap(KindInternal, "Server error", cause)
}

// KindOf 取出错误的分类，不是AppError的一律按Internal处理
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is 判断err是不是某一类业务错误
func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
