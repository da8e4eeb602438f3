package errs

import "errors"

// Error 业务错误，Code 为 API 层状态码（写入响应体，不影响 HTTP 状态）
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// New 创建业务错误
func New(code int, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Bad 请求参数/业务规则错误 (400)
func Bad(msg string) *Error {
	return New(400, msg)
}

// CodeOf 提取错误的 API 状态码，未知错误归为 500
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 500
}

// MsgOf 提取错误消息，未知错误返回通用提示
func MsgOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "操作失败"
}
