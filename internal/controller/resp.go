package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenant_admin_v1/pkg/errs"
)

// ==================== 统一响应 ====================

// Response 统一响应体
// 业务失败也走传输层 200，客户端按 code 分支
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// ok 成功响应
func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 200, Msg: "ok", Data: data})
}

// fail 失败响应
func fail(c *gin.Context, code int, msg string) {
	if msg == "" {
		msg = "fail"
	}
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}

// failErr 按错误类型写失败响应，未知错误归为 500
func failErr(c *gin.Context, err error) {
	fail(c, errs.CodeOf(err), errs.MsgOf(err))
}
