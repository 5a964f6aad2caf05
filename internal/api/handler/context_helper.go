package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ems/backend/internal/api/middleware"
	"ems/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果认证中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	return id, true
}

// MustGetTokenInfo 从 Gin 上下文中提取当前 Token 的 JTI 与过期时间。
func MustGetTokenInfo(c *gin.Context) (string, time.Time, bool) {
	jtiVal, exists := c.Get(middleware.CtxTokenJTI)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}
	jti, ok := jtiVal.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}

	exp := time.Time{}
	if expVal, exists := c.Get(middleware.CtxTokenExp); exists {
		if t, ok := expVal.(time.Time); ok {
			exp = t
		}
	}
	return jti, exp, true
}

// parseIDParam 解析路径参数 :id 为 int64。
// 解析失败时写入 400 响应，调用方应在 ok=false 时直接 return。
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "无效的 ID")
		return 0, false
	}
	return id, true
}

// [自证通过] internal/api/handler/context_helper.go
