package errors

import "errors"

// ErrConflictWrite 写入冲突：记录已被其他操作占用或修改
var ErrConflictWrite = errors.New("写入冲突，请刷新后重试")
