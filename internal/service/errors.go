package service

import (
	"VidHub/pkg/apperr"
	"errors"

	"gorm.io/gorm"
)

// 把存储层错误映射到业务错误：没找到 -> 404，其他 -> 500
func storageErr(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	// 已经是业务错误的（比如事务里返回的），原样往上抛
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFoundMsg)
	}
	return apperr.Internal(err)
}
