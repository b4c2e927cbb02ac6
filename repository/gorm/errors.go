package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/utils/gormutil"
)

func convertError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case gormutil.IsMySQLDuplicatedRecordErr(err):
		return repository.ErrAlreadyExists
	default:
		return err
	}
}
