package gormutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsMySQLDuplicatedRecordErr(t *testing.T) {
	t.Parallel()

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	assert.True(t, IsMySQLDuplicatedRecordErr(dup))
	assert.True(t, IsMySQLDuplicatedRecordErr(fmt.Errorf("wrapped: %w", dup)))
	assert.False(t, IsMySQLDuplicatedRecordErr(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsMySQLDuplicatedRecordErr(errors.New("other")))
	assert.False(t, IsMySQLDuplicatedRecordErr(nil))
}
