package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm sentinel", errors.Wrap(gorm.ErrDuplicatedKey, "create"), true},
		{"postgres message", errors.New(`duplicate key value violates unique constraint "idx_auth_user_username"`), true},
		{"sqlstate code", errors.New("ERROR: something (SQLSTATE 23505)"), true},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"plain error", errors.New("syntax error"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueConstraintViolation(tc.err))
		})
	}
}

func TestIsConnectivityError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"bad conn", driver.ErrBadConn, true},
		{"wrapped bad conn", errors.Wrap(driver.ErrBadConn, "exec"), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"invalid db", gorm.ErrInvalidDB, true},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("timeout")}, true},
		{"refused message", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{"connection failure sqlstate", errors.New("ERROR: terminating connection (SQLSTATE 08006)"), true},
		{"admin shutdown sqlstate", errors.New("ERROR: terminating connection due to administrator command (SQLSTATE 57P01)"), true},
		{"unique violation is not connectivity", gorm.ErrDuplicatedKey, false},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"plain query error", errors.New("syntax error at or near"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isConnectivityError(tc.err))
		})
	}
}
