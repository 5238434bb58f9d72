package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*egorm.Component, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestMessageDAO_InsertOutbound(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `outbound_message`").
		WillReturnResult(sqlmock.NewResult(7, 1))

	d := NewMessageDAO(gdb)
	id, err := d.InsertOutbound(context.Background(), OutboundMessage{
		Recipient:         "+10000000001",
		Channel:           "WHATSAPP",
		Content:           "Hello",
		ProviderMessageID: "wamid.1",
		Status:            "SUCCEEDED",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageDAO_InsertInbound_重复投递不报错(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	// 重投时唯一索引冲突被 ON DUPLICATE KEY 吞掉，影响行数为 0
	mock.ExpectExec("INSERT INTO `inbound_message`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	d := NewMessageDAO(gdb)
	err := d.InsertInbound(context.Background(), InboundMessage{
		ProviderMessageID: "wamid.2",
		Sender:            "+10000000005",
		Type:              "text",
		Content:           "想续卡",
		Timestamp:         1756700000,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageDAO_UpdateOutboundStatus(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `outbound_message`").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "wamid.1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	d := NewMessageDAO(gdb)
	err := d.UpdateOutboundStatus(context.Background(), "wamid.1", "delivered")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
