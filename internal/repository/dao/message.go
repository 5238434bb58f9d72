package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type MessageDAO interface {
	// InsertOutbound 写入一条出站留痕
	InsertOutbound(ctx context.Context, msg OutboundMessage) (int64, error)
	// InsertInbound 写入入站消息，按 provider_message_id 幂等
	InsertInbound(ctx context.Context, msg InboundMessage) error
	// UpdateOutboundStatus 按平台消息ID更新出站消息状态
	UpdateOutboundStatus(ctx context.Context, providerMessageID, status string) error
}

type messageDAO struct {
	db *egorm.Component
}

func (dao *messageDAO) InsertOutbound(ctx context.Context, msg OutboundMessage) (int64, error) {
	now := time.Now().UnixMilli()
	msg.Ctime = now
	msg.Utime = now
	err := dao.db.WithContext(ctx).Create(&msg).Error
	return msg.ID, err
}

func (dao *messageDAO) InsertInbound(ctx context.Context, msg InboundMessage) error {
	now := time.Now().UnixMilli()
	msg.Ctime = now
	// 平台回调按重投语义工作，同一条消息可能送达多次
	return dao.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&msg).Error
}

func (dao *messageDAO) UpdateOutboundStatus(ctx context.Context, providerMessageID, status string) error {
	return dao.db.WithContext(ctx).Model(&OutboundMessage{}).
		Where("provider_message_id = ?", providerMessageID).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func NewMessageDAO(db *egorm.Component) MessageDAO {
	return &messageDAO{db: db}
}

// OutboundMessage 出站消息留痕
type OutboundMessage struct {
	ID                int64  `gorm:"primaryKey;autoIncrement;comment:'出站消息ID'"`
	Recipient         string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_recipient;comment:'接收方标识'"`
	Channel           string `gorm:"type:VARCHAR(16);NOT NULL;comment:'发送渠道'"`
	Content           string `gorm:"type:TEXT;comment:'消息内容或模版参数'"`
	TemplateName      string `gorm:"type:VARCHAR(128);comment:'模版名'"`
	ProviderMessageID string `gorm:"column:provider_message_id;type:VARCHAR(128);index:idx_provider_message_id;comment:'平台消息ID'"`
	Status            string `gorm:"type:VARCHAR(16);NOT NULL;comment:'发送状态'"`
	UsedTemplate      bool   `gorm:"NOT NULL;DEFAULT:0;comment:'是否走了模版路径'"`
	UsedFallback      bool   `gorm:"NOT NULL;DEFAULT:0;comment:'是否触发了兜底模版'"`
	RawResponse       string `gorm:"type:TEXT;comment:'平台原始响应'"`
	Ctime             int64
	Utime             int64
}

// TableName 重命名表
func (OutboundMessage) TableName() string {
	return "outbound_message"
}

// InboundMessage 入站消息留痕，由平台回调写入
type InboundMessage struct {
	ID                int64  `gorm:"primaryKey;autoIncrement;comment:'入站消息ID'"`
	ProviderMessageID string `gorm:"column:provider_message_id;type:VARCHAR(128);NOT NULL;uniqueIndex:uk_provider_message_id;comment:'平台消息ID'"`
	Sender            string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_sender;comment:'发送方标识'"`
	Type              string `gorm:"type:VARCHAR(16);NOT NULL;comment:'消息类型'"`
	Content           string `gorm:"type:TEXT;comment:'消息内容'"`
	Timestamp         int64  `gorm:"NOT NULL;comment:'平台侧时间戳'"`
	Ctime             int64
}

// TableName 重命名表
func (InboundMessage) TableName() string {
	return "inbound_message"
}
