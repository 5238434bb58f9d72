package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/errs"
	channelmocks "fitsync-notify/internal/service/channel/mocks"
)

func TestDispatcher_按渠道分发(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	req := domain.MessageRequest{
		Channel: domain.ChannelSMS,
		To:      "+10000000003",
		Body:    "您的会员卡即将到期",
	}

	smsChannel := channelmocks.NewMockChannel(ctrl)
	smsChannel.EXPECT().Send(gomock.Any(), req).
		Return(domain.DeliveryResult{Success: true, ProviderMessageID: "SM1"}, nil)
	// 其他渠道不能被调用
	waChannel := channelmocks.NewMockChannel(ctrl)

	d := NewDispatcher(map[domain.Channel]Channel{
		domain.ChannelSMS:      smsChannel,
		domain.ChannelWhatsApp: waChannel,
	})

	res, err := d.Send(context.Background(), req)
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "SM1", res.ProviderMessageID)
}

func TestDispatcher_未知渠道(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(map[domain.Channel]Channel{})
	_, err := d.Send(context.Background(), domain.MessageRequest{
		Channel: domain.ChannelPush,
		Push:    &domain.PushMessage{Title: "t", Body: "b"},
		Subscription: &domain.PushSubscription{
			Endpoint: "https://push.example.com/sub",
			P256dh:   "p",
			Auth:     "a",
		},
	})
	assert.ErrorIs(t, err, errs.ErrNoAvailableChannel)
}

func TestDispatcher_参数校验(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(map[domain.Channel]Channel{})
	_, err := d.Send(context.Background(), domain.MessageRequest{
		Channel: domain.ChannelWhatsApp,
		To:      "+10000000001",
	})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
