package sender

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fitsync-notify/internal/domain"
	repomocks "fitsync-notify/internal/repository/mocks"
	channelmocks "fitsync-notify/internal/service/channel/mocks"
)

func TestSender_成功发送并留痕(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	req := domain.MessageRequest{
		Channel: domain.ChannelWhatsApp,
		To:      "+10000000001",
		Body:    "Hello",
	}

	mockChannel := channelmocks.NewMockChannel(ctrl)
	mockChannel.EXPECT().Send(gomock.Any(), req).
		Return(domain.DeliveryResult{
			Success:           true,
			ProviderMessageID: "wamid.1",
			Raw:               `{"messageId":"wamid.1"}`,
		}, nil)

	mockRepo := repomocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().LogOutbound(gomock.Any(), domain.OutboundRecord{
		Recipient:         "+10000000001",
		Channel:           domain.ChannelWhatsApp,
		Content:           "Hello",
		ProviderMessageID: "wamid.1",
		Success:           true,
		RawResponse:       `{"messageId":"wamid.1"}`,
	}).Return(int64(1), nil)

	s := NewSender(mockRepo, mockChannel)
	res := s.Send(context.Background(), req)
	assert.True(t, res.Success)
}

func TestSender_渠道错误转换为失败结果(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	req := domain.MessageRequest{
		Channel: domain.ChannelSMS,
		To:      "+10000000003",
		Body:    "hi",
	}

	mockChannel := channelmocks.NewMockChannel(ctrl)
	mockChannel.EXPECT().Send(gomock.Any(), req).
		Return(domain.DeliveryResult{}, errors.New("连接超时"))

	mockRepo := repomocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().LogOutbound(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	s := NewSender(mockRepo, mockChannel)
	res := s.Send(context.Background(), req)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "连接超时")
}

func TestSender_留痕失败不影响发送结果(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	req := domain.MessageRequest{
		Channel: domain.ChannelWhatsApp,
		To:      "+10000000001",
		Body:    "Hello",
	}

	mockChannel := channelmocks.NewMockChannel(ctrl)
	mockChannel.EXPECT().Send(gomock.Any(), req).
		Return(domain.DeliveryResult{Success: true}, nil)

	mockRepo := repomocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().LogOutbound(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("数据库不可用"))

	s := NewSender(mockRepo, mockChannel)
	res := s.Send(context.Background(), req)
	assert.True(t, res.Success)
}

func TestSender_兜底发送记录实际模版(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	req := domain.MessageRequest{
		Channel:  domain.ChannelWhatsApp,
		To:       "+10000000002",
		Template: domain.Template{Name: "promo_q1", Language: "en_US"},
	}

	mockChannel := channelmocks.NewMockChannel(ctrl)
	mockChannel.EXPECT().Send(gomock.Any(), req).
		Return(domain.DeliveryResult{
			Success:      true,
			UsedTemplate: true,
			UsedFallback: true,
		}, nil)

	mockRepo := repomocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().LogOutbound(gomock.Any(), domain.OutboundRecord{
		Recipient:    "+10000000002",
		Channel:      domain.ChannelWhatsApp,
		TemplateName: domain.DefaultTemplateName,
		Success:      true,
		UsedTemplate: true,
		UsedFallback: true,
	}).Return(int64(1), nil)

	s := NewSender(mockRepo, mockChannel)
	res := s.Send(context.Background(), req)
	assert.True(t, res.UsedFallback)
}
