package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fitsync-notify/internal/domain"
	providermocks "fitsync-notify/internal/service/provider/mocks"
)

func TestNewProvider_多实例共享指标(t *testing.T) {
	ctrl := gomock.NewController(t)

	inner := providermocks.NewMockProvider(ctrl)
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(domain.DeliveryResult{Success: true}, nil).Times(2)

	// 组装时每个适配器都要套一层，多次构造不能重复注册指标
	direct := NewProvider("whatsapp-direct", inner)
	template := NewProvider("whatsapp-template", inner)

	req := domain.MessageRequest{
		Channel: domain.ChannelWhatsApp,
		To:      "+10000000001",
		Body:    "Hello",
	}

	res, err := direct.Send(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = template.Send(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.Success)

	// 各实例通过 provider 标签区分
	assert.Equal(t, float64(1),
		testutil.ToFloat64(sendCounter.WithLabelValues("whatsapp-direct", "WHATSAPP")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(sendCounter.WithLabelValues("whatsapp-template", "WHATSAPP")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(sendResultCounter.WithLabelValues("whatsapp-direct", "WHATSAPP", "true")))
}

func TestProvider_透传结果与错误(t *testing.T) {
	ctrl := gomock.NewController(t)

	inner := providermocks.NewMockProvider(ctrl)
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(domain.DeliveryResult{Success: false, Message: "供应商拒绝"}, nil)

	p := NewProvider("sms", inner)
	res, err := p.Send(context.Background(), domain.MessageRequest{
		Channel: domain.ChannelSMS,
		To:      "+10000000003",
		Body:    "hi",
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "供应商拒绝", res.Message)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(sendResultCounter.WithLabelValues("sms", "SMS", "false")))
}
