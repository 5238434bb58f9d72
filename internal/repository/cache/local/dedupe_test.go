package local

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	cachemocks "fitsync-notify/internal/repository/cache/mocks"
)

func TestDeduper_本地缓存挡掉重复查询(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	next := cachemocks.NewMockEventDeduper(ctrl)
	// 第二次命中本地缓存，权威去重只被调用一次
	next.EXPECT().FirstSeen(gomock.Any(), "wamid.1").Return(true, nil).Times(1)

	d := NewDeduper(next)

	first, err := d.FirstSeen(context.Background(), "wamid.1")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = d.FirstSeen(context.Background(), "wamid.1")
	require.NoError(t, err)
	assert.False(t, first)
}

func TestDeduper_透传权威结果(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	next := cachemocks.NewMockEventDeduper(ctrl)
	// 别的实例先见过该事件
	next.EXPECT().FirstSeen(gomock.Any(), "wamid.2").Return(false, nil)

	d := NewDeduper(next)
	first, err := d.FirstSeen(context.Background(), "wamid.2")
	require.NoError(t, err)
	assert.False(t, first)
}

func TestDeduper_权威去重失败不写本地缓存(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	next := cachemocks.NewMockEventDeduper(ctrl)
	next.EXPECT().FirstSeen(gomock.Any(), "wamid.3").
		Return(false, errors.New("redis 不可用"))
	// 失败不能污染本地缓存，下一次还要去问权威去重
	next.EXPECT().FirstSeen(gomock.Any(), "wamid.3").Return(true, nil)

	d := NewDeduper(next)

	_, err := d.FirstSeen(context.Background(), "wamid.3")
	assert.Error(t, err)

	first, err := d.FirstSeen(context.Background(), "wamid.3")
	require.NoError(t, err)
	assert.True(t, first)
}
