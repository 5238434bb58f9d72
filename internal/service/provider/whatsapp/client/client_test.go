package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fitsync-notify/internal/errs"
	tokenmocks "fitsync-notify/internal/service/token/mocks"
)

func TestHTTPClient_SendText(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tk-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SendTextReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+10000000001", req.To)
		assert.Equal(t, "Hello", req.Message)

		_, _ = fmt.Fprint(w, `{"messageId":"wamid.1"}`)
	}))
	defer server.Close()

	tokens := tokenmocks.NewMockManager(ctrl)
	tokens.EXPECT().GetToken(gomock.Any()).Return("tk-1", nil)

	c := NewClient(server.URL, server.URL, tokens, server.Client())
	resp, err := c.SendText(context.Background(), SendTextReq{To: "+10000000001", Message: "Hello"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "wamid.1", resp.MessageID)
}

func TestHTTPClient_SendTemplate_平台结构化失败(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"error":{"code":132001,"message":"template not found"}}`)
	}))
	defer server.Close()

	tokens := tokenmocks.NewMockManager(ctrl)
	tokens.EXPECT().GetToken(gomock.Any()).Return("tk-1", nil)

	c := NewClient(server.URL, server.URL, tokens, server.Client())
	resp, err := c.SendTemplate(context.Background(), SendTemplateReq{
		To:           "+10000000002",
		TemplateName: "promo_q1",
		Language:     "en_US",
	})
	// 平台拒绝不是错误，归一化为失败响应
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, 132001, resp.ErrorCode)
	assert.Equal(t, "template not found", resp.ErrorMessage)
}

func TestHTTPClient_凭证获取失败直接上抛(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	tokens := tokenmocks.NewMockManager(ctrl)
	tokens.EXPECT().GetToken(gomock.Any()).
		Return("", fmt.Errorf("%w: 凭证端点返回 500", errs.ErrCredential))

	c := NewClient("http://unused", "http://unused", tokens, nil)
	_, err := c.SendText(context.Background(), SendTextReq{To: "+10000000001", Message: "Hello"})
	assert.ErrorIs(t, err, errs.ErrCredential)
}

func TestHTTPClient_网络失败(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // 立刻关掉，制造连接失败

	tokens := tokenmocks.NewMockManager(ctrl)
	tokens.EXPECT().GetToken(gomock.Any()).Return("tk-1", nil)

	c := NewClient(server.URL, server.URL, tokens, nil)
	_, err := c.SendText(context.Background(), SendTextReq{To: "+10000000001", Message: "Hello"})
	assert.ErrorIs(t, err, errs.ErrNetwork)
}
