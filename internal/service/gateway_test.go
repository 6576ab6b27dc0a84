package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

type fakeProvider struct {
	out   string
	err   error
	calls int
	last  string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	f.calls++
	f.last = prompt
	return f.out, f.err
}

func TestStandInGenerateProducesValidRecord(t *testing.T) {
	g := NewStandInGateway()
	out, err := g.Generate(context.Background(), "anything", 4096)
	require.NoError(t, err)

	rec, err := model.ParseJobRecord(out)
	require.NoError(t, err)
	assert.True(t, rec.Equal(SampleRecord()))
	assert.False(t, g.Available())
}

func TestStandInRewrite(t *testing.T) {
	g := NewStandInGateway()
	ctx := context.Background()

	cases := []struct {
		instruction string
		text        string
		want        string
	}{
		{"より丁寧に", "本文", "【丁寧版】\n本文"},
		{"もっと簡潔に", "あいうえおかきく", "あいうえ...(以下省略)"},
		{"熱意を込めて", "本文", "ぜひご検討ください！\n\n本文\n\n何卒よろしくお願いいたします！"},
		{"フォーマルに", "本文", "拝啓\n\n本文\n\n敬具"},
		{"カジュアルに", "本文", "【カジュアルに版】\n本文"},
	}
	for _, c := range cases {
		got, err := g.Rewrite(ctx, c.text, c.instruction)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.instruction)
	}
}

func TestParseRewriteStyle(t *testing.T) {
	assert.Equal(t, RewritePolite, ParseRewriteStyle("より丁寧に"))
	assert.Equal(t, RewriteConcise, ParseRewriteStyle("簡潔にまとめて"))
	assert.Equal(t, RewriteEnthusiastic, ParseRewriteStyle("熱意を込めて"))
	assert.Equal(t, RewriteFormal, ParseRewriteStyle("フォーマルに"))
	assert.Equal(t, RewriteOther, ParseRewriteStyle("具体的に"))
	assert.Equal(t, RewriteOther, ParseRewriteStyle(""))
}

func TestLiveGatewayReturnsProviderOutput(t *testing.T) {
	p := &fakeProvider{out: `{"title":"x"}`}
	g := NewLiveGateway(p, NewStandInGateway())

	out, err := g.Generate(context.Background(), "prompt", 4096)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"x"}`, out)
	assert.True(t, g.Available())
}

func TestLiveGatewayFallsBackOnProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("401 unauthorized")}
	standIn := NewStandInGateway()
	g := NewLiveGateway(p, standIn)

	out, err := g.Generate(context.Background(), "prompt", 4096)
	require.NoError(t, err)
	want, _ := standIn.Generate(context.Background(), "prompt", 4096)
	assert.Equal(t, want, out)
	assert.Equal(t, 1, p.calls)
}

func TestLiveGatewayRewrite(t *testing.T) {
	p := &fakeProvider{out: "  書き直し  \n"}
	g := NewLiveGateway(p, NewStandInGateway())

	out, err := g.Rewrite(context.Background(), "本文", "簡潔に")
	require.NoError(t, err)
	assert.Equal(t, "書き直し", out)
	assert.Contains(t, p.last, "「簡潔に」")

	p.err = errors.New("timeout")
	out, err = g.Rewrite(context.Background(), "本文", "フォーマルに")
	require.NoError(t, err)
	assert.Equal(t, "拝啓\n\n本文\n\n敬具", out)
}

func TestOpenRouterComplete(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"title\":null}"}}]}`))
	}))
	defer srv.Close()

	s := NewOpenRouterServiceWith(srv.URL, "secret", "test/model")
	out, err := s.Complete(context.Background(), "hello", 100)
	require.NoError(t, err)
	assert.Equal(t, `{"title":null}`, out)
	assert.Equal(t, "test/model", gjson.Get(body, "model").String())
	assert.Equal(t, int64(100), gjson.Get(body, "max_tokens").Int())
	assert.Equal(t, "hello", gjson.Get(body, "messages.0.content").String())
}

func TestOpenRouterCompleteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer ok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenRouterServiceWith(srv.URL, "wrong", "m").Complete(context.Background(), "p", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	_, err = NewOpenRouterServiceWith(srv.URL, "ok", "m").Complete(context.Background(), "p", 10)
	require.Error(t, err)
}
