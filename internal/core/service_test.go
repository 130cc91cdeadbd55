package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fancyfont/internal/config"
	"github.com/JonMunkholm/fancyfont/internal/style"
)

// fakeMapper records calls and can be told to misbehave per style.
type fakeMapper struct {
	infos  []style.Info
	apply  func(id, text string) (string, error)
	called []string
}

func (f *fakeMapper) List() []style.Info { return f.infos }

func (f *fakeMapper) Apply(id, text string) (string, error) {
	f.called = append(f.called, id)
	return f.apply(id, text)
}

func testMapper() *style.Registry {
	r := style.NewRegistry()
	r.Register("caps", "Small Caps", style.MustTable(style.NewBuilder().Runes("abc", "ᴀʙᴄ")))
	r.Register("digits", "Circled Digits", style.MustTable(style.NewBuilder().Runes("123", "①②③")))
	r.Register("upper", "Upper", style.MustTable(style.NewBuilder().Runes("abc", "ABC")))
	return r
}

func TestConvert_OrderAndFiltering(t *testing.T) {
	svc := NewService(testMapper(), nil)

	conv, err := svc.Convert(context.Background(), "cab")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, conv.ID)
	assert.Equal(t, "cab", conv.Input)
	assert.Equal(t, []Result{
		{ID: "caps", Name: "Small Caps", Text: "ᴄᴀʙ"},
		{ID: "upper", Name: "Upper", Text: "CAB"},
	}, conv.Results, "digits leaves letters unchanged and must be dropped")
	assert.Empty(t, conv.Failed)
}

func TestConvert_TrimsInput(t *testing.T) {
	svc := NewService(testMapper(), nil)

	conv, err := svc.Convert(context.Background(), "  a1 \n")
	require.NoError(t, err)

	assert.Equal(t, "a1", conv.Input)
	require.Len(t, conv.Results, 3)
	assert.Equal(t, "ᴀ1", conv.Results[0].Text)
	assert.Equal(t, "a①", conv.Results[1].Text)
}

func TestConvert_EmptyInputMakesNoCalls(t *testing.T) {
	fake := &fakeMapper{
		infos: []style.Info{{ID: "x", Name: "X"}},
		apply: func(id, text string) (string, error) { return "changed", nil },
	}
	svc := NewService(fake, nil)

	for _, in := range []string{"", "   ", "\t\n"} {
		conv, err := svc.Convert(context.Background(), in)
		require.NoError(t, err)
		assert.Empty(t, conv.Results)
		assert.NotNil(t, conv.Results, "results should encode as [] not null")
	}
	assert.Empty(t, fake.called)
}

func TestConvert_InputTooLong(t *testing.T) {
	cfg := &config.Config{Convert: config.ConvertConfig{MaxInputLength: 5}}
	svc := NewService(testMapper(), cfg)
	assert.Equal(t, 5, svc.MaxInputLength())

	_, err := svc.Convert(context.Background(), "abcdef")
	assert.ErrorIs(t, err, ErrInputTooLong)

	// Length is counted in characters, not bytes.
	_, err = svc.Convert(context.Background(), "ᴀᴀᴀᴀᴀ")
	assert.NoError(t, err)
}

func TestConvert_IsolatesFailingStyles(t *testing.T) {
	fake := &fakeMapper{
		infos: []style.Info{
			{ID: "ok1", Name: "First"},
			{ID: "boom", Name: "Panics"},
			{ID: "err", Name: "Errors"},
			{ID: "ok2", Name: "Second"},
		},
		apply: func(id, text string) (string, error) {
			switch id {
			case "boom":
				panic("corrupt table")
			case "err":
				return "", errors.New("lookup failed")
			}
			return strings.ToUpper(text) + "-" + id, nil
		},
	}
	svc := NewService(fake, nil)

	conv, err := svc.Convert(context.Background(), "hi")
	require.NoError(t, err)

	assert.Equal(t, []string{"ok1", "boom", "err", "ok2"}, fake.called)
	assert.Equal(t, []string{"boom", "err"}, conv.Failed)
	require.Len(t, conv.Results, 2)
	assert.Equal(t, "HI-ok1", conv.Results[0].Text)
	assert.Equal(t, "HI-ok2", conv.Results[1].Text)
}

func TestConvert_DropsEmptyOutput(t *testing.T) {
	fake := &fakeMapper{
		infos: []style.Info{{ID: "blank", Name: "Blank"}},
		apply: func(id, text string) (string, error) { return "", nil },
	}

	conv, err := NewService(fake, nil).Convert(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, conv.Results)
}

func TestConvert_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(testMapper(), nil).Convert(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvert_Busy(t *testing.T) {
	entered := make(chan struct{})
	unblock := make(chan struct{})
	fake := &fakeMapper{
		infos: []style.Info{{ID: "slow", Name: "Slow"}},
		apply: func(id, text string) (string, error) {
			close(entered)
			<-unblock
			return "done", nil
		},
	}
	cfg := &config.Config{Convert: config.ConvertConfig{MaxConcurrent: 1, MaxWait: 10 * time.Millisecond}}
	svc := NewService(fake, cfg)

	errc := make(chan error, 1)
	go func() {
		_, err := svc.Convert(context.Background(), "abc")
		errc <- err
	}()
	<-entered
	assert.Equal(t, 1, svc.LimiterStatus().Active)

	_, err := svc.Convert(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrTooManyConversions)
	assert.Equal(t, "RATE002", MapError(err).Code)

	close(unblock)
	require.NoError(t, <-errc)
	require.NoError(t, svc.WaitForConversions(context.Background()))
	assert.Equal(t, 0, svc.LimiterStatus().Active)
}

func TestConvertStyle(t *testing.T) {
	svc := NewService(testMapper(), nil)
	ctx := ContextWithSource(context.Background(), SourceAPI)

	res, err := svc.ConvertStyle(ctx, "caps", "abc")
	require.NoError(t, err)
	assert.Equal(t, Result{ID: "caps", Name: "Small Caps", Text: "ᴀʙᴄ"}, res)

	// Unchanged output is still returned for a single style.
	res, err = svc.ConvertStyle(ctx, "digits", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Text)

	_, err = svc.ConvertStyle(ctx, "gothic", "abc")
	assert.ErrorIs(t, err, style.ErrUnknownStyle)

	_, err = svc.ConvertStyle(ctx, "caps", "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestStyles(t *testing.T) {
	svc := NewService(testMapper(), nil)

	assert.Equal(t, []style.Info{
		{ID: "caps", Name: "Small Caps"},
		{ID: "digits", Name: "Circled Digits"},
		{ID: "upper", Name: "Upper"},
	}, svc.Styles())
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ClientIPFromContext(ctx))
	assert.Empty(t, SourceFromContext(ctx))

	ctx = ContextWithClientIP(ctx, "203.0.113.7")
	ctx = ContextWithSource(ctx, SourceWeb)
	assert.Equal(t, "203.0.113.7", ClientIPFromContext(ctx))
	assert.Equal(t, SourceWeb, SourceFromContext(ctx))
}
