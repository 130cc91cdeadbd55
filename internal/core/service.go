package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/JonMunkholm/fancyfont/internal/config"
	"github.com/JonMunkholm/fancyfont/internal/logging"
	"github.com/JonMunkholm/fancyfont/internal/style"
)

// Input errors.
var (
	ErrEmptyInput   = errors.New("empty input")
	ErrInputTooLong = errors.New("input too long")
)

// DefaultMaxInputLength applies when no config is supplied.
const DefaultMaxInputLength = 500

// Mapper is the mapping engine as seen by the service. *style.Registry
// satisfies it.
type Mapper interface {
	List() []style.Info
	Apply(id, text string) (string, error)
}

// Service converts text through every registered style.
type Service struct {
	mapper   Mapper
	maxInput int
	limiter  *Limiter
}

// NewService creates a Service over mapper. cfg may be nil.
func NewService(mapper Mapper, cfg *config.Config) *Service {
	maxInput := DefaultMaxInputLength
	var maxConcurrent int
	var maxWait time.Duration
	if cfg != nil {
		if cfg.Convert.MaxInputLength > 0 {
			maxInput = cfg.Convert.MaxInputLength
		}
		maxConcurrent, maxWait = cfg.Convert.MaxConcurrent, cfg.Convert.MaxWait
	}
	return &Service{
		mapper:   mapper,
		maxInput: maxInput,
		limiter:  NewLimiter(maxConcurrent, maxWait),
	}
}

// LimiterStatus reports how many conversions are running.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForConversions blocks until in-flight conversions finish or ctx is
// done. Used during graceful shutdown.
func (s *Service) WaitForConversions(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// Styles returns every style in display order.
func (s *Service) Styles() []style.Info {
	return s.mapper.List()
}

// MaxInputLength returns the longest accepted input, in characters.
func (s *Service) MaxInputLength() int {
	return s.maxInput
}

// Result is one style's rendering of the input.
type Result struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// Conversion is the outcome of running an input through every style.
type Conversion struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Input   string    `json:"input" yaml:"input"`
	Results []Result  `json:"results" yaml:"results"`

	// Failed lists styles that errored or panicked and were skipped.
	Failed []string `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Convert runs text through every style in display order.
//
// The input is trimmed first. Empty input produces an empty conversion
// without consulting any style. A style whose output is empty or equal to
// the input is left out of the results, as is a style that fails; one
// failing style never prevents the others from running.
func (s *Service) Convert(ctx context.Context, text string) (*Conversion, error) {
	text = strings.TrimSpace(text)

	conv := &Conversion{
		ID:      uuid.New(),
		Input:   text,
		Results: []Result{},
	}
	if text == "" {
		return conv, nil
	}
	if err := s.checkLength(text); err != nil {
		return nil, err
	}
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	defer s.limiter.Release()

	logger := logging.WithFields(ctx,
		"conversion_id", conv.ID,
		"source", SourceFromContext(ctx),
		"client_ip", ClientIPFromContext(ctx),
	)

	for _, info := range s.mapper.List() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}

		out, err := s.apply(info.ID, text)
		if err != nil {
			logger.Error("style conversion failed", "style", info.ID, "error", err)
			conv.Failed = append(conv.Failed, info.ID)
			continue
		}
		if out == "" || out == text {
			logger.Debug("style not applicable", "style", info.ID)
			continue
		}

		conv.Results = append(conv.Results, Result{ID: info.ID, Name: info.Name, Text: out})
	}

	logger.Info("conversion completed",
		"chars", utf8.RuneCountInString(text),
		"results", len(conv.Results),
		"failed", len(conv.Failed),
	)

	return conv, nil
}

// ConvertStyle runs text through a single style. Unlike Convert, the
// result is returned even when it equals the input.
func (s *Service) ConvertStyle(ctx context.Context, id, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyInput
	}
	if err := s.checkLength(text); err != nil {
		return Result{}, err
	}
	if err := s.limiter.Acquire(ctx); err != nil {
		return Result{}, fmt.Errorf("convert %s: %w", id, err)
	}
	defer s.limiter.Release()

	name := id
	for _, info := range s.mapper.List() {
		if info.ID == id {
			name = info.Name
			break
		}
	}

	out, err := s.apply(id, text)
	if err != nil {
		return Result{}, fmt.Errorf("convert %s: %w", id, err)
	}

	logging.FromContext(ctx).Debug("style conversion completed",
		"style", id,
		"source", SourceFromContext(ctx),
	)

	return Result{ID: id, Name: name, Text: out}, nil
}

func (s *Service) checkLength(text string) error {
	if n := utf8.RuneCountInString(text); n > s.maxInput {
		return fmt.Errorf("%w: %d characters, limit %d", ErrInputTooLong, n, s.maxInput)
	}
	return nil
}

// apply calls the mapper, turning a panic into an error so a broken table
// only costs its own style.
func (s *Service) apply(id, text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("style %s panicked: %v", id, r)
		}
	}()
	return s.mapper.Apply(id, text)
}
