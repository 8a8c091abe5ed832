package database

import (
	"fmt"
	"time"

	"github.com/gaborage/stmtkit/config"
	"github.com/gaborage/stmtkit/database/types"
	"github.com/gaborage/stmtkit/logger"
)

// Factory creates statements bound to one vendor with the configured row limit
// defaults, and logs every statement it renders.
type Factory struct {
	vendor       types.Vendor
	defaultLimit int
	maxLimit     int
	log          logger.Logger
}

// NewFactory creates a Factory from the statement section of the configuration.
// A nil cfg selects the generic vendor without limits. The vendor is validated
// here so that statements created later cannot fail on it.
func NewFactory(cfg *config.StatementConfig, log logger.Logger) (*Factory, error) {
	if cfg == nil {
		cfg = &config.StatementConfig{}
	}

	vendor, err := types.ParseVendor(cfg.Vendor)
	if err != nil {
		return nil, err
	}
	if cfg.Limit.Default < 0 {
		return nil, fmt.Errorf("default limit %d: %w", cfg.Limit.Default, types.ErrNegativeLimit)
	}
	if cfg.Limit.Max < 0 {
		return nil, fmt.Errorf("max limit %d: %w", cfg.Limit.Max, types.ErrNegativeLimit)
	}

	f := &Factory{
		vendor:       vendor,
		defaultLimit: cfg.Limit.Default,
		maxLimit:     cfg.Limit.Max,
		log:          log,
	}
	if err := f.ValidateLimit(f.defaultLimit); err != nil {
		return nil, fmt.Errorf("default limit: %w", err)
	}

	return f, nil
}

// Vendor returns the dialect of statements created by this factory.
func (f *Factory) Vendor() types.Vendor {
	return f.vendor
}

// DefaultLimit returns the limit applied to new statements. Zero means unbounded.
func (f *Factory) DefaultLimit() int {
	return f.defaultLimit
}

// MaxLimit returns the largest accepted limit. Zero means no maximum.
func (f *Factory) MaxLimit() int {
	return f.maxLimit
}

// New creates a statement selecting from target with the factory vendor and default
// limit applied. Options run afterwards and may override the vendor.
func (f *Factory) New(target string, opts ...Option) (*Statement, error) {
	opts = append([]Option{WithVendor(f.vendor)}, opts...)
	s, err := NewStatement(target, opts...)
	if err != nil {
		return nil, err
	}
	if f.defaultLimit > 0 {
		s.Limit(f.defaultLimit)
	}
	return s, nil
}

// ValidateLimit reports whether limit is acceptable under the configured maximum.
// Zero is always accepted.
func (f *Factory) ValidateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("limit %d: %w", limit, types.ErrNegativeLimit)
	}
	if f.maxLimit > 0 && limit > f.maxLimit {
		return fmt.Errorf("limit %d (max %d): %w", limit, f.maxLimit, types.ErrLimitExceeded)
	}
	return nil
}

// Render renders b and logs the outcome. Statements created by this package also
// log their projection, predicate count and row bounds.
func (f *Factory) Render(b types.StatementBuilder) (string, error) {
	vendor := f.vendor
	if v, ok := b.(interface{ Vendor() types.Vendor }); ok {
		vendor = v.Vendor()
	}

	start := time.Now()
	sql, err := b.Render()
	elapsed := time.Since(start)

	if err != nil {
		if f.log != nil {
			f.log.Debug().
				Err(err).
				Str("vendor", vendor).
				Msgf("Statement rendering failed for %s", b.Target())
		}
		return "", err
	}
	if f.log == nil {
		return sql, nil
	}

	event := f.log.Debug().
		Str("target", b.Target()).
		Str("vendor", vendor).
		Bool("oracle", vendor == types.Oracle)
	if s, ok := b.(*Statement); ok {
		limit, offset := s.Bounds()
		event = event.
			Strs("projection", s.Projection()).
			Int("predicates", len(s.predicates)).
			Uint64("limit", limit).
			Uint64("offset", offset)
	}
	event.
		Str("statement", sql).
		Dur("elapsed", elapsed).
		Msg("Statement rendered")
	return sql, nil
}
