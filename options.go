package squeeze

// config holds per-call transform settings
type config struct {
	level    *int // nil means codec default
	sizeHint int  // expected output length, 0 = unknown
}

// Option configures a transform or session
type Option interface {
	apply(*config)
}

// funcOpt wraps a function as an Option
type funcOpt func(*config)

func (f funcOpt) apply(c *config) {
	f(c)
}

// WithLevel sets the compression level. Unset, the codec's default is
// used. Out-of-range levels fail with ErrInvalidLevel before any I/O.
func WithLevel(level int) Option {
	return funcOpt(func(c *config) {
		lvl := level
		c.level = &lvl
	})
}

// WithSizeHint pre-sizes the output allocation when the caller knows
// (or can estimate) the output length. Purely an optimization: output
// still grows past the hint if needed.
func WithSizeHint(n int) Option {
	return funcOpt(func(c *config) {
		c.sizeHint = n
	})
}

// resolve applies opts and validates the level against the codec.
func resolve(c *Codec, opts []Option) (config, error) {
	var cfg config
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.level == nil {
		lvl := c.defaultLevel
		cfg.level = &lvl
	} else if err := c.checkLevel(*cfg.level); err != nil {
		return cfg, err
	}
	return cfg, nil
}
