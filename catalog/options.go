package catalog

// Option defines a functional option for configuring a Catalog.
type Option func(*Catalog) error

// WithClock sets the time source used for borrow dates and fines.
func WithClock(clock Clock) Option {
	return func(c *Catalog) error {
		if clock == nil {
			return ErrNilClock
		}

		c.clock = clock

		return nil
	}
}

// WithFinePolicy replaces the default 14 days / 0.50 per day policy.
func WithFinePolicy(policy FinePolicy) Option {
	return func(c *Catalog) error {
		if err := policy.Validate(); err != nil {
			return err
		}

		c.finePolicy = policy

		return nil
	}
}

// WithNotifier adds a Notifier. It can be given multiple times; notifiers are called in the order they were added.
func WithNotifier(notifier Notifier) Option {
	return func(c *Catalog) error {
		if notifier == nil {
			return ErrNilNotifier
		}

		c.notifiers = append(c.notifiers, notifier)

		return nil
	}
}

// WithLogger sets the logger for the Catalog.
//
// Info level: borrow and return outcomes with patron, title and duration
// Warn level: notifier failures.
func WithLogger(logger Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			return ErrNilLogger
		}

		c.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Catalog.
// Log records carry the context, which allows trace/span correlation when tracing is enabled.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			return ErrNilLogger
		}

		c.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Catalog.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *Catalog) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		c.metricsCollector = collector

		return nil
	}
}

// WithTracing sets the tracing collector for the Catalog.
func WithTracing(collector TracingCollector) Option {
	return func(c *Catalog) error {
		if collector == nil {
			return ErrNilTracingCollector
		}

		c.tracingCollector = collector

		return nil
	}
}
