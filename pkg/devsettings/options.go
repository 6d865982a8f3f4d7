package devsettings

// Logger receives debug traces of store traffic. *logging.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

type options struct {
	root     string
	logger   Logger
	platform string
}

// Option configures a Manager or Client.
type Option func(*options)

// WithDeveloperKey sets the key path under which per add-in keys are created.
func WithDeveloperKey(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPlatform overrides the platform the gate checks. Defaults to runtime.GOOS.
func WithPlatform(platform string) Option {
	return func(o *options) {
		o.platform = platform
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
