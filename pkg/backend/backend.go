package backend

// Backend loads realm mappings from a settings store.
type Backend interface {
	// Load returns the realm named realm, or every realm keyed by name when
	// realm is empty. A non-nil key decrypts `encrypted-` fields.
	Load(realm string, key []byte) (map[string]any, error)
}

// Logger receives debug traces from backends. It never sees keys or values.
type Logger interface {
	Debugf(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

type options struct {
	checkPermissions bool
	log              Logger
}

// Option configures a backend at construction.
type Option func(*options)

// WithCheckPermissions rejects settings files readable by group or others.
func WithCheckPermissions(check bool) Option {
	return func(o *options) {
		o.checkPermissions = check
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(log Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
