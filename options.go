package gui

// Option configures a widget call. Widgets read options through typed keys,
// so new widgets can define their own keys without touching this file:
//
//	var OptPulse = gui.NewOptKey("pulse", false)
//
//	func WithPulse() gui.Option { return gui.WithOpt(OptPulse, true) }
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed option name with a default value.
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey declares an option key.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key's name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the value used when the option is absent.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt builds an Option that sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt reads key from o, falling back to the key's default.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

// itemLabel names a widget in its ItemResponse: the label, or the WithID
// value for unlabeled widgets.
func itemLabel(label string, o options) string {
	if label == "" {
		return GetOpt(o, OptID)
	}
	return label
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// RangeValue is an inclusive numeric range.
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

// Clamp limits v to the range when one is set.
func (r RangeValue) Clamp(v float32) float32 {
	if !r.HasRange {
		return v
	}
	return clampf(v, r.Min, r.Max)
}

// Common options.
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// Numeric widget options.
var (
	OptFormat    = NewOptKey("format", "")
	OptStep      = NewOptKey[float32]("step", 0)
	OptRange     = NewOptKey("range", RangeValue{})
	OptDragSpeed = NewOptKey[float32]("dragSpeed", 0)
	OptPrefix    = NewOptKey("prefix", "")
	OptSuffix    = NewOptKey("suffix", "")
)

// Progress bar options.
var (
	OptShowPercentage = NewOptKey("showPercentage", false)
	OptAnimate        = NewOptKey("animate", false)
	OptOverlayText    = NewOptKey("overlayText", "")
)

// Color editor options.
var (
	OptNoAlpha = NewOptKey("noAlpha", false)
)

// WithID overrides the label used for ID generation.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled draws the widget disabled and ignores its input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets the widget width in pixels.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets the widget height in pixels.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithFormat sets the fmt verb used to display numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps values to multiples of step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithRange clamps values to [minVal, maxVal].
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithDragSpeed sets how many units a drag changes per pixel of mouse motion.
func WithDragSpeed(speed float32) Option { return WithOpt(OptDragSpeed, speed) }

// WithPrefix is drawn before a numeric value.
func WithPrefix(prefix string) Option { return WithOpt(OptPrefix, prefix) }

// WithSuffix is drawn after a numeric value, e.g. a unit.
func WithSuffix(suffix string) Option { return WithOpt(OptSuffix, suffix) }

// WithShowPercentage prints the progress as a percentage inside the bar.
func WithShowPercentage() Option { return WithOpt(OptShowPercentage, true) }

// WithAnimate pulses the progress bar fill.
func WithAnimate(animate bool) Option { return WithOpt(OptAnimate, animate) }

// WithOverlayText prints custom text inside the progress bar.
func WithOverlayText(text string) Option { return WithOpt(OptOverlayText, text) }

// WithNoAlpha hides the alpha channel in the color editor.
func WithNoAlpha() Option { return WithOpt(OptNoAlpha, true) }
