package pagedraw

// InterpretOptions holds configuration for content stream interpretation.
type InterpretOptions struct {
	// Font size hooks. metricsScale adjusts measured text advances,
	// sizeScale adjusts the size carried on emitted SetFont commands.
	metricsScale float64
	sizeScale    float64

	// Host text measurement for fonts outside the built-in tables
	measurer TextMeasurer
}

// defaultOptions returns the default interpretation options.
func defaultOptions() InterpretOptions {
	return InterpretOptions{
		metricsScale: 1.0,
		sizeScale:    1.0,
		measurer:     nil, // nil means built-in width tables only
	}
}

// clone creates a copy of InterpretOptions.
func (o InterpretOptions) clone() InterpretOptions {
	return InterpretOptions{
		metricsScale: o.metricsScale,
		sizeScale:    o.sizeScale,
		measurer:     o.measurer,
	}
}
