package sdk

// DefaultGas is the gas attached to transactions unless overwritten.
const DefaultGas uint64 = 5

// Opt modifies Options.
type Opt func(*Options)

// Defaults returns default Options.
func Defaults() *Options {
	return &Options{Gas: DefaultGas}
}

// Options to modify common transaction fields.
type Options struct {
	Gas uint64
}

// WithGas modifies Gas.
func WithGas(gas uint64) Opt {
	return func(opts *Options) {
		opts.Gas = gas
	}
}
