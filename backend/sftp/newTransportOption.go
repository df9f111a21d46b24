package sftp

import (
	"github.com/c2fo/webftp/options"
)

const (
	optionNameOptions = "options"
)

// WithOptions returns optionsOpt implementation of options.Option
//
// WithOptions is used to specify host key, key file and timeout settings for every connection the transport opens.
func WithOptions(opts Options) options.Option[Transport] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(t *Transport) {
	t.options = o.options
}

func (o *optionsOpt) OptionName() string {
	return optionNameOptions
}
