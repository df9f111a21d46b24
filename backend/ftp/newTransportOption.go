package ftp

import (
	"github.com/c2fo/webftp/backend/ftp/types"
	"github.com/c2fo/webftp/options"
)

const (
	optionNameFTPClient = "ftpclient"
	optionNameOptions   = "options"
)

// WithClient returns clientOpt implementation of options.Option
//
// WithClient is used to explicitly specify a Client to use instead of dialing.  Connect still logs in with it.  It is
// mostly useful in tests.
func WithClient(c types.Client) options.Option[Transport] {
	return &clientOpt{
		client: c,
	}
}

type clientOpt struct {
	client types.Client
}

func (ct *clientOpt) Apply(t *Transport) {
	t.ftpclient = ct.client
}

func (ct *clientOpt) OptionName() string {
	return optionNameFTPClient
}

// WithOptions returns optionsOpt implementation of options.Option
//
// WithOptions is used to specify dial and TLS options for every connection the transport opens.
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
