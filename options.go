package txf

import (
	"encoding/binary"
	"io"
	"os"
)

// Option configures encoding, decoding and export.
//
// Example:
//
//	// Big-endian files for a console runtime
//	err := txf.Export(fonts, cfg, "out.txf", txf.WithByteOrder(binary.BigEndian))
type Option func(*options)

// CreateFunc opens an output file for writing.
type CreateFunc func(path string) (io.WriteCloser, error)

// options holds optional configuration.
type options struct {
	order  binary.ByteOrder
	create CreateFunc
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		order:  binary.LittleEndian,
		create: createFile,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// createFile is the default CreateFunc.
func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// WithByteOrder sets the byte order of every multi-byte field.
// Default: binary.LittleEndian. A nil order is ignored.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

// WithCreate replaces the function Export uses to open output files.
// A nil function is ignored.
func WithCreate(fn CreateFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.create = fn
		}
	}
}
