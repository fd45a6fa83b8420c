package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// ParamsLoader is an abstraction for parsing configurations from a given io.Reader instance.
// Loaders override only the fields present in the document, the rest of the Params keep their values.
type ParamsLoader interface {
	// LoadParams parses an instance of the Params type using a given instance of io.Reader.
	LoadParams(io.Reader, *Params) error
}

// ParamsWriter is an abstraction for storing configurations using a given instance of io.Writer.
type ParamsWriter interface {
	// StoreParams outputs a representation of the Params using the provided io.Writer.
	StoreParams(io.Writer, *Params) error
}

// LoadParamsFile reads params from the file at path, choosing the format by its extension.
// The file is applied on top of NewDefaultParams.
func LoadParamsFile(path string) (Params, error) {
	var loader ParamsLoader
	switch ext := filepath.Ext(path); ext {
	case ".json":
		loader = NewJSONConfigLoader()
	case ".toml":
		loader = NewTOMLConfigLoader()
	default:
		return Params{}, gomel.NewConfigError("unsupported params file extension " + ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return Params{}, errors.Wrapf(err, "open params file %s", path)
	}
	defer file.Close()

	params := NewDefaultParams()
	if err := loader.LoadParams(file, &params); err != nil {
		return Params{}, errors.Wrapf(err, "load params file %s", path)
	}
	return params, nil
}
