package config

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

type tomlConfigLoader struct{}

// LoadParams overrides the fields of config that are present in the TOML document.
// Fields missing from the document keep their previous values, so config is usually
// initialized with NewDefaultParams first. Unknown keys are rejected.
func (l tomlConfigLoader) LoadParams(reader io.Reader, config *Params) error {
	if config == nil {
		return gomel.NewConfigError("config parameter is nil")
	}
	meta, err := toml.NewDecoder(reader).Decode(config)
	if err != nil {
		return errors.Wrap(err, "parse toml params")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return gomel.NewConfigError("unknown field " + undecoded[0].String())
	}
	return nil
}

func (l tomlConfigLoader) StoreParams(writer io.Writer, config *Params) error {
	return toml.NewEncoder(writer).Encode(*config)
}

// NewTOMLConfigLoader returns a new instance of the ParamsLoader type that reads TOML documents.
func NewTOMLConfigLoader() ParamsLoader {
	return tomlConfigLoader{}
}

// NewTOMLConfigWriter returns a new instance of the ParamsWriter type that writes TOML documents.
func NewTOMLConfigWriter() ParamsWriter {
	return tomlConfigLoader{}
}
