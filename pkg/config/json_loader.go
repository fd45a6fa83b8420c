package config

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

type jsonConfigLoader struct{}

// LoadParams overrides the fields of config that are present in the JSON object.
// Unknown keys and anything following the object are rejected.
func (l jsonConfigLoader) LoadParams(reader io.Reader, config *Params) error {
	if config == nil {
		return gomel.NewConfigError("config parameter is nil")
	}
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return errors.Wrap(err, "parse json params")
	}
	if decoder.More() {
		return gomel.NewConfigError("unexpected data after the params object")
	}
	return nil
}

func (l jsonConfigLoader) StoreParams(writer io.Writer, config *Params) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(*config)
}

// NewJSONConfigLoader returns a new instance of the ParamsLoader type that reads JSON documents.
func NewJSONConfigLoader() ParamsLoader {
	return jsonConfigLoader{}
}

// NewJSONConfigWriter returns a new instance of the ParamsWriter type that writes JSON documents.
func NewJSONConfigWriter() ParamsWriter {
	return jsonConfigLoader{}
}
