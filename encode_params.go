package simulador

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables that override parameters,
// e.g. SCE_YEARS or SCE_FX_SELL.
const EnvPrefix = "SCE_"

// EnvName returns the environment variable overriding field f.
func EnvName(f Field) string { return EnvPrefix + strings.ToUpper(f.Key) }

// DecodeParams reads a YAML parameter set from r. Missing keys keep the value
// they have in base, unknown keys are rejected.
func DecodeParams(r io.Reader, base Params) (Params, error) {
	p := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			// an empty file changes nothing
			return base, nil
		}
		return base, fmt.Errorf("cannot decode parameters: %w", err)
	}
	return p, nil
}

// LoadParams reads the YAML parameter file at path on top of base.
func LoadParams(path string, base Params) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer f.Close()
	p, err := DecodeParams(f, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// EncodeParams writes p as YAML.
func EncodeParams(w io.Writer, p Params) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("cannot encode parameters: %w", err)
	}
	return enc.Close()
}

// ApplyEnv overrides the fields of p for which lookup returns a value. Values
// are read in input unit, percent for rates.
func ApplyEnv(p *Params, lookup func(string) (string, bool)) error {
	var errs ValidationErrors
	for _, f := range Fields {
		v, ok := lookup(EnvName(f))
		if !ok || v == "" {
			continue
		}
		if err := f.ParseInput(p, v); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Reason = EnvName(f) + ": " + verr.Reason
				errs = append(errs, verr)
				continue
			}
			return err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
