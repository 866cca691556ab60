package device

import (
	"fmt"

	ms "github.com/mitchellh/mapstructure"
)

// Config maps parameter names to numeric values. The per-kind default tables
// are Configs; caller overrides are (usually partial) Configs layered on top
// of them at construction time.
type Config map[string]float64

// Merge returns a new Config holding every key of base, with the override's
// value wherever the override defines the same key. Keys only the override
// defines are carried into the result as well. Neither input is modified;
// the default tables are shared package-wide and must never be written to.
func Merge(base, override Config) Config {
	merged := make(Config, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// MissingKeyError reports a configuration field that a device needs but the
// merged configuration does not define. It always indicates a malformed
// override or a regression in a default table.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("device: configuration key %q missing", e.Key)
}

// decodeParams fills a typed parameter struct from cfg. Every struct field
// must be present in cfg; the first absent one is reported as a
// MissingKeyError rather than silently left at zero, since a zero noise
// figure or carrier frequency is physically meaningless.
func decodeParams(cfg Config, out interface{}) error {
	var md ms.Metadata
	dec, err := ms.NewDecoder(&ms.DecoderConfig{
		Metadata:         &md,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]float64(cfg)); err != nil {
		return err
	}
	if len(md.Unset) > 0 {
		return &MissingKeyError{Key: md.Unset[0]}
	}
	return nil
}
