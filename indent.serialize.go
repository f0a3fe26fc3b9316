package indent

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// indentationDTO is the minimal external form of an Indentation: only
// the unit and level are retained. Reconstruction goes through
// Of(unit).AtLevel(level) to enable cache re-use for common indentations.
type indentationDTO struct {
	Unit  string `json:"unit" yaml:"unit"`
	Level int    `json:"level" yaml:"level"`
}

// resolve rebuilds the indentation from its external form.
func (dto indentationDTO) resolve() (*Indentation, error) {
	return Of(dto.Unit).AtLevel(dto.Level)
}

// MarshalJSON emits the {unit, level} form.
func (i *Indentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(indentationDTO{Unit: i.Unit(), Level: i.level})
}

// UnmarshalJSON decodes the {unit, level} form into the receiver. The
// receiver shares the resolved instance's cache; use FromJSON to obtain
// the cached instance itself.
func (i *Indentation) UnmarshalJSON(data []byte) error {
	var dto indentationDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return NewDecodeError(err)
	}
	resolved, err := dto.resolve()
	if err != nil {
		return err
	}
	*i = *resolved
	return nil
}

// MarshalYAML emits the {unit, level} form.
func (i *Indentation) MarshalYAML() (any, error) {
	return indentationDTO{Unit: i.Unit(), Level: i.level}, nil
}

// UnmarshalYAML decodes the {unit, level} form into the receiver. The
// receiver shares the resolved instance's cache; use FromYAML to obtain
// the cached instance itself.
func (i *Indentation) UnmarshalYAML(node *yaml.Node) error {
	var dto indentationDTO
	if err := node.Decode(&dto); err != nil {
		return NewDecodeError(err)
	}
	resolved, err := dto.resolve()
	if err != nil {
		return err
	}
	*i = *resolved
	return nil
}

// FromJSON reconstructs an Indentation from its JSON form. Common units
// and levels within their caches resolve to the shared cached instances.
func FromJSON(data []byte) (*Indentation, error) {
	var dto indentationDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, NewDecodeError(err)
	}
	return dto.resolve()
}

// FromYAML reconstructs an Indentation from its YAML form. Common units
// and levels within their caches resolve to the shared cached instances.
func FromYAML(data []byte) (*Indentation, error) {
	var dto indentationDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, NewDecodeError(err)
	}
	return dto.resolve()
}
