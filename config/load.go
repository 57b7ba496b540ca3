package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileOverrides mirrors the tunable subset of the startup configuration.
// Pointer fields distinguish "absent" from "explicitly zero".
type FileOverrides struct {
	Mouse struct {
		Sensitivity *float32 `yaml:"sensitivity"`
		PitchLimit  *float32 `yaml:"pitchLimit"`
	} `yaml:"mouse"`
	Locomotion struct {
		MaxSpeed    *float32 `yaml:"maxSpeed"`
		FloatHeight *float32 `yaml:"floatHeight"`
		JumpHeight  *float32 `yaml:"jumpHeight"`
	} `yaml:"locomotion"`
	Turn struct {
		Threshold   *float32 `yaml:"threshold"`
		StepDegrees *float32 `yaml:"stepDegrees"`
		Duration    *float32 `yaml:"duration"`
	} `yaml:"turn"`
}

// LoadFile applies overrides from a YAML file to the global configuration.
// A missing file is not an error; unknown keys are.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ov FileOverrides
	if err := dec.Decode(&ov); err != nil && err != io.EOF {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	apply(&Mouse.Sensitivity, ov.Mouse.Sensitivity)
	apply(&Mouse.PitchLimit, ov.Mouse.PitchLimit)
	apply(&Locomotion.MaxSpeed, ov.Locomotion.MaxSpeed)
	apply(&Locomotion.FloatHeight, ov.Locomotion.FloatHeight)
	apply(&Locomotion.JumpHeight, ov.Locomotion.JumpHeight)
	apply(&Turn.Threshold, ov.Turn.Threshold)
	apply(&Turn.StepDegrees, ov.Turn.StepDegrees)
	apply(&Turn.Duration, ov.Turn.Duration)
	return nil
}

func apply(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}
