package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/strider/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the user-tuned settings stored on disk
type SavedSettings struct {
	MouseSensitivity float32 `json:"mouseSensitivity"`
	SnapTurnStep     float32 `json:"snapTurnStep"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error
// means no settings were saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings writes loaded settings into the startup
// configuration. Runs before the frame loop starts; the configuration is
// immutable afterwards.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.MouseSensitivity > 0 {
		cfg.Mouse.Sensitivity = saved.MouseSensitivity
	}
	if saved.SnapTurnStep > 0 {
		cfg.Turn.StepDegrees = saved.SnapTurnStep
	}
}
