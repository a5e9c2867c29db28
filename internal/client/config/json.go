package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/dsaccounts/internal/flagx"
	"github.com/dmitrijs2005/dsaccounts/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish an absent key from an explicit value.
type JsonConfig struct {
	StoreDriver         *string         `json:"store_driver"`
	StorePath           *string         `json:"store_path"`
	LandingPage         *string         `json:"landing_page"`
	SignUpRedirectDelay *timex.Duration `json:"signup_redirect_delay"`
	SignInRedirectDelay *timex.Duration `json:"signin_redirect_delay"`
	MessageClearDelay   *timex.Duration `json:"message_clear_delay"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Read and decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.LandingPage, jc.LandingPage)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.SignUpRedirectDelay != nil {
		cfg.SignUpRedirectDelay = jc.SignUpRedirectDelay.Duration
	}
	if jc.SignInRedirectDelay != nil {
		cfg.SignInRedirectDelay = jc.SignInRedirectDelay.Duration
	}
	if jc.MessageClearDelay != nil {
		cfg.MessageClearDelay = jc.MessageClearDelay.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
