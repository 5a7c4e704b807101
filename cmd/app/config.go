package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"daisyearth/internal/report"
)

// 太陽定数, W/m2
const defaultInsolation = 1367.0

// 熱輸送係数, K
const defaultTransferCoefficient = 20.0

// nil のフィールドは未指定として扱う。0 は有効な値（夜側、熱輸送なし）。
type Config struct {
	Insolation          *float64 `json:"insolation" yaml:"insolation"`
	Emissivity          *float64 `json:"emissivity" yaml:"emissivity"` // 省略時は黒体
	TransferCoefficient *float64 `json:"transfer_coefficient" yaml:"transfer_coefficient"`
	PatchesPath         string   `json:"patches" yaml:"patches"`
}

/*
設定ファイルを読み込む。

	Args:
	    path: 設定ファイルのパス (.yaml/.yml/.json)。空の場合は既定値のみ。

	Returns:
	    既定値を補った設定

	Notes:
	    パスを指定したのにファイルが無い場合はエラーとする。
*/
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := decodeConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func decodeConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Insolation == nil {
		v := defaultInsolation
		cfg.Insolation = &v
	}
	if cfg.TransferCoefficient == nil {
		v := defaultTransferCoefficient
		cfg.TransferCoefficient = &v
	}
}

func envFloat(key string) (*float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &f, nil
}

func ApplyEnvOverrides(cfg *Config) error {
	for _, o := range []struct {
		key string
		dst **float64
	}{
		{"DAISYEARTH_INSOLATION", &cfg.Insolation},
		{"DAISYEARTH_EMISSIVITY", &cfg.Emissivity},
		{"DAISYEARTH_TRANSFER_COEFFICIENT", &cfg.TransferCoefficient},
	} {
		f, err := envFloat(o.key)
		if err != nil {
			return err
		}
		if f != nil {
			*o.dst = f
		}
	}
	if v := os.Getenv("DAISYEARTH_PATCHES"); v != "" {
		cfg.PatchesPath = v
	}
	return nil
}

// LoadConfig を通した設定であること（Insolation, TransferCoefficient が nil でない）を前提とする。
func (c Config) Params() report.Params {
	return report.Params{
		Insolation:          *c.Insolation,
		Emissivity:          c.Emissivity,
		TransferCoefficient: *c.TransferCoefficient,
	}
}
