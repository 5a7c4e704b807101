package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"daisyearth/cmd/app"
	"daisyearth/internal/report"
)

/*
放射収支の計算を実行する

	Args:
	    cfg: 設定
	    w: パッチごとの計算結果の出力先
*/
func run(cfg app.Config, w io.Writer) error {
	log.Printf("パッチCSVファイルの読み込み開始: `%s`", cfg.PatchesPath)
	patches, err := report.LoadPatches(cfg.PatchesPath)
	if err != nil {
		return err
	}

	log.Printf("計算開始 (patches=%d)", len(patches))
	r, err := report.Build(cfg.Params(), patches)
	if err != nil {
		return err
	}

	log.Printf("planetary_albedo: %g", r.PlanetaryAlbedo)
	log.Printf("bare_ground_area: %g", r.BareGroundArea)
	log.Printf("planetary_emissivity: %g", r.PlanetaryEmissivity)
	log.Printf("effective_temperature: %g [K]", r.EffectiveTemperature)

	return report.Write(w, r.Rows)
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "設定ファイルのパス (.yaml/.yml/.json)")

	var patchesPath string
	flag.StringVar(&patchesPath, "patches", "", "パッチCSVファイルのパス。設定ファイルの値より優先します。")

	flag.Parse()

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.ApplyEnvOverrides(&cfg); err != nil {
		log.Fatal(err)
	}
	if patchesPath != "" {
		cfg.PatchesPath = patchesPath
	}
	if cfg.PatchesPath == "" {
		log.Fatal("パッチCSVファイルが指定されていません。-patches を指定してください。")
	}

	start := time.Now()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}

	log.Printf("elapsed_time: %v", time.Since(start))
}
