package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// 地表面のパッチ（デイジーの群落や裸地など）
type Patch struct {
	Label  string  `csv:"label"`  // パッチの名前
	Albedo float64 `csv:"albedo"` // アルベド, -
	Area   float64 `csv:"area"`   // 面積比率, -
}

// パッチCSVに必須の列
var patchColumns = []string{"label", "albedo", "area"}

/*
パッチのCSVファイルを読み込む。

	Args:
	    file_path: CSVファイルのパス（列: label, albedo, area）

	Returns:
	    パッチの一覧
*/
func LoadPatches(file_path string) ([]Patch, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, fmt.Errorf("open patch file: %w", err)
	}
	defer file.Close()

	patches, err := ReadPatches(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file_path, err)
	}
	return patches, nil
}

// io.Reader からパッチを読み込む。
func ReadPatches(r io.Reader) ([]Patch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read patches: %w", err)
	}
	if err := checkPatchHeader(data); err != nil {
		return nil, err
	}

	var pp []*Patch
	if err := gocsv.UnmarshalBytes(data, &pp); err != nil {
		return nil, fmt.Errorf("parse patches: %w", err)
	}

	return derefPatches(pp)
}

// gocsv はヘッダに無いタグを黙って無視するため、先に必須の列を確認する。
func checkPatchHeader(data []byte) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err == io.EOF {
		return ErrNoPatches
	}
	if err != nil {
		return fmt.Errorf("read patch header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, c := range patchColumns {
		if !present[c] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}
	return nil
}

func derefPatches(pp []*Patch) ([]Patch, error) {
	if len(pp) == 0 {
		return nil, ErrNoPatches
	}

	patches := make([]Patch, len(pp))
	for i := range pp {
		patches[i] = *pp[i]
	}
	return patches, nil
}
