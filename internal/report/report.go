package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"

	"daisyearth/surfaces"
	"daisyearth/thermo"
)

type Params struct {
	Insolation          float64  // 日射量, W/m2
	Emissivity          *float64 // 放射率, -（nil の場合は黒体）
	TransferCoefficient float64  // 熱輸送係数, K
}

// パッチごとの計算結果
type Row struct {
	Label            string  `csv:"label"`
	Albedo           float64 `csv:"albedo"`
	Area             float64 `csv:"area"`
	LocalTemperature float64 `csv:"local_temperature"` // パッチ単独の放射平衡温度, K
	HeatTransfer     float64 `csv:"heat_transfer"`     // 惑星平均からの熱輸送, K
	Temperature      float64 `csv:"temperature"`       // 熱輸送を考慮したパッチの温度, K
	Radiance         float64 `csv:"radiance"`          // パッチの射出放射量, W/m2
}

type Report struct {
	PlanetaryAlbedo      float64 // 惑星の平均アルベド, -
	BareGroundArea       float64 // どのパッチにも覆われていない面積比率, -
	PlanetaryEmissivity  float64 // 惑星の平均アルベドに対応する放射率, -
	EffectiveTemperature float64 // 惑星の有効温度, K
	Rows                 []Row
}

func (p Params) effectiveTemperature(albedo float64) float64 {
	if p.Emissivity != nil {
		return thermo.EffectiveTemperatureWithEmissivity(p.Insolation, albedo, *p.Emissivity)
	}
	return thermo.EffectiveTemperature(p.Insolation, albedo)
}

func (p Params) radiance(temperature float64) float64 {
	if p.Emissivity != nil {
		return thermo.RadianceWithEmissivity(temperature, *p.Emissivity)
	}
	return thermo.Radiance(temperature)
}

/*
パッチの一覧から惑星全体とパッチごとの放射収支を計算する。

	Args:
	    params: 日射量・放射率・熱輸送係数
	    patches: パッチの一覧

	Returns:
	    計算結果

	Notes:
	    パッチiの温度は T_i = q * (A - A_i) + T_e とする。
	    A は惑星の平均アルベド、T_e は惑星の有効温度。
*/
func Build(params Params, patches []Patch) (*Report, error) {
	if len(patches) == 0 {
		return nil, ErrNoPatches
	}

	n := len(patches)
	albedos := make([]float64, n)
	areas := make([]float64, n)
	seen := make(map[string]struct{}, n)
	for i, p := range patches {
		switch {
		case p.Label == "":
			return nil, fmt.Errorf("%w: row %d", ErrEmptyLabel, i+1)
		case p.Label == thermo.SurfaceKey:
			return nil, fmt.Errorf("%w: %q", ErrReservedLabel, p.Label)
		}
		if _, ok := seen[p.Label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, p.Label)
		}
		seen[p.Label] = struct{}{}

		albedos[i] = p.Albedo
		areas[i] = p.Area
	}

	a_p, err := surfaces.PlanetaryVec(mat.NewVecDense(n, albedos), mat.NewVecDense(n, areas))
	if err != nil {
		return nil, err
	}

	theta_e := params.effectiveTemperature(a_p)

	r := &Report{
		PlanetaryAlbedo:      a_p,
		BareGroundArea:       surfaces.Ground(areas),
		PlanetaryEmissivity:  thermo.Emissivity(a_p),
		EffectiveTemperature: theta_e,
		Rows:                 make([]Row, n),
	}

	for i, p := range patches {
		q, err := thermo.HeatTransfer(params.TransferCoefficient, map[string]float64{
			thermo.SurfaceKey: a_p,
			p.Label:           p.Albedo,
		}, p.Label)
		if err != nil {
			return nil, err
		}

		theta_i := theta_e + q
		r.Rows[i] = Row{
			Label:            p.Label,
			Albedo:           p.Albedo,
			Area:             p.Area,
			LocalTemperature: params.effectiveTemperature(p.Albedo),
			HeatTransfer:     q,
			Temperature:      theta_i,
			Radiance:         params.radiance(theta_i),
		}
	}

	return r, nil
}

// パッチごとの計算結果をCSVで書き出す。
func Write(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
