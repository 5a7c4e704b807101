package thermo

import (
	"fmt"
	"math"
)

/*
アルベド（反射率）から放射率を計算する。

	Args:
	    albedo: アルベド, -

	Returns:
	    放射率, -

	Notes:
	    範囲のチェックは行わない。[0,1] の外の値もそのまま計算する。
*/
func Emissivity(albedo float64) float64 {
	return 1.0 - albedo
}

/*
ステファン・ボルツマンの法則により黒体の放射量を計算する。

	Args:
	    temperature: 温度, K

	Returns:
	    放射量, W/m2

	Notes:
	    F = sigma * T ** 4
*/
func Radiance(temperature float64) float64 {
	return Sigma * math.Pow(temperature, 4.0)
}

/*
ステファン・ボルツマンの法則により灰色体の放射量を計算する。

	Args:
	    temperature: 温度, K
	    emissivity: 放射率, -

	Returns:
	    放射量, W/m2

	Notes:
	    F = epsilon * sigma * T ** 4
*/
func RadianceWithEmissivity(temperature, emissivity float64) float64 {
	return emissivity * Sigma * math.Pow(temperature, 4.0)
}

/*
黒体の放射量から温度を計算する。

	Args:
	    radiance: 放射量, W/m2

	Returns:
	    温度, K

	Notes:
	    T = (F / sigma) ** 1/4
	    放射量が負の場合は NaN を返す。
*/
func Temperature(radiance float64) float64 {
	return math.Pow(radiance/Sigma, 0.25)
}

/*
灰色体の放射量から温度を計算する。

	Args:
	    radiance: 放射量, W/m2
	    emissivity: 放射率, -

	Returns:
	    温度, K

	Notes:
	    T = (F / epsilon / sigma) ** 1/4
*/
func TemperatureWithEmissivity(radiance, emissivity float64) float64 {
	return math.Pow(radiance/emissivity/Sigma, 0.25)
}

/*
放射平衡における有効温度を計算する。

	Args:
	    insolation: 日射量, W/m2
	    albedo: アルベド, -

	Returns:
	    有効温度, K

	Notes:
	    入射した日射のうち albedo の分は反射され、1 - albedo の分が吸収される。
	    吸収した日射と黒体として射出する放射が釣り合う。
	    S * (1 - alpha) = sigma * T ** 4
*/
func EffectiveTemperature(insolation, albedo float64) float64 {
	return math.Pow(insolation*(1.0-albedo)/Sigma, 0.25)
}

/*
放射率を考慮して放射平衡における有効温度を計算する。

	Args:
	    insolation: 日射量, W/m2
	    albedo: アルベド, -
	    emissivity: 放射率, -

	Returns:
	    有効温度, K

	Notes:
	    S * (1 - alpha) = epsilon * sigma * T ** 4
*/
func EffectiveTemperatureWithEmissivity(insolation, albedo, emissivity float64) float64 {
	return math.Pow(insolation*(1.0-albedo)/emissivity/Sigma, 0.25)
}

/*
面の間の相対的な熱輸送を計算する。

	Args:
	    transfer_coefficient: 熱輸送係数
	    albedos: 面の名前をキーとするアルベド, -
	    recipient: 熱を受け取る面の名前

	Returns:
	    熱輸送量

	Notes:
	    albedos には SurfaceKey と recipient の両方が必要。
*/
func HeatTransfer(transferCoefficient float64, albedos map[string]float64, recipient string) (float64, error) {
	a_surface, ok := albedos[SurfaceKey]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, SurfaceKey)
	}
	a_recipient, ok := albedos[recipient]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, recipient)
	}

	return transferCoefficient * (a_surface - a_recipient), nil
}
