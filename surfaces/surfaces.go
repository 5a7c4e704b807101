package surfaces

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
他の面のアルベドの残りとして地面のアルベドを計算する。

	Args:
	    albedos: 地面以外の面のアルベド, -, [i]

	Returns:
	    地面のアルベド, -

	Notes:
	    1 - sum(albedos)
	    合計が [0,1] に収まるかどうかは確認しない。
*/
func Ground(albedos []float64) float64 {
	return 1.0 - floats.Sum(albedos)
}

/*
惑星全体の平均アルベドを計算する。

	Args:
	    albedos: 面iのアルベド, -, [i]
	    areas: 面iの面積比率, -, [i]

	Returns:
	    惑星の平均アルベド, -
*/
func Planetary(albedos, areas []float64) (float64, error) {
	if len(albedos) != len(areas) {
		return 0, fmt.Errorf("%w: %d albedos, %d areas", ErrArgumentMismatch, len(albedos), len(areas))
	}

	return floats.Dot(albedos, areas), nil
}

// Planetary の mat.Vector 版
func PlanetaryVec(albedos, areas mat.Vector) (float64, error) {
	if albedos.Len() != areas.Len() {
		return 0, fmt.Errorf("%w: %d albedos, %d areas", ErrArgumentMismatch, albedos.Len(), areas.Len())
	}
	if albedos.Len() == 0 {
		return 0, nil
	}

	return mat.Dot(albedos, areas), nil
}
