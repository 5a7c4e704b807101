package thermo

// ステファンボルツマン定数, W/m2K4
const Sigma = 5.670373e-8

// 熱輸送式で基準とする面のキー
const SurfaceKey = "surface"
