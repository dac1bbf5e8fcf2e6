package psychrolib

// 乾き空気の気体定数 (IP), ft lbf/lb_DryAir/°R
// ASHRAE Handbook - Fundamentals (2017) ch. 1
const rDryAirIP = 53.350

// 乾き空気の気体定数 (SI), J/kg_DryAir/K
// ASHRAE Handbook - Fundamentals (2017) ch. 1
const rDryAirSI = 287.042

// 水蒸気と乾き空気の分子量の比, -
const molWeightRatio = 0.621945

// 比容積の水蒸気補正係数 (= 1 / molWeightRatio), -
const vaporVolumeFactor = 1.607858

// 反復計算の最大回数
const maxIterCount = 100
