package ashrae

// 乾き空気の定圧比熱, kJ/kg K
const cpa = 1.006

// 水蒸気の定圧比熱, kJ/kg K
const cpv = 1.860

// 水の比熱, kJ/kg K
const cpw = 4.186

// 0 degree C における水の蒸発潜熱, kJ/kg
const lambda = 2501.0

// 乾き空気のガス定数, kJ/kg K
const ra = 0.287042

// 乾き空気と水蒸気のガス定数の比 (Ra/Rw)
const rav = 0.621948

// 摂氏から絶対温度への換算
const kelvin = 273.15
