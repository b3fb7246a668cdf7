package ashrae

import (
	"math"
)

/*
飽和水蒸気圧を計算する。

	Args:
		t: 空気温度, degree C

	Returns:
		飽和水蒸気圧, kPa

	Notes:
		ASHRAE Fundamentals 1997, Hyland-Wexler
		0 degree C 未満は氷面に対する値
*/
func Psat(t float64) float64 {
	// 絶対温度
	tk := t + kelvin

	var lnPs float64
	if t >= 0.0 {
		const c8 = -5800.2206
		const c9 = 1.3914993
		const c10 = -0.048640239
		const c11 = 0.000041764768
		const c12 = -0.000000014452093
		const c13 = 6.5459673
		lnPs = c8/tk + c9 + c10*tk + c11*tk*tk + c12*tk*tk*tk + c13*math.Log(tk)
	} else {
		const c1 = -5674.5359
		const c2 = 6.3925247
		const c3 = -0.009677843
		const c4 = 0.00000062215701
		const c5 = 0.0000000020747825
		const c6 = -0.0000000000009484024
		const c7 = 4.1635019
		lnPs = c1/tk + c2 + c3*tk + c4*tk*tk + c5*tk*tk*tk + c6*tk*tk*tk*tk + c7*math.Log(tk)
	}

	return math.Exp(lnPs) / 1000.0
}

/*
飽和水蒸気圧から飽和温度を求める。

	Args:
		p: 飽和水蒸気圧, kPa

	Returns:
		飽和温度, degree C

	Notes:
		Magnus 式の逆関数を初期値として Psat をニュートン法で解く。
		p <= 0.0001 kPa では -50 degree C を返す。
*/
func TPsat(p float64) float64 {
	if p <= 0.0001 {
		return -50.0
	}

	lnP := math.Log(p / 0.61078)
	t0 := 237.3 * lnP / (17.27 - lnP)

	n := newton{step: 0.001, tol: 1e-5, lo: math.Inf(-1), hi: math.Inf(1), maxIter: 100}
	return n.solve(func(t float64) float64 { return Psat(t) - p }, t0)
}

/*
大気圧を求める。

	Args:
		altitude: 標高, m

	Returns:
		大気圧, kPa
*/
func PressureAt(altitude float64) float64 {
	return 101.325 * math.Pow(1.0-2.25577e-5*altitude, 5.2559)
}

// XSat returns the saturation humidity ratio at t (degree C) and p (kPa).
func XSat(t, p float64) float64 {
	return air{p: p}.xsat(t)
}

// air is moist air at a fixed atmospheric pressure p, kPa.
type air struct {
	p float64
}

/*
飽和絶対湿度を計算する。

	Args:
		t: 空気温度, degree C

	Returns:
		飽和絶対湿度, kg/kgDA

	Notes:
		飽和水蒸気圧が大気圧に達する温度 (沸点) 以上では 9.999 を返す。
*/
func (a air) xsat(t float64) float64 {
	ps := Psat(t)
	if ps >= a.p {
		return 9.999
	}
	return rav * ps / (a.p - ps)
}

// 露点温度における絶対湿度, kg/kgDA
func (a air) xDew(tr float64) float64 {
	return a.xTUR(tr, 100)
}

// 絶対湿度から露点温度, degree C
func (a air) dew(x float64) float64 {
	return a.tURX(100, x)
}
