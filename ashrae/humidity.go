package ashrae

import "math"

// 相対湿度 ur, %

/*
乾球温度と絶対湿度から相対湿度を計算する。

	Args:
		t: 乾球温度, degree C
		x: 絶対湿度, kg/kgDA

	Returns:
		相対湿度, %
*/
func (a air) urTX(t, x float64) float64 {
	ps := Psat(t)
	pv := x * a.p / (rav + x)
	return pv / ps * 100.0
}

func (a air) urTH(t, h float64) float64 {
	return a.urTX(t, a.xTH(t, h))
}

func (a air) urTVau(t, vau float64) float64 {
	return a.urTX(t, a.xTVau(t, vau))
}

func (a air) urTTbu(t, tbu float64) float64 {
	return a.urTX(t, a.xTTbu(t, tbu))
}

func (a air) urTTr(t, tr float64) float64 {
	return a.urTX(t, a.xDew(tr))
}

func (a air) urXH(x, h float64) float64 {
	return a.urTX(a.tXH(x, h), x)
}

func (a air) urXVau(x, vau float64) float64 {
	return a.urTX(a.tXVau(x, vau), x)
}

func (a air) urXTbu(x, tbu float64) float64 {
	return a.urTX(a.tXTbu(x, tbu), x)
}

func (a air) urXTr(x, tr float64) float64 {
	return math.NaN()
}

func (a air) urHVau(h, vau float64) float64 {
	return a.urTH(a.tHVau(h, vau), h)
}

func (a air) urHTbu(h, tbu float64) float64 {
	return a.urTH(a.tHTbu(h, tbu), h)
}

func (a air) urHTr(h, tr float64) float64 {
	return a.urXH(a.xDew(tr), h)
}

func (a air) urVauTbu(vau, tbu float64) float64 {
	return a.urTVau(a.tVauTbu(vau, tbu), vau)
}

func (a air) urVauTr(vau, tr float64) float64 {
	return a.urXVau(a.xDew(tr), vau)
}

func (a air) urTbuTr(tbu, tr float64) float64 {
	return a.urXTbu(a.xDew(tr), tbu)
}

// 絶対湿度 x, kg/kgDA

/*
乾球温度と相対湿度から絶対湿度を計算する。

	Args:
		t: 乾球温度, degree C
		ur: 相対湿度, %

	Returns:
		絶対湿度, kg/kgDA
*/
func (a air) xTUR(t, ur float64) float64 {
	pv := ur / 100.0 * Psat(t)
	return rav * pv / (a.p - pv)
}

func (a air) xTH(t, h float64) float64 {
	return (h - cpa*t) / (lambda + cpv*t)
}

func (a air) xTVau(t, vau float64) float64 {
	return (vau*a.p/(ra*(t+kelvin)) - 1.0) * rav
}

/*
乾球温度と湿球温度から絶対湿度を計算する。

	Notes:
		ASHRAE Fundamentals 1997 式(35)
*/
func (a air) xTTbu(t, tbu float64) float64 {
	xs := a.xsat(tbu)
	return ((lambda-(cpw-cpv)*tbu)*xs - cpa*(t-tbu)) / (lambda + cpv*t - cpw*tbu)
}

func (a air) xTTr(t, tr float64) float64 {
	return a.xDew(tr)
}

func (a air) xURH(ur, h float64) float64 {
	return a.xTH(a.tURH(ur, h), h)
}

func (a air) xURVau(ur, vau float64) float64 {
	return a.xTUR(a.tURVau(ur, vau), ur)
}

func (a air) xURTbu(ur, tbu float64) float64 {
	return a.xURH(ur, a.hURTbu(ur, tbu))
}

func (a air) xURTr(ur, tr float64) float64 {
	return a.xDew(tr)
}

func (a air) xHVau(h, vau float64) float64 {
	return a.xTH(a.tHVau(h, vau), h)
}

func (a air) xHTbu(h, tbu float64) float64 {
	return a.xTH(a.tHTbu(h, tbu), h)
}

func (a air) xHTr(h, tr float64) float64 {
	return a.xDew(tr)
}

func (a air) xVauTbu(vau, tbu float64) float64 {
	return a.xTVau(a.tVauTbu(vau, tbu), vau)
}

func (a air) xVauTr(vau, tr float64) float64 {
	return a.xDew(tr)
}

func (a air) xTbuTr(tbu, tr float64) float64 {
	return a.xDew(tr)
}
