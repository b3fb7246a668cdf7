package ashrae

import "math"

// 比エンタルピー h, kJ/kgDA (0 degree C の乾き空気を基準とする)

/*
乾球温度と絶対湿度から比エンタルピーを計算する。

	Args:
		t: 乾球温度, degree C
		x: 絶対湿度, kg/kgDA

	Returns:
		比エンタルピー, kJ/kgDA
*/
func (a air) hTX(t, x float64) float64 {
	return cpa*t + x*(lambda+cpv*t)
}

func (a air) hTUR(t, ur float64) float64 {
	return a.hTX(t, a.xTUR(t, ur))
}

func (a air) hTVau(t, vau float64) float64 {
	return a.hTX(t, a.xTVau(t, vau))
}

func (a air) hTTbu(t, tbu float64) float64 {
	return a.hTX(t, a.xTTbu(t, tbu))
}

func (a air) hTTr(t, tr float64) float64 {
	return a.hTX(t, a.xDew(tr))
}

func (a air) hURX(ur, x float64) float64 {
	return a.hTX(a.tURX(ur, x), x)
}

func (a air) hURVau(ur, vau float64) float64 {
	return a.hTUR(a.tURVau(ur, vau), ur)
}

/*
相対湿度と湿球温度から比エンタルピーを求める。

	Notes:
		湿球温度における飽和空気の比エンタルピーを初期値として
		tbu(ur, h) = tbu をニュートン法で解く。
*/
func (a air) hURTbu(ur, tbu float64) float64 {
	h0 := a.hTX(tbu, a.xsat(tbu))
	n := newton{step: 0.01, tol: 1e-5, lo: -100, hi: 400, maxIter: 100}
	return n.solve(func(h float64) float64 { return a.tbuURH(ur, h) - tbu }, h0)
}

func (a air) hURTr(ur, tr float64) float64 {
	return a.hURX(ur, a.xDew(tr))
}

func (a air) hXVau(x, vau float64) float64 {
	return a.hTX(a.tXVau(x, vau), x)
}

// 湿球温度の式を t について解いて比エンタルピーを求める。
func (a air) hXTbu(x, tbu float64) float64 {
	aa := (lambda-(cpw-cpv)*tbu)*a.xsat(tbu) + cpa*tbu
	b := lambda - cpw*tbu
	t := (aa - x*b) / (x*cpv + cpa)
	return a.hTX(t, x)
}

func (a air) hXTr(x, tr float64) float64 {
	return math.NaN()
}

func (a air) hVauTbu(vau, tbu float64) float64 {
	return a.hTTbu(a.tVauTbu(vau, tbu), tbu)
}

func (a air) hVauTr(vau, tr float64) float64 {
	return a.hXVau(a.xDew(tr), vau)
}

func (a air) hTbuTr(tbu, tr float64) float64 {
	return a.hXTbu(a.xDew(tr), tbu)
}
