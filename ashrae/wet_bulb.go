package ashrae

import "math"

// 湿球温度 tbu, degree C

/*
乾球温度と相対湿度から湿球温度を求める。

	Args:
		t: 乾球温度, degree C
		ur: 相対湿度, %

	Returns:
		湿球温度, degree C

	Notes:
		x(t, tbu) = x(t, ur) をニュートン法で解く。湿球温度は乾球温度を超えない。
*/
func (a air) tbuTUR(t, ur float64) float64 {
	x := a.xTUR(t, ur)
	t0 := t - t*(100.0-ur)/100.0*0.5

	n := newton{step: 0.001, tol: 1e-5, lo: math.Inf(-1), hi: t, maxIter: 100}
	return n.solve(func(tbu float64) float64 { return a.xTTbu(t, tbu) - x }, t0)
}

func (a air) tbuTX(t, x float64) float64 {
	return a.tbuTUR(t, a.urTX(t, x))
}

func (a air) tbuTH(t, h float64) float64 {
	return a.tbuTUR(t, a.urTH(t, h))
}

func (a air) tbuTVau(t, vau float64) float64 {
	return a.tbuTUR(t, a.urTVau(t, vau))
}

func (a air) tbuTTr(t, tr float64) float64 {
	return a.tbuTX(t, a.xDew(tr))
}

func (a air) tbuURX(ur, x float64) float64 {
	return a.tbuTUR(a.tURX(ur, x), ur)
}

func (a air) tbuURH(ur, h float64) float64 {
	return a.tbuTUR(a.tURH(ur, h), ur)
}

func (a air) tbuURVau(ur, vau float64) float64 {
	return a.tbuTUR(a.tURVau(ur, vau), ur)
}

func (a air) tbuURTr(ur, tr float64) float64 {
	return a.tbuTUR(a.tURX(ur, a.xDew(tr)), ur)
}

func (a air) tbuXH(x, h float64) float64 {
	return a.tbuTX(a.tXH(x, h), x)
}

func (a air) tbuXVau(x, vau float64) float64 {
	return a.tbuTX(a.tXVau(x, vau), x)
}

func (a air) tbuXTr(x, tr float64) float64 {
	return math.NaN()
}

func (a air) tbuHVau(h, vau float64) float64 {
	return a.tbuTH(a.tHVau(h, vau), h)
}

func (a air) tbuHTr(h, tr float64) float64 {
	x := a.xDew(tr)
	return a.tbuTX(a.tXH(x, h), x)
}

func (a air) tbuVauTr(vau, tr float64) float64 {
	x := a.xDew(tr)
	return a.tbuTX(a.tXVau(x, vau), x)
}
