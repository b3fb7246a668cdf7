package ashrae

import "math"

// 比容積 vau, m3/kgDA

/*
乾球温度と絶対湿度から比容積を計算する。

	Args:
		t: 乾球温度, degree C
		x: 絶対湿度, kg/kgDA

	Returns:
		比容積, m3/kgDA
*/
func (a air) vauTX(t, x float64) float64 {
	return ra * (t + kelvin) * (1.0 + x/rav) / a.p
}

func (a air) vauTUR(t, ur float64) float64 {
	return a.vauTX(t, a.xTUR(t, ur))
}

func (a air) vauTH(t, h float64) float64 {
	return a.vauTX(t, a.xTH(t, h))
}

func (a air) vauTTbu(t, tbu float64) float64 {
	return a.vauTX(t, a.xTTbu(t, tbu))
}

func (a air) vauTTr(t, tr float64) float64 {
	return a.vauTX(t, a.xDew(tr))
}

func (a air) vauURX(ur, x float64) float64 {
	return a.vauTX(a.tURX(ur, x), x)
}

func (a air) vauURH(ur, h float64) float64 {
	return a.vauTH(a.tURH(ur, h), h)
}

func (a air) vauURTbu(ur, tbu float64) float64 {
	h := a.hURTbu(ur, tbu)
	t := a.tURH(ur, h)
	return a.vauTH(t, h)
}

func (a air) vauURTr(ur, tr float64) float64 {
	return a.vauURX(ur, a.xDew(tr))
}

func (a air) vauXH(x, h float64) float64 {
	return a.vauTX(a.tXH(x, h), x)
}

func (a air) vauXTbu(x, tbu float64) float64 {
	return a.vauTX(a.tXTbu(x, tbu), x)
}

func (a air) vauXTr(x, tr float64) float64 {
	return math.NaN()
}

func (a air) vauHTbu(h, tbu float64) float64 {
	return a.vauTH(a.tHTbu(h, tbu), h)
}

func (a air) vauHTr(h, tr float64) float64 {
	return a.vauXH(a.xDew(tr), h)
}

func (a air) vauTbuTr(tbu, tr float64) float64 {
	return a.vauXTbu(a.xDew(tr), tbu)
}
