package ashrae

// 露点温度 tr, degree C
//
// 露点温度は絶対湿度のみで決まるため、いずれも絶対湿度を求めてから dew で換算する。

func (a air) trTUR(t, ur float64) float64 {
	return a.dew(a.xTUR(t, ur))
}

func (a air) trTX(t, x float64) float64 {
	return a.dew(x)
}

func (a air) trTH(t, h float64) float64 {
	return a.dew(a.xTH(t, h))
}

func (a air) trTVau(t, vau float64) float64 {
	return a.dew(a.xTVau(t, vau))
}

func (a air) trTTbu(t, tbu float64) float64 {
	return a.dew(a.xTTbu(t, tbu))
}

func (a air) trURX(ur, x float64) float64 {
	return a.dew(x)
}

func (a air) trURH(ur, h float64) float64 {
	return a.dew(a.xURH(ur, h))
}

func (a air) trURVau(ur, vau float64) float64 {
	return a.dew(a.xURVau(ur, vau))
}

func (a air) trURTbu(ur, tbu float64) float64 {
	return a.dew(a.xURTbu(ur, tbu))
}

func (a air) trXH(x, h float64) float64 {
	return a.dew(x)
}

func (a air) trXVau(x, vau float64) float64 {
	return a.dew(x)
}

func (a air) trXTbu(x, tbu float64) float64 {
	return a.dew(x)
}

func (a air) trHVau(h, vau float64) float64 {
	return a.dew(a.xHVau(h, vau))
}

func (a air) trHTbu(h, tbu float64) float64 {
	return a.dew(a.xHTbu(h, tbu))
}

func (a air) trVauTbu(vau, tbu float64) float64 {
	return a.dew(a.xVauTbu(vau, tbu))
}
