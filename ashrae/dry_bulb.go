package ashrae

import "math"

// 乾球温度 t, degree C

func (a air) tURX(ur, x float64) float64 {
	if ur <= 0 {
		return math.NaN()
	}
	ps := x * a.p / ((ur / 100.0) * (rav + x))
	return TPsat(ps)
}

/*
相対湿度と比エンタルピーから乾球温度を求める。

	Args:
		ur: 相対湿度, %
		h: 比エンタルピー, kJ/kgDA

	Returns:
		乾球温度, degree C

	Notes:
		h = cpa t + x (lambda + cpv t) をニュートン法で解く。
		水蒸気分圧は大気圧の 90% で頭打ちにし、解は -50 - 100 degree C に制限する。
*/
func (a air) tURH(ur, h float64) float64 {
	f := func(t float64) float64 {
		pv := math.Min(ur/100.0*Psat(t), a.p*0.9)
		x := rav * pv / (a.p - pv)
		return cpa*t + x*(lambda+cpv*t) - h
	}
	n := newton{step: 0.001, tol: 1e-5, lo: -50, hi: 100, maxIter: 100}
	return n.solve(f, h/cpa)
}

/*
相対湿度と比容積から乾球温度を求める。

	Notes:
		比容積は温度について単調増加であるため、-50 - 100 degree C を二分法で探索する。
*/
func (a air) tURVau(ur, vau float64) float64 {
	lo, hi := -50.0, 100.0
	mid, old := 0.0, math.Inf(1)

	for i := 0; i < 100; i++ {
		mid = 0.5 * (lo + hi)
		if math.Abs(mid-old) < 1e-5 {
			break
		}

		v := a.vauTUR(mid, ur)
		if math.Abs(v-vau) < 1e-5 {
			break
		}
		if v > vau {
			hi = mid
		} else {
			lo = mid
		}
		old = mid
	}
	return mid
}

func (a air) tURTbu(ur, tbu float64) float64 {
	return a.tURH(ur, a.hURTbu(ur, tbu))
}

func (a air) tURTr(ur, tr float64) float64 {
	return a.tURX(ur, a.xDew(tr))
}

func (a air) tXH(x, h float64) float64 {
	return (h - x*lambda) / (cpa + x*cpv)
}

func (a air) tXVau(x, vau float64) float64 {
	return vau*a.p/(ra*(1+x/rav)) - kelvin
}

func (a air) tXTbu(x, tbu float64) float64 {
	return a.tXH(x, a.hXTbu(x, tbu))
}

// 絶対湿度と露点温度は同じ量を表すため、温度は定まらない。
func (a air) tXTr(x, tr float64) float64 {
	return math.NaN()
}

/*
比エンタルピーと比容積から乾球温度を求める。

	Notes:
		比容積の式から x を消去した t の二次方程式の大きい方の解
*/
func (a air) tHVau(h, vau float64) float64 {
	k := vau * a.p / ra
	c1 := cpv - cpa/rav
	c2 := kelvin*(cpv-cpa/rav) + lambda + h/rav - k*cpv
	c3 := kelvin*(lambda+h/rav) - lambda*k
	return largerRoot(c1, c2, c3)
}

/*
比エンタルピーと湿球温度から乾球温度を求める。

	Notes:
		湿球温度の式と比エンタルピーの式の連立解 (ASHRAE Fundamentals 1997)
*/
func (a air) tHTbu(h, tbu float64) float64 {
	aa := (lambda-(cpw-cpv)*tbu)*a.xsat(tbu) + cpa*tbu
	b := lambda - cpw*tbu
	return (aa*lambda - h*b) / (cpv*(h-aa) + cpa*(lambda-b))
}

func (a air) tHTr(h, tr float64) float64 {
	return a.tXH(a.xDew(tr), h)
}

/*
比容積と湿球温度から乾球温度を求める。

	Notes:
		湿球温度の式 x = (A - cpa t) / (B + cpv t) と比容積の式から x を消去した
		t の二次方程式の大きい方の解
*/
func (a air) tVauTbu(vau, tbu float64) float64 {
	aa := (lambda-(cpw-cpv)*tbu)*a.xsat(tbu) + cpa*tbu
	b := lambda - cpw*tbu
	k := vau*a.p/ra - kelvin

	c1 := rav*cpv - cpa
	c2 := aa - kelvin*cpa - rav*(k*cpv-b)
	c3 := kelvin*aa - rav*k*b
	return largerRoot(c1, c2, c3)
}

func (a air) tVauTr(vau, tr float64) float64 {
	return a.tXVau(a.xDew(tr), vau)
}

func (a air) tTbuTr(tbu, tr float64) float64 {
	return a.tXTbu(a.xDew(tr), tbu)
}
