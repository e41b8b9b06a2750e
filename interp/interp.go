package interp

// Linear2 computes 2-point linear interpolation from x0 to x1 at frac in [0, 1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// PeriodicHermite4 interpolates a single-cycle table at fractional index pos,
// wrapping neighbor lookups around the table boundaries.
func PeriodicHermite4(table []float64, pos float64) float64 {
	n := len(table)
	if n == 0 {
		return 0
	}
	if n < 4 {
		i0 := int(pos) % n
		if i0 < 0 {
			i0 += n
		}
		i1 := (i0 + 1) % n
		return Linear2(pos-float64(int(pos)), table[i0], table[i1])
	}

	i0 := int(pos)
	frac := pos - float64(i0)
	i0 %= n
	if i0 < 0 {
		i0 += n
	}

	im1 := i0 - 1
	if im1 < 0 {
		im1 += n
	}
	i1 := i0 + 1
	if i1 >= n {
		i1 -= n
	}
	i2 := i1 + 1
	if i2 >= n {
		i2 -= n
	}

	return Hermite4(frac, table[im1], table[i0], table[i1], table[i2])
}
