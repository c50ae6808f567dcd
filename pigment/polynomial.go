package pigment

// mixCoeffs holds the RGB weight of each degree-4 monomial of the four
// concentrations, in the order evalPolynomial forms them.
var mixCoeffs = [20][3]float32{
	{+0.07717053, +0.02826978, +0.24832992}, // c0³
	{+0.95912302, +0.80256528, +0.03561839}, // c1³
	{+0.74683774, +0.04868586, +0.00000000}, // c2³
	{+0.99518138, +0.99978149, +0.99704802}, // c3³
	{+0.04819146, +0.83363781, +0.32515377}, // c0² c1
	{-0.68146950, +1.46107803, +1.06980936}, // c0 c1²
	{+0.27058419, -0.15324870, +1.98735057}, // c0² c2
	{+0.80478189, +0.67093710, +0.18424500}, // c0 c2²
	{-0.35031003, +1.37855826, +3.68865000}, // c0² c3
	{+1.05128046, +1.97815239, +2.82989073}, // c0 c3²
	{+3.21607125, +0.81270228, +1.03384539}, // c1² c2
	{+2.78893374, +0.41565549, -0.04487295}, // c1 c2²
	{+3.02162577, +2.55374103, +0.32766114}, // c1² c3
	{+2.95124691, +2.81201112, +1.17578442}, // c1 c3²
	{+2.82677043, +0.79933038, +1.81715262}, // c2² c3
	{+2.99691099, +1.22593053, +1.80653661}, // c2 c3²
	{+1.87394106, +2.05027182, -0.29835996}, // c0 c1 c2
	{+2.56609566, +7.03428198, +0.62575374}, // c0 c1 c3
	{+4.08329484, -1.40408358, +2.14995522}, // c0 c2 c3
	{+6.00078678, +2.55552042, +1.90739502}, // c1 c2 c3
}

// evalPolynomial predicts the RGB color of a mixture with the given
// concentrations. Each product is converted to float32 explicitly so the
// compiler cannot fuse it into the following addition; the table was built
// against unfused single precision arithmetic.
func evalPolynomial(c0, c1, c2, c3 float32) (r, g, b float32) {
	c00 := float32(c0 * c0)
	c11 := float32(c1 * c1)
	c22 := float32(c2 * c2)
	c33 := float32(c3 * c3)
	c01 := float32(c0 * c1)
	c02 := float32(c0 * c2)
	c12 := float32(c1 * c2)

	w := [20]float32{
		float32(c0 * c00),
		float32(c1 * c11),
		float32(c2 * c22),
		float32(c3 * c33),
		float32(c00 * c1),
		float32(c01 * c1),
		float32(c00 * c2),
		float32(c02 * c2),
		float32(c00 * c3),
		float32(c0 * c33),
		float32(c11 * c2),
		float32(c1 * c22),
		float32(c11 * c3),
		float32(c1 * c33),
		float32(c22 * c3),
		float32(c2 * c33),
		float32(c01 * c2),
		float32(c01 * c3),
		float32(c02 * c3),
		float32(c12 * c3),
	}

	for i, k := range mixCoeffs {
		r += float32(k[0] * w[i])
		g += float32(k[1] * w[i])
		b += float32(k[2] * w[i])
	}
	return r, g, b
}
