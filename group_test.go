package p256

import (
	"errors"
	"testing"
)

const (
	twoGXHex = "7cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978"
	twoGYHex = "07775510db8ed040293d9ac69f7430dbba7dade63ce982299e04b79d227873d1"
)

func mustHex(t testing.TB, s string) []byte {
	b, err := DecodeHex(s)
	if err != nil {
		t.Fatalf("DecodeHex(%q): %v", s, err)
	}
	return b
}

func generatorProjective() *GroupElementProjective {
	return new(GroupElementProjective).SetAffine(&Generator)
}

// randomPoint returns k*G for a random k
func randomPoint(t testing.TB) *GroupElementProjective {
	k := NewScalar(randomScalarBytes(t))
	return new(GroupElementProjective).ScalarBaseMult(k)
}

func mustAffine(t testing.TB, p *GroupElementProjective) *GroupElementAffine {
	a, err := p.Affine()
	if err != nil {
		t.Fatalf("Affine: %v", err)
	}
	return a
}

func TestGroupElementBasics(t *testing.T) {
	if !Generator.IsOnCurve() {
		t.Error("generator should be on the curve")
	}
	if Generator.IsInfinity() {
		t.Error("generator should not be infinity")
	}

	inf := NewGroupElementAffine()
	if !inf.IsInfinity() {
		t.Error("new affine element should be infinity")
	}
	if !NewGroupElementProjective().IsInfinity() {
		t.Error("new projective element should be infinity")
	}
}

func TestNewAffinePoint(t *testing.T) {
	gx, gy := Generator.Coordinates()

	p, err := NewAffinePoint(gx[:], gy[:], true)
	if err != nil {
		t.Fatalf("NewAffinePoint(G): %v", err)
	}
	if !p.Equal(&Generator) {
		t.Error("NewAffinePoint(G) != G")
	}

	badY := gy
	badY[31] ^= 1
	if _, err := NewAffinePoint(gx[:], badY[:], true); !errors.Is(err, ErrPointNotOnCurve) {
		t.Errorf("off-curve point error = %v, want ErrPointNotOnCurve", err)
	}
	if _, err := NewAffinePoint(gx[:], badY[:], false); err != nil {
		t.Errorf("unvalidated point should be accepted: %v", err)
	}

	p32 := mustHex(t, FieldPrime)
	if _, err := NewAffinePoint(p32, gy[:], false); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("x = p error = %v, want ErrOutOfRange", err)
	}
}

func TestGroupElementSetXOVar(t *testing.T) {
	for _, odd := range []bool{false, true} {
		var r GroupElementAffine
		if err := r.setXOVar(&Generator.x, odd); err != nil {
			t.Fatalf("setXOVar: %v", err)
		}
		if !r.IsOnCurve() {
			t.Error("recovered point should be on the curve")
		}
		if (r.y.IsOdd() == 1) != odd {
			t.Errorf("recovered y parity = %d, want odd=%v", r.y.IsOdd(), odd)
		}
	}
}

func TestGroupElementNegation(t *testing.T) {
	var neg GroupElementAffine
	neg.Negate(&Generator)
	if !neg.IsOnCurve() {
		t.Error("-G should be on the curve")
	}
	if neg.Equal(&Generator) {
		t.Error("-G should differ from G")
	}

	var back GroupElementAffine
	back.Negate(&neg)
	if !back.Equal(&Generator) {
		t.Error("-(-G) should be G")
	}
}

func TestProjectiveRoundTrip(t *testing.T) {
	for i := 0; i < 10; i++ {
		a := mustAffine(t, randomPoint(t))

		var p GroupElementProjective
		p.SetAffine(a)
		if got := mustAffine(t, &p); !got.Equal(a) {
			t.Errorf("Affine(SetAffine(P)) = %s, want %s", got, a)
		}
	}

	var p GroupElementProjective
	p.SetAffine(NewGroupElementAffine())
	if !p.IsInfinity() {
		t.Error("SetAffine(infinity) should be infinity")
	}
	if !mustAffine(t, &p).IsInfinity() {
		t.Error("Affine of (0:1:0) should be infinity")
	}
}

func TestGroupElementDoubling(t *testing.T) {
	var r GroupElementProjective
	r.Double(generatorProjective())

	got := mustAffine(t, &r)
	want, err := NewAffinePoint(mustHex(t, twoGXHex), mustHex(t, twoGYHex), true)
	if err != nil {
		t.Fatalf("2G vector: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("2G = %s, want %s", got, want)
	}

	// Doubling infinity yields infinity
	r.Double(NewGroupElementProjective())
	if !r.IsInfinity() {
		t.Error("2*infinity should be infinity")
	}
}

func TestGroupElementAddition(t *testing.T) {
	inf := NewGroupElementProjective()

	for i := 0; i < 10; i++ {
		p := randomPoint(t)
		q := randomPoint(t)

		var r, s GroupElementProjective

		// P + infinity = P, infinity + P = P
		if r.Add(p, inf).Equal(p) != 1 {
			t.Error("P + infinity != P")
		}
		if r.Add(inf, p).Equal(p) != 1 {
			t.Error("infinity + P != P")
		}

		// P + (-P) = infinity
		var neg GroupElementProjective
		neg.Negate(p)
		if !r.Add(p, &neg).IsInfinity() {
			t.Error("P + (-P) should be infinity")
		}

		// 2P = P + P
		r.Double(p)
		s.Add(p, p)
		if r.Equal(&s) != 1 {
			t.Error("Double(P) != P + P")
		}

		// P + Q = Q + P
		r.Add(p, q)
		s.Add(q, p)
		if r.Equal(&s) != 1 {
			t.Error("addition should commute")
		}

		// (P + Q) - Q = P
		var negQ GroupElementProjective
		negQ.Negate(q)
		r.Add(&r, &negQ)
		if r.Equal(p) != 1 {
			t.Error("(P + Q) - Q != P")
		}
	}

	if !new(GroupElementProjective).Add(inf, inf).IsInfinity() {
		t.Error("infinity + infinity should be infinity")
	}
}

func TestGroupElementEquality(t *testing.T) {
	p := randomPoint(t)

	// Scaling all coordinates by a nonzero factor keeps the point
	lambda := mustField(t, randomFieldBytes(t))
	var scaled GroupElementProjective
	scaled.x.Mul(&p.x, lambda)
	scaled.y.Mul(&p.y, lambda)
	scaled.z.Mul(&p.z, lambda)
	if scaled.Equal(p) != 1 {
		t.Error("(lX:lY:lZ) should equal (X:Y:Z)")
	}

	inf := NewGroupElementProjective()
	if p.Equal(inf) != 0 || inf.Equal(p) != 0 {
		t.Error("a finite point should not equal infinity")
	}
	if inf.Equal(NewGroupElementProjective()) != 1 {
		t.Error("infinity should equal infinity")
	}
}

func TestGroupElementSelect(t *testing.T) {
	p := randomPoint(t)
	q := randomPoint(t)

	var r GroupElementProjective
	if r.Select(p, q, 1).Equal(p) != 1 {
		t.Error("Select(p, q, 1) should be p")
	}
	if r.Select(p, q, 0).Equal(q) != 1 {
		t.Error("Select(p, q, 0) should be q")
	}
}

func TestGroupElementCoordinates(t *testing.T) {
	x, y := Generator.Coordinates()
	if EncodeHex(x[:]) != GeneratorXHex || EncodeHex(y[:]) != GeneratorYHex {
		t.Errorf("Coordinates(G) = %x, %x", x, y)
	}

	x, y = NewGroupElementAffine().Coordinates()
	if x != [32]byte{} || y != [32]byte{} {
		t.Error("infinity coordinates should be zero")
	}
}

func BenchmarkGroupElementDouble(b *testing.B) {
	p := generatorProjective()
	var r GroupElementProjective

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Double(p)
	}
}

func BenchmarkGroupElementAdd(b *testing.B) {
	p := generatorProjective()
	var q, r GroupElementProjective
	q.Double(p)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Add(p, &q)
	}
}
