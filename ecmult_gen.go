package p256

import "sync"

// EcmultGenContext holds precomputed data for generator multiplication
type EcmultGenContext struct {
	// prec[i][j] = j * 2^(4*i) * G
	prec [EcmultWindows]ecmultTable
}

var (
	// Global context for generator multiplication (initialized once)
	globalGenContext *EcmultGenContext
	genContextOnce   sync.Once
)

// initGenContext fills the precomputed window tables
func (ctx *EcmultGenContext) initGenContext() {
	var base GroupElementProjective
	base.SetAffine(&Generator)

	for i := 0; i < EcmultWindows; i++ {
		ctx.prec[i].build(&base)

		// base = 16 * base for the next window
		base.Add(&ctx.prec[i][EcmultTableSize-1], &base)
	}
}

// getGlobalGenContext returns the global generator context, building it on
// first use
func getGlobalGenContext() *EcmultGenContext {
	genContextOnce.Do(func() {
		globalGenContext = NewEcmultGenContext()
	})
	return globalGenContext
}

// NewEcmultGenContext creates a new generator multiplication context
func NewEcmultGenContext() *EcmultGenContext {
	ctx := &EcmultGenContext{}
	ctx.initGenContext()
	return ctx
}

// ecmultGen computes r = n * G. Each of the 64 windows contributes one
// constant-time table lookup and one addition; no doublings are needed.
func (ctx *EcmultGenContext) ecmultGen(r *GroupElementProjective, n *Scalar) {
	var acc, t GroupElementProjective
	acc.SetInfinity()
	for i := 0; i < EcmultWindows; i++ {
		ctx.prec[i].selectInto(&t, n.getBits(uint(i*EcmultWindowSize), EcmultWindowSize))
		acc.Add(&acc, &t)
	}
	*r = acc
}

// ScalarBaseMult sets r = k*G and returns r.
func (r *GroupElementProjective) ScalarBaseMult(k *Scalar) *GroupElementProjective {
	getGlobalGenContext().ecmultGen(r, k)
	return r
}
