package main

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"p256.mleku.dev"
)

// formatPoint renders p in the given output format. The xy form is 0x
// followed by the 64-digit x and y coordinates; infinity is all zeros.
func formatPoint(p *p256.GroupElementAffine, format string) string {
	switch format {
	case formatSEC1:
		return hexutil.Encode(p.SerializeUncompressed())
	case formatSEC1Compressed:
		return hexutil.Encode(p.SerializeCompressed())
	default:
		x, y := p.Coordinates()
		return hexutil.Encode(x[:]) + hexutil.Encode(y[:])[2:]
	}
}

// printProjective converts r to affine and prints it
func (rt *runtime) printProjective(w io.Writer, r *p256.GroupElementProjective) error {
	a, err := r.Affine()
	if err != nil {
		return errors.Wrap(err, "converting result")
	}
	_, err = fmt.Fprintln(w, formatPoint(a, rt.cfg.Output.Format))
	return err
}
