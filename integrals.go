// integrals.go --  This file is part of goMCSCF project.
// Mirzaeva Irina, 2024
//
//	goMCSCF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package ao2mo

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Integrals is the AO two-electron integral collaborator. FullTensor returns
// the packed (naoPair, naoPair) symmetric AO tensor when it is materialized
// in memory, nil otherwise. E1Range computes the first-index half-transform
// restricted to one shell range: for every packed AO pair row p of the range,
// the output row holds flatten(Cocc^T A_p C) of length nocc*nmo, where
// moPair carries the full orbital set in its first nmo columns and the
// occupied subset appended after (the extended coefficient matrix).
type Integrals interface {
	ShellInfo() Shells
	FullTensor() *mat.Dense
	E1Range(r ShellRange, moPair *mat.Dense, nocc int) (*mat.Dense, error)
}

// AOBasis is the in-memory integral store: shell layout plus the fully
// materialized packed AO tensor. It backs both strategies; the out-of-core
// engine only ever asks it for one shell range at a time.
type AOBasis struct {
	Shells Shells
	Eri    *mat.Dense
}

func NewAOBasis(shells Shells, eri *mat.Dense) (*AOBasis, error) {
	if eri != nil {
		r, c := eri.Dims()
		np := shells.NPairs()
		if r != np || c != np {
			return nil, fmt.Errorf("packed AO tensor is (%d,%d), want (%d,%d): %w",
				r, c, np, np, ErrShape)
		}
	}
	return &AOBasis{Shells: shells, Eri: eri}, nil
}

func (b *AOBasis) ShellInfo() Shells {
	return b.Shells
}

func (b *AOBasis) FullTensor() *mat.Dense {
	return b.Eri
}

func (b *AOBasis) E1Range(r ShellRange, moPair *mat.Dense, nocc int) (*mat.Dense, error) {
	if b.Eri == nil {
		return nil, fmt.Errorf("E1Range without a materialized AO tensor: %w", ErrConfiguration)
	}
	loc := b.Shells.AOLoc()
	a0 := loc[r.Start]
	p0 := a0 * (a0 + 1) / 2
	return e1PairRows(b.Eri, b.Shells.NAO(), p0, p0+r.NPairs, moPair, nocc), nil
}

// E1Full is the in-core variant: the complete half-transformed array laid out
// as (nocc*nmo, naoPair), row index i*nmo+j for occupied i and full-range j.
func (b *AOBasis) E1Full(moPair *mat.Dense, nocc int) (*mat.Dense, error) {
	if b.Eri == nil {
		return nil, fmt.Errorf("E1Full without a materialized AO tensor: %w", ErrConfiguration)
	}
	nao := b.Shells.NAO()
	naoPair := b.Shells.NPairs()
	_, ncol := moPair.Dims()
	nmo := ncol - nocc
	rows := e1PairRows(b.Eri, nao, 0, naoPair, moPair, nocc)
	out := mat.NewDense(nocc*nmo, naoPair, nil)
	for p := 0; p < naoPair; p++ {
		row := rows.RawRowView(p)
		for ij := 0; ij < nocc*nmo; ij++ {
			out.Set(ij, p, row[ij])
		}
	}
	return out, nil
}

// e1PairRows transforms AO pair rows [p0, p1) of the packed tensor: each row
// is unpacked to the symmetric (nao, nao) slice and sandwiched between the
// appended occupied columns and the full orbital set of moPair.
func e1PairRows(eri *mat.Dense, nao, p0, p1 int, moPair *mat.Dense, nocc int) *mat.Dense {
	_, ncol := moPair.Dims()
	nmo := ncol - nocc
	cocc := moPair.Slice(0, nao, nmo, nmo+nocc)
	c := moPair.Slice(0, nao, 0, nmo)

	out := mat.NewDense(p1-p0, nocc*nmo, nil)
	a := mat.NewDense(nao, nao, nil)
	t := mat.NewDense(nocc, nao, nil)
	mij := mat.NewDense(nocc, nmo, nil)
	for p := p0; p < p1; p++ {
		UnpackTril(eri.RawRowView(p), nao, a.RawMatrix().Data)
		t.Mul(cocc.T(), a)
		mij.Mul(t, c)
		copy(out.RawRowView(p-p0), mij.RawMatrix().Data)
	}
	return out
}

// extendOcc builds the MO-pair coefficient matrix: the full orbital set with
// the occupied subset appended, (nao, nmo+nocc).
func extendOcc(mo *mat.Dense, nocc int) *mat.Dense {
	nao, nmo := mo.Dims()
	out := mat.NewDense(nao, nmo+nocc, nil)
	for i := 0; i < nao; i++ {
		for j := 0; j < nmo; j++ {
			out.Set(i, j, mo.At(i, j))
		}
		for j := 0; j < nocc; j++ {
			out.Set(i, nmo+j, mo.At(i, j))
		}
	}
	return out
}

// nrE2Tril transforms the AO-pair dimension of rows [r0, r1) of buf over the
// full symmetric orbital window of c: out row = packed tril of C^T A C,
// length nmo*(nmo+1)/2.
func nrE2Tril(buf *mat.Dense, r0, r1 int, c *mat.Dense, out *mat.Dense) {
	nao, nmo := c.Dims()
	a := mat.NewDense(nao, nao, nil)
	t := mat.NewDense(nmo, nao, nil)
	b := mat.NewDense(nmo, nmo, nil)
	for r := r0; r < r1; r++ {
		UnpackTril(buf.RawRowView(r), nao, a.RawMatrix().Data)
		t.Mul(c.T(), a)
		b.Mul(t, c)
		PackTril(b.RawMatrix().Data, nmo, out.RawRowView(r-r0))
	}
}

// nrE2Rect is the rectangular-window variant: out row = flatten(Ck^T A Cl),
// length nk*nl, with ck and cl column windows of the coefficient matrix.
func nrE2Rect(buf *mat.Dense, r0, r1, nao int, ck, cl mat.Matrix, out *mat.Dense) {
	_, nk := ck.Dims()
	_, nl := cl.Dims()
	a := mat.NewDense(nao, nao, nil)
	t := mat.NewDense(nk, nao, nil)
	b := mat.NewDense(nk, nl, nil)
	for r := r0; r < r1; r++ {
		UnpackTril(buf.RawRowView(r), nao, a.RawMatrix().Data)
		t.Mul(ck.T(), a)
		b.Mul(t, cl)
		copy(out.RawRowView(r-r0), b.RawMatrix().Data)
	}
}
