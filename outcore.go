// outcore.go --  This file is part of goMCSCF project.
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
	"time"

	"gonum.org/v1/gonum/mat"
)

// outcoreLoader reassembles one half-transformed row block per call by
// concatenating the swap blocks of every shell-range step, in step order.
type outcoreLoader struct {
	swap    *swapStore
	ranges  []ShellRange
	nmo     int
	naoPair int
}

func (l *outcoreLoader) Load(i int) (*mat.Dense, error) {
	buf := mat.NewDense(l.nmo, l.naoPair, nil)
	block := make([]float64, 0)
	col0 := 0
	for step, r := range l.ranges {
		need := l.nmo * r.NPairs
		if cap(block) < need {
			block = make([]float64, need)
		}
		block = block[:need]
		if err := l.swap.get(step, i, block); err != nil {
			return nil, err
		}
		for j := 0; j < l.nmo; j++ {
			copy(buf.RawRowView(j)[col0:col0+r.NPairs], block[j*r.NPairs:(j+1)*r.NPairs])
		}
		col0 += r.NPairs
	}
	return buf, nil
}

// outcoreChannel runs the forward write pass of one spin channel: size the
// buffer, partition the shells, half-transform each range and store the
// per-column transposes in the swap. Writes complete in step order before
// any read happens; the returned loader owns the swap store.
func outcoreChannel(basis Integrals, mo *mat.Dense, nocc int, opts Options) (*outcoreLoader, error) {
	sh := basis.ShellInfo()
	_, nmo := mo.Dims()
	nijPair := nocc * nmo
	naoPair := sh.NPairs()
	if nijPair == 0 {
		return &outcoreLoader{ranges: nil, nmo: nmo, naoPair: naoPair}, nil
	}

	memWords := int(opts.MaxMemory * 1e6 / 8)
	ioblkWords := int(opts.IOBlkSize * 1e6 / 8)
	e1Buflen := memWords / nijPair
	if blk := ioblkWords / nmo; blk < e1Buflen {
		e1Buflen = blk
	}
	if e1Buflen > naoPair {
		e1Buflen = naoPair
	}
	if e1Buflen < 1 {
		e1Buflen = 1
	}
	ranges := sh.Ranges(e1Buflen)

	cache := e1Buflen * nijPair
	if c := nmo * naoPair; c > cache {
		cache = c
	}
	OutputLogger.Printf("require disk %.8g MB, swap-block-shape (%d,%d), mem cache size %.8g MB",
		float64(nijPair*naoPair)*8/1e6, e1Buflen, nmo, float64(cache)*8/1e6)

	swap, err := newSwapStore(opts.TmpDir)
	if err != nil {
		return nil, err
	}
	moji := extendOcc(mo, nocc)
	for step, r := range ranges {
		InfoLogger.Printf("step 1, AO shells %d:%d, [%d/%d], len(buf) = %d",
			r.Start, r.Stop, step+1, len(ranges), r.NPairs)
		if r.NPairs > e1Buflen {
			WarningLogger.Println("not enough memory or limited virtual address space `ulimit -v`")
			swap.Close()
			return nil, fmt.Errorf("shell range %d:%d needs %d pairs, buffer holds %d: %w",
				r.Start, r.Stop, r.NPairs, e1Buflen, ErrAllocation)
		}
		buf, err := basis.E1Range(r, moji, nocc)
		if err != nil {
			swap.Close()
			return nil, err
		}
		block := make([]float64, nmo*r.NPairs)
		for ic := 0; ic < nocc; ic++ {
			for j := 0; j < nmo; j++ {
				for p := 0; p < r.NPairs; p++ {
					block[j*r.NPairs+p] = buf.At(p, ic*nmo+j)
				}
			}
			if err := swap.put(step, ic, block); err != nil {
				swap.Close()
				return nil, err
			}
		}
	}
	return &outcoreLoader{swap: swap, ranges: ranges, nmo: nmo, naoPair: naoPair}, nil
}

// transE1Outcore streams both spin channels through the bounded buffer and
// the swap store. The channel order and driver sequence mirror the in-core
// engine; each channel's swap is discarded as soon as its drivers are done.
func transE1Outcore(basis Integrals, mo [2]*mat.Dense, ncore [2]int, ncas int, opts Options) (*ERIS, error) {
	_, nmo := mo[0].Dims()
	nocc := [2]int{ncore[0] + ncas, ncore[1] + ncas}
	tstart := time.Now()

	// beta-primary channel
	loadB, err := outcoreChannel(basis, mo[1], nocc[1], opts)
	if err != nil {
		return nil, err
	}
	moBA := [2]*mat.Dense{mo[1], mo[0]}
	ncBA := [2]int{ncore[1], ncore[0]}
	aB, err := transAapp(moBA, ncBA, ncas, loadB)
	if err != nil {
		loadB.close()
		return nil, err
	}
	cB, err := transCvcv(moBA, ncBA, loadB)
	if err != nil {
		loadB.close()
		return nil, err
	}
	if err := loadB.close(); err != nil {
		return nil, err
	}

	// alpha-primary channel
	loadA, err := outcoreChannel(basis, mo[0], nocc[0], opts)
	if err != nil {
		return nil, err
	}
	aA, err := transAapp(mo, ncore, ncas, loadA)
	if err != nil {
		loadA.close()
		return nil, err
	}
	cA, err := transCvcv(mo, ncore, loadA)
	if err != nil {
		loadA.close()
		return nil, err
	}
	if err := loadA.close(); err != nil {
		return nil, err
	}

	InfoLogger.Println("outcore transformation done...", time.Since(tstart))
	return assembleERIS(ncore, ncas, nmo, aA, aB, cA, cB), nil
}

func (l *outcoreLoader) close() error {
	if l.swap == nil {
		return nil
	}
	err := l.swap.Close()
	l.swap = nil
	return err
}
