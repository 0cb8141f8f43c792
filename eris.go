// eris.go --  This file is part of goMCSCF project.
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

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Options configures one transformation call.
type Options struct {
	MaxMemory float64 // MB; 0 means 2000
	IOBlkSize float64 // MB per io block; 0 means 512
	TmpDir    string  // swap directory; "" means the system default
	Method    string  // "", "incore" or "outcore"; "" picks automatically
}

// ERIS is the transformed integral bundle handed to the CASSCF optimizer.
// Lower-case letters in the original block names refer to alpha (channel 0),
// upper-case to beta (channel 1): jkcpp/jkcPP hold J-K over the core of each
// channel, jC_pp/jc_PP (fields JCpp/JcPP) the cross-spin core Coulomb sums,
// aapp..APPA the active-space blocks, Iapcv/IAPCV and Icvcv/ICVCV the
// exchange-corrected blocks, apCV/APcv/cvCV the cross-spin companions.
// nvir below is nmo-ncore of the channel owning the index. Constructed once
// per call and never mutated afterwards.
type ERIS struct {
	NCore [2]int
	NCas  int
	NMO   int

	Jkcpp [][][]float64 // (ncore0, nmo, nmo)
	JkcPP [][][]float64 // (ncore1, nmo, nmo)
	JCpp  [][]float64   // (nmo, nmo)
	JcPP  [][]float64   // (nmo, nmo)

	Aapp [][][][]float64 // (ncas, ncas, nmo, nmo)
	AaPP [][][][]float64 // (ncas, ncas, nmo, nmo)
	AApp [][][][]float64 // (ncas, ncas, nmo, nmo)
	AAPP [][][][]float64 // (ncas, ncas, nmo, nmo)
	Appa [][][][]float64 // (ncas, nmo, nmo, ncas)
	ApPA [][][][]float64 // (ncas, nmo, nmo, ncas)
	APPA [][][][]float64 // (ncas, nmo, nmo, ncas)

	Iapcv [][][][]float64 // (ncas, nmo, ncore0, nvir0)
	IAPCV [][][][]float64 // (ncas, nmo, ncore1, nvir1)
	ApCV  [][][][]float64 // (ncas, nmo, ncore1, nvir1)
	APcv  [][][][]float64 // (ncas, nmo, ncore0, nvir0)

	Icvcv [][][][]float64 // (ncore0, nvir0, ncore0, nvir0)
	ICVCV [][][][]float64 // (ncore1, nvir1, ncore1, nvir1)
	CvCV  [][][][]float64 // (ncore0, nvir0, ncore1, nvir1)
}

var knownMethods = []string{"", "incore", "outcore"}

// NewERIS transforms the AO integrals of basis into the MO bundle for the
// given spin-separated coefficients and core/active partition. The strategy
// is out-of-core when forced, when the in-core footprint plus two working
// copies of the full tensor would exceed 90% of the memory budget, or when
// no materialized AO tensor exists; in-core otherwise. The footprint
// condition applies even to a forced in-core request.
func NewERIS(basis Integrals, mo [2]*mat.Dense, ncore [2]int, ncas int, opts Options) (*ERIS, error) {
	if opts.MaxMemory == 0 {
		opts.MaxMemory = 2000
	}
	if opts.IOBlkSize == 0 {
		opts.IOBlkSize = 512
	}
	if !slices.Contains(knownMethods, opts.Method) {
		return nil, fmt.Errorf("unknown method %q: %w", opts.Method, ErrConfiguration)
	}

	nao0, nmo := mo[0].Dims()
	nao1, nmo1 := mo[1].Dims()
	if nao0 != nao1 || nmo != nmo1 {
		return nil, fmt.Errorf("mo coefficient shapes (%d,%d) vs (%d,%d) differ: %w",
			nao0, nmo, nao1, nmo1, ErrShape)
	}
	if err := (Partition{NCore: ncore, NCas: ncas, NMO: nmo}).check(); err != nil {
		return nil, err
	}
	if opts.Method == "incore" && basis.FullTensor() == nil {
		return nil, fmt.Errorf("incore requested without a materialized AO tensor: %w", ErrConfiguration)
	}

	incoreBytes, _ := MemUsage(ncore, ncas, nmo)
	m := float64(nmo)
	if opts.Method == "outcore" ||
		incoreBytes+2*m*m*m*m*8 > opts.MaxMemory*1e6*0.9 ||
		basis.FullTensor() == nil {
		return transE1Outcore(basis, mo, ncore, ncas, opts)
	}
	ab, ok := basis.(*AOBasis)
	if !ok {
		ab = &AOBasis{Shells: basis.ShellInfo(), Eri: basis.FullTensor()}
	}
	return transE1Incore(ab, mo, ncore, ncas)
}
