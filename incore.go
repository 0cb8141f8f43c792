// incore.go --  This file is part of goMCSCF project.
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

// incoreLoader serves rows as copies of slices of the fully materialized
// half-transformed array (nocc*nmo, naoPair).
type incoreLoader struct {
	erib *mat.Dense
	nmo  int
}

func (l *incoreLoader) Load(i int) (*mat.Dense, error) {
	_, naoPair := l.erib.Dims()
	out := mat.NewDense(l.nmo, naoPair, nil)
	out.Copy(l.erib.Slice(i*l.nmo, (i+1)*l.nmo, 0, naoPair))
	return out, nil
}

func incoreChannel(basis *AOBasis, mo *mat.Dense, nocc, nmo int) (*incoreLoader, error) {
	if nocc == 0 {
		return &incoreLoader{nmo: nmo}, nil
	}
	erib, err := basis.E1Full(extendOcc(mo, nocc), nocc)
	if err != nil {
		return nil, err
	}
	return &incoreLoader{erib: erib, nmo: nmo}, nil
}

// transE1Incore holds the half-transformed tensor of each spin channel fully
// in memory. The caller is expected to have checked the footprint with
// MemUsage first; channels run sequentially, beta before alpha, and the
// beta array is dropped before the alpha one is built.
func transE1Incore(basis *AOBasis, mo [2]*mat.Dense, ncore [2]int, ncas int) (*ERIS, error) {
	if basis.Eri == nil {
		return nil, fmt.Errorf("incore transform without a materialized AO tensor: %w", ErrConfiguration)
	}
	_, nmo := mo[0].Dims()
	nocc := [2]int{ncore[0] + ncas, ncore[1] + ncas}
	tstart := time.Now()

	// beta-primary channel
	loadB, err := incoreChannel(basis, mo[1], nocc[1], nmo)
	if err != nil {
		return nil, err
	}
	moBA := [2]*mat.Dense{mo[1], mo[0]}
	ncBA := [2]int{ncore[1], ncore[0]}
	aB, err := transAapp(moBA, ncBA, ncas, loadB)
	if err != nil {
		return nil, err
	}
	cB, err := transCvcv(moBA, ncBA, loadB)
	if err != nil {
		return nil, err
	}
	loadB.erib = nil

	// alpha-primary channel
	loadA, err := incoreChannel(basis, mo[0], nocc[0], nmo)
	if err != nil {
		return nil, err
	}
	aA, err := transAapp(mo, ncore, ncas, loadA)
	if err != nil {
		return nil, err
	}
	cA, err := transCvcv(mo, ncore, loadA)
	if err != nil {
		return nil, err
	}

	InfoLogger.Println("incore transformation done...", time.Since(tstart))
	return assembleERIS(ncore, ncas, nmo, aA, aB, cA, cB), nil
}

// assembleERIS maps the alpha-primary and beta-primary driver outputs onto
// the named bundle, including the jkc = j - k subtraction.
func assembleERIS(ncore [2]int, ncas, nmo int, aA, aB aappOut, cA, cB cvcvOut) *ERIS {
	return &ERIS{
		NCore: ncore,
		NCas:  ncas,
		NMO:   nmo,

		Jkcpp: sub3(cA.jcpp, cA.kcpp),
		JkcPP: sub3(cB.jcpp, cB.kcpp),
		JCpp:  cB.jcPP,
		JcPP:  cA.jcPP,

		Aapp: aA.aapp,
		AaPP: aA.aaPP,
		AApp: aB.aaPP,
		AAPP: aB.aapp,
		Appa: aA.appa,
		ApPA: aA.apPA,
		APPA: aB.appa,

		Iapcv: aA.japcv,
		IAPCV: aB.japcv,
		ApCV:  aA.apCV,
		APcv:  aB.apCV,

		Icvcv: cA.jcvcv,
		ICVCV: cB.jcvcv,
		CvCV:  cA.cvCV,
	}
}
