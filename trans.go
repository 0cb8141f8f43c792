// trans.go --  This file is part of goMCSCF project.
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

import "gonum.org/v1/gonum/mat"

// RowLoader hands out half-transformed rows: Load(i) returns the
// (nmo, naoPair) block of occupied column i, in AO-pair order. The in-core
// engine serves it from a slice of the materialized array, the out-of-core
// engine reassembles it from the swap store. A loader is tied to one spin
// channel's MO-pair coefficient matrix and must not be reused across
// channels.
type RowLoader interface {
	Load(i int) (*mat.Dense, error)
}

// Both drivers below take the primary spin channel in mo[0]/ncore[0] and the
// secondary in mo[1]/ncore[1]; they are invoked once per ordering.

type aappOut struct {
	aapp, aaPP [][][][]float64 // (ncas, ncas, nmo, nmo)
	appa, apPA [][][][]float64 // (ncas, nmo, nmo, ncas)
	japcv      [][][][]float64 // (ncas, nmo, ncore0, nmo-ncore0)
	apCV       [][][][]float64 // (ncas, nmo, ncore1, nmo-ncore1)
}

type cvcvOut struct {
	jcpp  [][][]float64   // (ncore0, nmo, nmo), same-spin Coulomb per core orbital
	jcPP  [][]float64     // (nmo, nmo), cross-spin Coulomb summed over core
	kcpp  [][][]float64   // (ncore0, nmo, nmo), same-spin exchange per core orbital
	jcvcv [][][][]float64 // (ncore0, nvir0, ncore0, nvir0), exchange-corrected
	cvCV  [][][][]float64 // (ncore0, nvir0, ncore1, nvir1), cross-spin
}

// transAapp is the active-space driver: one half-transformed row per active
// orbital, contracted over the full orbital range of each spin channel.
func transAapp(mo [2]*mat.Dense, ncore [2]int, ncas int, fload RowLoader) (aappOut, error) {
	_, nmo := mo[0].Dims()
	nmoPair := nmo * (nmo + 1) / 2

	var out aappOut
	out.japcv = make4(ncas, nmo, ncore[0], nmo-ncore[0])
	out.aapp = make4(ncas, ncas, nmo, nmo)
	out.aaPP = make4(ncas, ncas, nmo, nmo)
	out.appa = make4(ncas, nmo, nmo, ncas)
	out.apPA = make4(ncas, nmo, nmo, ncas)
	out.apCV = make4(ncas, nmo, ncore[1], nmo-ncore[1])

	ppp := make3(nmo, nmo, nmo)
	buf2 := mat.NewDense(nmo, nmoPair, nil)
	for i := 0; i < ncas; i++ {
		buf, err := fload.Load(ncore[0] + i)
		if err != nil {
			return aappOut{}, err
		}

		// same-spin pass
		nrE2Tril(buf, 0, nmo, mo[0], buf2)
		for j := 0; j < nmo; j++ {
			unpackTrilRows(buf2.RawRowView(j), nmo, ppp[j])
		}
		for a := 0; a < ncas; a++ {
			for p := 0; p < nmo; p++ {
				copy(out.aapp[i][a][p], ppp[ncore[0]+a][p])
			}
		}
		for p := 0; p < nmo; p++ {
			for q := 0; q < nmo; q++ {
				for a := 0; a < ncas; a++ {
					out.appa[i][p][q][a] = ppp[p][q][ncore[0]+a]
				}
			}
		}
		apcvKernel(ppp, ncore[0], nmo, out.japcv[i])

		// cross-spin pass: no exchange correction across spins
		nrE2Tril(buf, 0, nmo, mo[1], buf2)
		for j := 0; j < nmo; j++ {
			unpackTrilRows(buf2.RawRowView(j), nmo, ppp[j])
		}
		for a := 0; a < ncas; a++ {
			for p := 0; p < nmo; p++ {
				copy(out.aaPP[i][a][p], ppp[ncore[0]+a][p])
			}
		}
		for p := 0; p < nmo; p++ {
			for q := 0; q < nmo; q++ {
				for a := 0; a < ncas; a++ {
					out.apPA[i][p][q][a] = ppp[p][q][ncore[1]+a]
				}
			}
		}
		for p := 0; p < nmo; p++ {
			for c := 0; c < ncore[1]; c++ {
				copy(out.apCV[i][p][c], ppp[p][c][ncore[1]:nmo])
			}
		}
	}
	return out, nil
}

// transCvcv is the core-virtual driver: one half-transformed row per core
// orbital of the primary channel.
func transCvcv(mo [2]*mat.Dense, ncore [2]int, fload RowLoader) (cvcvOut, error) {
	nao, nmo := mo[0].Dims()
	nvir0 := nmo - ncore[0]
	nvir1 := nmo - ncore[1]
	nmoPair := nmo * (nmo + 1) / 2

	var out cvcvOut
	out.jcpp = make3(ncore[0], nmo, nmo)
	out.jcPP = make2(nmo, nmo)
	out.kcpp = make3(ncore[0], nmo, nmo)
	out.jcvcv = make4(ncore[0], nvir0, ncore[0], nvir0)
	out.cvCV = make4(ncore[0], nvir0, ncore[1], nvir1)

	vcp := make3(nvir0, ncore[0], nmo)
	cpp := make3(ncore[0], nmo, nmo)
	cPP := make2(nmo, nmo)
	tmp1 := mat.NewDense(1, nmoPair, nil)
	var bufC, rect, rectV *mat.Dense
	if ncore[0] > 0 {
		bufC = mat.NewDense(ncore[0], nmoPair, nil)
	}
	if nvir0 > 0 && ncore[1] > 0 && nvir1 > 0 {
		rect = mat.NewDense(nvir0, ncore[1]*nvir1, nil)
	}
	if nvir0 > 0 && ncore[0] > 0 {
		rectV = mat.NewDense(nvir0, ncore[0]*nmo, nil)
	}

	for i := 0; i < ncore[0]; i++ {
		buf, err := fload.Load(i)
		if err != nil {
			return cvcvOut{}, err
		}

		// cross-spin core-virtual block (i v|C V)
		if rect != nil {
			nrE2Rect(buf, ncore[0], nmo, nao,
				colWin(mo[1], 0, ncore[1]), colWin(mo[1], ncore[1], nmo), rect)
			for v := 0; v < nvir0; v++ {
				row := rect.RawRowView(v)
				for c := 0; c < ncore[1]; c++ {
					copy(out.cvCV[i][v][c], row[c*nvir1:(c+1)*nvir1])
				}
			}
		}

		// cross-spin Coulomb accumulator (i i|P Q)
		nrE2Tril(buf, i, i+1, mo[1], tmp1)
		unpackTrilRows(tmp1.RawRowView(0), nmo, cPP)
		for p := 0; p < nmo; p++ {
			for q := 0; q < nmo; q++ {
				out.jcPP[p][q] += cPP[p][q]
			}
		}

		// same-spin exchange rows (i v|c p)
		if rectV != nil {
			nrE2Rect(buf, ncore[0], nmo, nao,
				colWin(mo[0], 0, ncore[0]), mo[0], rectV)
			for v := 0; v < nvir0; v++ {
				row := rectV.RawRowView(v)
				for c := 0; c < ncore[0]; c++ {
					copy(vcp[v][c], row[c*nmo:(c+1)*nmo])
				}
			}
			for v := 0; v < nvir0; v++ {
				copy(out.kcpp[i][ncore[0]+v], vcp[v][i])
			}
		}

		// same-spin core rows (i j|p q)
		nrE2Tril(buf, 0, ncore[0], mo[0], bufC)
		for j := 0; j < ncore[0]; j++ {
			unpackTrilRows(bufC.RawRowView(j), nmo, cpp[j])
		}
		for p := 0; p < nmo; p++ {
			copy(out.jcpp[i][p], cpp[i][p])
		}
		for j := 0; j < ncore[0]; j++ {
			copy(out.kcpp[i][j], cpp[j][i])
		}

		cvcvKernel(vcp, cpp, ncore[0], nmo, out.jcvcv[i])
	}
	return out, nil
}

func colWin(m *mat.Dense, j0, j1 int) mat.Matrix {
	r, _ := m.Dims()
	return m.Slice(0, r, j0, j1)
}
