// kernels.go --  This file is part of goMCSCF project.
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

// Antisymmetrization kernels. The 2/-1/-1 coefficients encode the physical
// exchange antisymmetry of the two-electron operator and are not tunable.

// apcvKernel combines the full (nmo, nmo, nmo) cube ppp of one active
// orbital, ppp[j][k][l] = (a j|k l), into the exchange-corrected
// active-particle-core-virtual block
//
//	out[p][c][v] = 2*(a p|c v~) - (a c|p v~) - (a v~|p c),  v~ = ncore+v
//
// with out shaped (nmo, ncore, nmo-ncore).
func apcvKernel(ppp [][][]float64, ncore, nmo int, out [][][]float64) {
	nvir := nmo - ncore
	for p := 0; p < nmo; p++ {
		for c := 0; c < ncore; c++ {
			for v := 0; v < nvir; v++ {
				out[p][c][v] = 2*ppp[p][c][ncore+v] - ppp[c][p][ncore+v] - ppp[ncore+v][p][c]
			}
		}
	}
}

// cvcvKernel combines the per-core-orbital blocks vcp[v][c][p] = (i v~|c p)
// and cpp[j][p][q] = (i j|p q) into the exchange-corrected
// core-virtual/core-virtual block
//
//	out[v][c][v'] = 2*(i v~|c v~') - (i c|v~' v~) - (i v~'|c v~)
//
// with out shaped (nmo-ncore, ncore, nmo-ncore).
func cvcvKernel(vcp, cpp [][][]float64, ncore, nmo int, out [][][]float64) {
	nvir := nmo - ncore
	for v := 0; v < nvir; v++ {
		for c := 0; c < ncore; c++ {
			for v2 := 0; v2 < nvir; v2++ {
				out[v][c][v2] = 2*vcp[v][c][ncore+v2] - cpp[c][ncore+v2][ncore+v] - vcp[v2][c][ncore+v]
			}
		}
	}
}
