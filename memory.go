// memory.go --  This file is part of goMCSCF project.
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

// advisory threshold for the outcore footprint, bytes
const addressSpaceWarn = 10e9

// MemUsage predicts the memory footprint of a transformation in bytes,
// (incore, outcore). The multipliers are the block counts of this engine's
// allocation plan: 3 core-virtual 4-index blocks, 4 active-core-virtual
// blocks, 3 core-row scratch/output blocks, 7 active-space 4-index blocks
// and 2 full cubes (ppp plus vcp), with the spin-averaged core count nc and
// nvir = nmo - nc. Incore adds the packed AO tensor (bounded by nmo^4) and
// the live half-transformed array with its row copies. Pure function of the
// partition; the only side effect is a warning once the outcore footprint
// itself risks the virtual address space.
func MemUsage(ncore [2]int, ncas, nmo int) (incore, outcore float64) {
	nc := float64(ncore[0]+ncore[1]) * 0.5
	a := float64(ncas)
	m := float64(nmo)
	nv := m - nc
	outcore = (nc*nc*nv*nv*3 + a*m*nc*nv*4 + nc*m*m*3 + a*a*m*m*7 + m*m*m*2) * 8
	incore = outcore + (m*m*m*m+nc*m*m*m*4)*8
	if outcore > addressSpaceWarn {
		WarningLogger.Println("be careful with the virtual memory address space `ulimit -v`")
	}
	return incore, outcore
}
