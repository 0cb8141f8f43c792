// doc.go --  This file is part of goMCSCF project.
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

// Package ao2mo transforms atomic-orbital two-electron integrals into the
// molecular-orbital blocks needed by an unrestricted CASSCF optimizer.
//
// The entry point is NewERIS: given the spin-separated MO coefficient
// matrices, a core/active orbital partition and a memory budget, it picks an
// in-core or an out-of-core transformation strategy and returns the named
// integral bundle (Coulomb, exchange and antisymmetrized core-virtual and
// active-space blocks for both spin channels and the cross-spin pairing).
//
// The out-of-core path streams AO-shell blocks through a bounded buffer and
// a disk-backed swap store, and reproduces the in-core results up to
// floating-point summation order.
package ao2mo
