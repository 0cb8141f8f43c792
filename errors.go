// errors.go --  This file is part of goMCSCF project.
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

import "errors"

// Sentinel errors. Functions wrap these with context via fmt.Errorf("...: %w");
// callers match with errors.Is. A failed transformation never returns a
// partial bundle.
var (
	// ErrAllocation is returned when a required block cannot be materialized:
	// the full in-core tensor, or a single shell-range buffer in out-of-core
	// mode. The caller should retry with a smaller memory budget or a smaller
	// io block size; the package never retries on its own.
	ErrAllocation = errors.New("ao2mo: block allocation failed")

	// ErrConfiguration is returned when the requested strategy cannot run
	// against the available inputs, e.g. an in-core transform without a
	// materialized AO tensor, or an unknown method name.
	ErrConfiguration = errors.New("ao2mo: requested strategy not applicable")

	// ErrShape is returned on orbital-partition arithmetic violations
	// (ncore < 0, ncore+ncas > nmo and the like). These are caller bugs,
	// not runtime conditions.
	ErrShape = errors.New("ao2mo: orbital partition out of range")
)
