// This file is part of M65832Emu.
//
// M65832Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// M65832Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with M65832Emu.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

import (
	"fmt"
	"strings"
)

// the areas of the bus in ascending order of origin. walking this table is
// far quicker than sweeping all 2^32 addresses through MapAddress(), and
// because there is no mirroring the result is the same.
var areas = []struct {
	origin uint32
	memtop uint32
	area   Area
}{
	{OriginBootROM, MemtopBootROM, BootROM},
	{OriginRAM, MemtopRAM, RAM},
	{OriginPeriph, MemtopPeriph, Peripherals},
	{OriginSysReg, MemtopSysReg, SysReg},
}

// Summary returns a single multiline string detailing all the areas of the
// bus, including the gap between the peripheral window and the system
// registers. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	next := uint32(0)
	for _, a := range areas {
		// print a line for any unmapped gap before the area
		if a.origin > next {
			s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", next, a.origin-1, Undefined.String()))
		}

		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", a.origin, a.memtop, a.area.String()))

		// the last area reaches the top of the address space. adding one to
		// its memtop would wrap around to zero
		if a.memtop == Memtop {
			break
		}
		next = a.memtop + 1
	}

	return s.String()
}
