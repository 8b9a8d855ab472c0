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

// Area represents the different areas of the M65832 bus
type Area int

func (a Area) String() string {
	switch a {
	case BootROM:
		return "BootROM"
	case RAM:
		return "RAM"
	case Peripherals:
		return "Peripherals"
	case SysReg:
		return "SysReg"
	}

	return "undefined"
}

// The different areas of the M65832 bus
const (
	Undefined Area = iota
	BootROM
	RAM
	Peripherals
	SysReg
)

// The origin and memory top for each area of the bus. The canonical map,
// shared by every supported platform:
//
//	0x00000000 -> 0x0000ffff	Boot ROM (64 KB)
//	0x00010000 -> 0x0fffffff	DDR RAM
//	0x10000000 -> 0x100fffff	Peripheral registers (MMIO)
//	0xfffff000 -> 0xffffffff	System registers (MMU, Timer)
//
// Addresses between the peripheral window and the system registers are not
// mapped to anything. Unlike the address buses of the old 8-bit machines
// there is no mirroring, so MapAddress() works with plain range comparisons
// rather than bit masks.
const (
	OriginBootROM = uint32(0x00000000)
	MemtopBootROM = uint32(0x0000ffff)
	OriginRAM     = uint32(0x00010000)
	MemtopRAM     = uint32(0x0fffffff)
	OriginPeriph  = uint32(0x10000000)
	MemtopPeriph  = uint32(0x100fffff)
	OriginSysReg  = uint32(0xfffff000)
	MemtopSysReg  = uint32(0xffffffff)
)

// Memtop is the top most address on the bus. It is the same as the system
// register memtop.
const Memtop = uint32(0xffffffff)

// Every peripheral in the MMIO window occupies a block of the same size
const PeriphBlockSize = uint32(0x1000)

// MapAddress returns the offset of the address into its containing area,
// along with the area itself. Implementations of the individual areas index
// their backing arrays (or register files) with the returned offset.
//
// Addresses that fall outside of every area return the address unchanged and
// an Area value of Undefined.
func MapAddress(address uint32) (uint32, Area) {
	// note that the order of these filters is important

	// system registers. checked first because the window sits at the very
	// top of the address space and bypasses the MMU
	if address >= OriginSysReg {
		return address - OriginSysReg, SysReg
	}

	// boot ROM occupies the bottom of the address space
	if address <= MemtopBootROM {
		return address, BootROM
	}

	// RAM runs from the top of the boot ROM to the foot of the peripheral
	// window
	if address <= MemtopRAM {
		return address - OriginRAM, RAM
	}

	// peripheral registers (MMIO)
	if address >= OriginPeriph && address <= MemtopPeriph {
		return address - OriginPeriph, Peripherals
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
