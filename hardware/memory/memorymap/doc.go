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

// Package memorymap describes the canonical 32-bit address map of the M65832
// bus. The map is the same on every supported platform; only the sizes of
// the RAM area and the clock speeds differ between boards (see the
// hardware/platform package).
//
// The MapAddress() function should be used to find the bus area an address
// falls in, whenever an address is being used from the viewpoint of the CPU.
//
//	offset, area := memorymap.MapAddress(address)
//
// The returned offset is relative to the origin of the area, which is the
// form the individual area implementations want. Addresses that are in no
// area at all return the Undefined area; what to do about such an access is
// the bus implementation's decision, not this package's.
package memorymap
