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

package platform

// The Terasic DE2-115 development board (Altera/Intel Cyclone IV
// EP4CE115F29C7). The reference platform: the M65832 was brought up on this
// board and it is the default platform for the emulation.
//
// These values define the hardware interface that the emulator, the VHDL and
// the Linux drivers all implement. The three must match exactly.

// DE25 memory map
const (
	DE25BootROMBase = uint32(0x00000000)
	DE25BootROMSize = uint32(0x00010000) // 64 KB
	DE25RAMBase     = uint32(0x00010000)
	DE25RAMSize     = uint32(128 * 1024 * 1024) // 128 MB SDRAM
)

// DE25 peripheral base addresses. one 4 KB block per peripheral
const (
	DE25PeriphBase = uint32(0x10000000)
	DE25GPUBase    = uint32(0x10000000)
	DE25DMABase    = uint32(0x10001000)
	DE25AudioBase  = uint32(0x10002000)
	DE25VideoBase  = uint32(0x10003000)
	DE25TimerBase  = uint32(0x10004000)
	DE25INTCBase   = uint32(0x10005000)
	DE25UARTBase   = uint32(0x10006000)
	DE25SPIBase    = uint32(0x10007000)
	DE25I2CBase    = uint32(0x10008000)
	DE25GPIOBase   = uint32(0x10009000)
	DE25SDBase     = uint32(0x1000a000)
)

// DE25 system register window (bypasses the MMU). register offsets within
// the window are common to all platforms and are defined in registers.go
const (
	DE25SysRegBase   = uint32(0xfffff000)
	DE25SysTimerBase = DE25SysRegBase + SysTimerCtrl
)

// DE25 clock frequencies. the 50 MHz crystal drives everything
const (
	DE25CPUFreq   = uint32(50000000)
	DE25TimerFreq = uint32(50000000)
	DE25UARTFreq  = uint32(50000000)
)

// ConfigDE25 is the Config for the DE2-115 board. Populated during package
// initialisation and immutable thereafter.
var ConfigDE25 Config

func init() {
	ConfigDE25 = Config{
		ID:          DE25,
		Name:        "de25",
		Description: "Terasic DE2-115 (Cyclone IV EP4CE115)",

		RAMBase:     DE25RAMBase,
		RAMSize:     DE25RAMSize,
		BootROMBase: DE25BootROMBase,
		BootROMSize: DE25BootROMSize,

		CPUFreq:   DE25CPUFreq,
		TimerFreq: DE25TimerFreq,
		UARTFreq:  DE25UARTFreq,

		UARTBase:  DE25UARTBase,
		SDBase:    DE25SDBase,
		INTCBase:  DE25INTCBase,
		TimerBase: DE25SysTimerBase,
		GPIOBase:  DE25GPIOBase,
		SPIBase:   DE25SPIBase,
		I2CBase:   DE25I2CBase,

		SysRegBase: DE25SysRegBase,

		HasSDCard:   true,
		HasEthernet: false,
		HasHDMI:     false,
		HasVGA:      true,
	}
}
