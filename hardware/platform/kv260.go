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

// The AMD/Xilinx Kria KV260 (Zynq UltraScale+ MPSoC). The M65832 runs in the
// programmable logic with its own memory map; the Processing System
// allocates a portion of DDR to it.
//
// The KV260 uses the same logical memory map and peripheral addresses as the
// DE25, for software compatibility. The differences are RAM size, clock
// speed and the available features.

// KV260 memory map
const (
	KV260BootROMBase = uint32(0x00000000)
	KV260BootROMSize = uint32(0x00010000) // 64 KB
	KV260RAMBase     = uint32(0x00010000)
	KV260RAMSize     = uint32(256 * 1024 * 1024) // 256 MB allocated to the PL
)

// KV260 peripheral base addresses
const (
	KV260PeriphBase = uint32(0x10000000)
	KV260GPUBase    = uint32(0x10000000)
	KV260DMABase    = uint32(0x10001000)
	KV260AudioBase  = uint32(0x10002000)
	KV260VideoBase  = uint32(0x10003000)
	KV260TimerBase  = uint32(0x10004000)
	KV260INTCBase   = uint32(0x10005000)
	KV260UARTBase   = uint32(0x10006000)
	KV260SPIBase    = uint32(0x10007000)
	KV260I2CBase    = uint32(0x10008000)
	KV260GPIOBase   = uint32(0x10009000)
	KV260SDBase     = uint32(0x1000a000)
)

// KV260 system register window
const (
	KV260SysRegBase   = uint32(0xfffff000)
	KV260SysTimerBase = KV260SysRegBase + SysTimerCtrl
)

// KV260 clock frequencies. the better FPGA fabric allows a faster PL clock
// than the DE25
const (
	KV260CPUFreq   = uint32(100000000)
	KV260TimerFreq = uint32(100000000)
	KV260UARTFreq  = uint32(100000000)
)

// ConfigKV260 is the Config for the Kria KV260 board. Populated during
// package initialisation and immutable thereafter.
var ConfigKV260 Config

func init() {
	ConfigKV260 = Config{
		ID:          KV260,
		Name:        "kv260",
		Description: "AMD/Xilinx Kria KV260 (Zynq UltraScale+)",

		RAMBase:     KV260RAMBase,
		RAMSize:     KV260RAMSize,
		BootROMBase: KV260BootROMBase,
		BootROMSize: KV260BootROMSize,

		CPUFreq:   KV260CPUFreq,
		TimerFreq: KV260TimerFreq,
		UARTFreq:  KV260UARTFreq,

		UARTBase:  KV260UARTBase,
		SDBase:    KV260SDBase,
		INTCBase:  KV260INTCBase,
		TimerBase: KV260SysTimerBase,
		GPIOBase:  KV260GPIOBase,
		SPIBase:   KV260SPIBase,
		I2CBase:   KV260I2CBase,

		SysRegBase: KV260SysRegBase,

		HasSDCard:   true,
		HasEthernet: true,
		HasHDMI:     true,
		HasVGA:      false,
	}
}
