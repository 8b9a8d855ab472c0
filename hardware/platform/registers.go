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

// The register layout of each peripheral is the same on every platform, only
// the base addresses differ. The constants in this file are offsets from the
// relevant base address in the platform Config. Device implementations (and
// the boot ROM, and the Linux drivers) add them to the base for the selected
// platform.

// UART registers (offsets from Config.UARTBase)
const (
	UARTData   = uint32(0x00) // TX/RX data register
	UARTStatus = uint32(0x04)
	UARTCtrl   = uint32(0x08)
	UARTBaud   = uint32(0x0c) // baud rate divisor
)

// UART status bits
const (
	UARTStatusRxRdy = uint32(1 << iota)
	UARTStatusTxRdy
	UARTStatusRxFull
	UARTStatusTxEmpty
	UARTStatusRxErr
	UARTStatusTxBusy
)

// UART control bits
const (
	UARTCtrlRxIE = uint32(1 << iota)
	UARTCtrlTxIE
	UARTCtrlEnable
	UARTCtrlLoopback
)

// Interrupt controller registers (offsets from Config.INTCBase)
const (
	INTCStatus   = uint32(0x00)
	INTCEnable   = uint32(0x04)
	INTCPending  = uint32(0x08)
	INTCClear    = uint32(0x0c)
	INTCPriority = uint32(0x10)
)

// IRQ numbers
const (
	IRQGPUFrame = iota
	IRQGPUCmdBuf
	IRQDMA
	IRQAudio
	IRQVSync
	IRQTimer0
	IRQTimer1
	IRQUART
	IRQSPI
	IRQI2C
	IRQGPIO
	IRQSD
)

// SD card controller registers (offsets from Config.SDBase)
const (
	SDCtrl    = uint32(0x00)
	SDStatus  = uint32(0x04)
	SDCmd     = uint32(0x08)
	SDArg     = uint32(0x0c)
	SDResp0   = uint32(0x10)
	SDResp1   = uint32(0x14)
	SDResp2   = uint32(0x18)
	SDResp3   = uint32(0x1c)
	SDData    = uint32(0x20)
	SDBlkSize = uint32(0x24)
	SDBlkCnt  = uint32(0x28)
	SDTimeout = uint32(0x2c)
	SDClkDiv  = uint32(0x30)
	SDFifoCnt = uint32(0x34)
	SDDMAAddr = uint32(0x38)
	SDDMACtrl = uint32(0x3c)
)

// SD control bits
const (
	SDCtrlEnable = uint32(1 << iota)
	SDCtrlCardSel
	SDCtrlStartCmd
	SDCtrlStartRd
	SDCtrlStartWr
	SDCtrlAbort
	SDCtrlResetFifo
	SDCtrlIRQEn
	SDCtrlDMAEn
)

// SD status bits
const (
	SDStatusPresent = uint32(1 << iota)
	SDStatusReady
	SDStatusBusy
	SDStatusError
	SDStatusCRCErr
	SDStatusTimeout
	SDStatusCmdErr
	SDStatusFifoErr
	SDStatusComplete
)

// System registers (offsets from Config.SysRegBase). MMU control first,
// system timer at 0x40
const (
	MMUCR     = uint32(0x00)
	TLBInval  = uint32(0x04)
	ASID      = uint32(0x08)
	ASIDInval = uint32(0x0c)
	FaultVA   = uint32(0x10)
	PTBRLo    = uint32(0x14)
	PTBRHi    = uint32(0x18)
	TLBFlush  = uint32(0x1c)

	SysTimerCtrl  = uint32(0x40)
	SysTimerCmp   = uint32(0x44)
	SysTimerCount = uint32(0x48)
)

// System timer registers (offsets from Config.TimerBase)
const (
	TimerCtrl  = uint32(0x00)
	TimerCmp   = uint32(0x04)
	TimerCount = uint32(0x08)
)

// System timer control bits
const (
	TimerCtrlEn = uint32(1 << iota)
	TimerCtrlIE
	TimerCtrlIF
	TimerCtrlPeriodic
)
