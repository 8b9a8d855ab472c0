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

import (
	"fmt"
	"io"
	"strings"

	"github.com/m65832/m65832emu/logger"
)

// ID uniquely identifies one of the hardware platforms supported by the
// emulation
type ID int

// The list of supported platforms. NumPlatforms is not a valid ID; it marks
// the number of platforms and is used to size the config table
const (
	DE25 ID = iota
	KV260
	NumPlatforms
)

func (id ID) String() string {
	if c := GetConfig(id); c != nil {
		return c.Name
	}
	return "undefined"
}

// Config is the immutable description of one hardware platform. A Config is
// populated once, during package initialisation, and never written to again.
// Every other part of the emulation (bus, boot loader, device models) reads
// the fields it needs from the Config for the selected platform.
type Config struct {
	// platform identification. Name is the short name used for selection on
	// the command line and is unique across all platforms
	ID          ID
	Name        string
	Description string

	// memory configuration
	RAMBase     uint32
	RAMSize     uint32
	BootROMBase uint32
	BootROMSize uint32

	// clock frequencies (Hz)
	CPUFreq   uint32
	TimerFreq uint32
	UARTFreq  uint32

	// peripheral base addresses. TimerBase is the system timer in the
	// SysReg window, not the peripheral-window timer block
	UARTBase  uint32
	SDBase    uint32
	INTCBase  uint32
	TimerBase uint32
	GPIOBase  uint32
	SPIBase   uint32
	I2CBase   uint32

	// system register base (MMU control, etc.)
	SysRegBase uint32

	// platform specific features
	HasSDCard   bool
	HasEthernet bool
	HasHDMI     bool
	HasVGA      bool
}

func (cfg *Config) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s\n", cfg.Name, cfg.Description))
	s.WriteString(fmt.Sprintf("   ram: %08x -> %08x (%d MB)\n", cfg.RAMBase, cfg.RAMBase+cfg.RAMSize-1, cfg.RAMSize/(1024*1024)))
	s.WriteString(fmt.Sprintf("   boot rom: %08x -> %08x (%d KB)\n", cfg.BootROMBase, cfg.BootROMBase+cfg.BootROMSize-1, cfg.BootROMSize/1024))
	s.WriteString(fmt.Sprintf("   clocks: cpu %d MHz, timer %d MHz, uart %d MHz\n", cfg.CPUFreq/1000000, cfg.TimerFreq/1000000, cfg.UARTFreq/1000000))
	s.WriteString(fmt.Sprintf("   uart: %08x, sd: %08x, intc: %08x, timer: %08x\n", cfg.UARTBase, cfg.SDBase, cfg.INTCBase, cfg.TimerBase))
	s.WriteString(fmt.Sprintf("   gpio: %08x, spi: %08x, i2c: %08x, sysreg: %08x\n", cfg.GPIOBase, cfg.SPIBase, cfg.I2CBase, cfg.SysRegBase))
	s.WriteString(fmt.Sprintf("   features: %s\n", cfg.featureSummary()))
	return s.String()
}

// featureSummary returns the list of optional features present on the
// platform as a single string
func (cfg *Config) featureSummary() string {
	f := []string{}
	if cfg.HasSDCard {
		f = append(f, "sd")
	}
	if cfg.HasEthernet {
		f = append(f, "ethernet")
	}
	if cfg.HasHDMI {
		f = append(f, "hdmi")
	}
	if cfg.HasVGA {
		f = append(f, "vga")
	}
	if len(f) == 0 {
		return "none"
	}
	return strings.Join(f, ", ")
}

// configs is indexed by ID. the array is sized by the NumPlatforms sentinel
// and the entries are positional, so adding an ID without adding a config
// (or vice versa) will not compile
var configs = [NumPlatforms]*Config{
	&ConfigDE25,
	&ConfigKV260,
}

// GetConfig returns the configuration for the specified platform. The
// returned Config must never be written to.
//
// Returns nil if the ID is not one of the valid platform IDs, including in
// the case of the NumPlatforms sentinel.
func GetConfig(id ID) *Config {
	if id < 0 || id >= NumPlatforms {
		return nil
	}
	return configs[id]
}

// aliases for platform names that people are likely to use. checked only
// after the canonical short names have been tried
var aliases = map[string]ID{
	"de2-115": DE25,
	"de2115":  DE25,
	"de2_115": DE25,
	"kria":    KV260,
}

// GetByName returns the ID of the platform with the specified short name.
// The comparison is case-insensitive and a handful of aliases are also
// recognised (eg. "kria" for the KV260).
//
// Unknown names resolve to the default platform. The event is recorded in
// the central log rather than being returned as an error; a misspelled
// platform name should not stop the emulation from starting.
func GetByName(name string) ID {
	for i := ID(0); i < NumPlatforms; i++ {
		if strings.EqualFold(configs[i].Name, name) {
			return i
		}
	}

	if id, ok := aliases[strings.ToLower(name)]; ok {
		return id
	}

	logger.Logf("platform", "unknown platform '%s', using %s", name, GetDefault())
	return GetDefault()
}

// GetDefault returns the ID of the default platform. Used when no platform
// has been requested or when a requested name is unrecognised.
func GetDefault() ID {
	return DE25
}

// List writes a summary of every supported platform, in ID order, to the
// io.Writer. Intended for the command line; the output is for people, not
// for parsing.
func List(output io.Writer) {
	fmt.Fprintln(output, "Supported platforms:")
	for i := ID(0); i < NumPlatforms; i++ {
		p := configs[i]
		fmt.Fprintf(output, "  %-12s  %s\n", p.Name, p.Description)
		fmt.Fprintf(output, "                CPU: %d MHz, RAM: %d MB, features: %s\n",
			p.CPUFreq/1000000, p.RAMSize/(1024*1024), p.featureSummary())
	}
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Platform aliases:")
	fmt.Fprintln(output, "  de2-115, de2115, de2_115  -> de25")
	fmt.Fprintln(output, "  kria                      -> kv260")
}
