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

package platform_test

import (
	"strings"
	"testing"

	"github.com/m65832/m65832emu/hardware/memory/memorymap"
	"github.com/m65832/m65832emu/hardware/platform"
	"github.com/m65832/m65832emu/test"
)

func TestGetConfig(t *testing.T) {
	for i := platform.ID(0); i < platform.NumPlatforms; i++ {
		cfg := platform.GetConfig(i)
		if cfg == nil {
			t.Fatalf("GetConfig(%d) returned nil for a valid ID", i)
		}
		test.Equate(t, int(cfg.ID), int(i))

		// repeated calls return the same record
		if cfg != platform.GetConfig(i) {
			t.Errorf("GetConfig(%d) is not stable across calls", i)
		}
	}
}

func TestGetConfigInvalid(t *testing.T) {
	// the sentinel itself is not a valid ID
	if platform.GetConfig(platform.NumPlatforms) != nil {
		t.Error("expected nil config for the NumPlatforms sentinel")
	}
	if platform.GetConfig(platform.NumPlatforms + 100) != nil {
		t.Error("expected nil config beyond the NumPlatforms sentinel")
	}
	if platform.GetConfig(platform.ID(-1)) != nil {
		t.Error("expected nil config for a negative ID")
	}
}

func TestGetByName(t *testing.T) {
	// name lookup is case-insensitive for every known platform
	for i := platform.ID(0); i < platform.NumPlatforms; i++ {
		name := platform.GetConfig(i).Name
		test.Equate(t, int(platform.GetByName(name)), int(i))
		test.Equate(t, int(platform.GetByName(strings.ToUpper(name))), int(i))

		// mixed case, first letter only
		mixed := strings.ToUpper(name[:1]) + name[1:]
		test.Equate(t, int(platform.GetByName(mixed)), int(i))
	}
}

func TestGetByNameAliases(t *testing.T) {
	test.Equate(t, int(platform.GetByName("de2-115")), int(platform.DE25))
	test.Equate(t, int(platform.GetByName("de2115")), int(platform.DE25))
	test.Equate(t, int(platform.GetByName("DE2_115")), int(platform.DE25))
	test.Equate(t, int(platform.GetByName("kria")), int(platform.KV260))
	test.Equate(t, int(platform.GetByName("KRIA")), int(platform.KV260))
}

func TestGetByNameUnknown(t *testing.T) {
	// unknown names resolve to the default platform rather than failing
	test.Equate(t, int(platform.GetByName("totally-unknown-platform")), int(platform.GetDefault()))
}

func TestGetDefault(t *testing.T) {
	// the default is the first-defined platform and is stable
	test.Equate(t, int(platform.GetDefault()), 0)
	test.Equate(t, int(platform.GetDefault()), int(platform.DE25))
	test.Equate(t, int(platform.GetDefault()), int(platform.GetDefault()))
}

func TestUniqueNames(t *testing.T) {
	// short names must be pairwise distinct under case folding or name
	// lookup would be ambiguous
	for i := platform.ID(0); i < platform.NumPlatforms; i++ {
		for j := i + 1; j < platform.NumPlatforms; j++ {
			a := platform.GetConfig(i).Name
			b := platform.GetConfig(j).Name
			if strings.EqualFold(a, b) {
				t.Errorf("platform names are not unique: %s / %s", a, b)
			}
		}
	}
}

func TestDE25(t *testing.T) {
	cfg := platform.GetConfig(platform.GetByName("DE25"))
	if cfg == nil {
		t.Fatal("no config for de25")
	}

	test.Equate(t, cfg.Name, "de25")
	test.Equate(t, cfg.RAMBase, 0x00010000)
	test.Equate(t, cfg.RAMSize, 0x08000000)
	test.Equate(t, cfg.BootROMBase, 0x00000000)
	test.Equate(t, cfg.BootROMSize, 0x00010000)
	test.Equate(t, cfg.CPUFreq, 50000000)
	test.Equate(t, cfg.UARTBase, 0x10006000)
	test.Equate(t, cfg.TimerBase, 0xfffff040)
	test.Equate(t, cfg.HasSDCard, true)
	test.Equate(t, cfg.HasEthernet, false)
	test.Equate(t, cfg.HasHDMI, false)
	test.Equate(t, cfg.HasVGA, true)
}

func TestKV260(t *testing.T) {
	cfg := platform.GetConfig(platform.KV260)
	if cfg == nil {
		t.Fatal("no config for kv260")
	}

	test.Equate(t, cfg.Name, "kv260")
	test.Equate(t, cfg.RAMSize, 0x10000000)
	test.Equate(t, cfg.CPUFreq, 100000000)
	test.Equate(t, cfg.HasSDCard, true)
	test.Equate(t, cfg.HasEthernet, true)
	test.Equate(t, cfg.HasHDMI, true)
	test.Equate(t, cfg.HasVGA, false)
}

// every address in every config must sit in the bus area it claims to be in.
// peripheral bases in the MMIO window, the system timer in the SysReg
// window, and so on
func TestMemoryMapConsistency(t *testing.T) {
	for i := platform.ID(0); i < platform.NumPlatforms; i++ {
		cfg := platform.GetConfig(i)

		test.ExpectedSuccess(t, memorymap.IsArea(cfg.BootROMBase, memorymap.BootROM))
		test.ExpectedSuccess(t, memorymap.IsArea(cfg.BootROMBase+cfg.BootROMSize-1, memorymap.BootROM))
		test.ExpectedSuccess(t, memorymap.IsArea(cfg.RAMBase, memorymap.RAM))

		// the kv260 declares more RAM than the canonical window holds. the
		// bus clips anything past the window top so only check up to there
		ramEnd := cfg.RAMBase + cfg.RAMSize - 1
		if ramEnd > memorymap.MemtopRAM {
			ramEnd = memorymap.MemtopRAM
		}
		test.ExpectedSuccess(t, memorymap.IsArea(ramEnd, memorymap.RAM))

		for _, base := range []uint32{cfg.UARTBase, cfg.SDBase, cfg.INTCBase, cfg.GPIOBase, cfg.SPIBase, cfg.I2CBase} {
			test.ExpectedSuccess(t, memorymap.IsArea(base, memorymap.Peripherals))
		}

		test.ExpectedSuccess(t, memorymap.IsArea(cfg.SysRegBase, memorymap.SysReg))
		test.ExpectedSuccess(t, memorymap.IsArea(cfg.TimerBase, memorymap.SysReg))

		// boot ROM and RAM must not overlap
		if cfg.BootROMBase+cfg.BootROMSize > cfg.RAMBase {
			t.Errorf("%s: boot ROM overlaps RAM", cfg.Name)
		}
	}
}

func TestList(t *testing.T) {
	tw := &test.Writer{}
	platform.List(tw)

	// one detail line per platform
	test.Equate(t, strings.Count(tw.String(), "CPU:"), int(platform.NumPlatforms))

	for i := platform.ID(0); i < platform.NumPlatforms; i++ {
		cfg := platform.GetConfig(i)
		if !strings.Contains(tw.String(), cfg.Name) {
			t.Errorf("listing does not mention %s", cfg.Name)
		}
		if !strings.Contains(tw.String(), cfg.Description) {
			t.Errorf("listing does not describe %s", cfg.Name)
		}
	}

	// listing is a read-only operation. a second run produces identical
	// output
	tw2 := &test.Writer{}
	platform.List(tw2)
	test.ExpectedSuccess(t, tw.Compare(tw2.String()))
}
