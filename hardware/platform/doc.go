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

// Package platform is the catalog of hardware platforms the emulation can
// model. Each platform is described by a Config: memory layout, clock
// frequencies, peripheral base addresses and the optional features present
// on the board. There is one Config per platform, defined from the board's
// own named constants, populated during package initialisation and never
// mutated.
//
// The usual sequence, at startup:
//
//	id := platform.GetByName(nameFromCommandLine)
//	cfg := platform.GetConfig(id)
//
// A Config obtained this way is valid for the lifetime of the process and
// can be read freely from any goroutine. GetConfig() returns nil for an ID
// outside the known range; GetByName() never fails, resolving unknown names
// to the default platform (and noting the fact in the central log).
//
// The register offset constants shared by all platforms are also defined
// here; see registers.go.
package platform
