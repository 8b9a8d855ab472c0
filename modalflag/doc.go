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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides an easy way of defining sub-modes ("platforms",
// "show", etc.) each with their own set of flags.
//
// The basic sequence is: NewArgs() with the command line arguments,
// AddSubModes() and flag definitions, Parse(), then check Mode() and repeat
// with NewMode() for the flags of the selected sub-mode. Help messages
// (including the list of available sub-modes) are generated automatically.
package modalflag
