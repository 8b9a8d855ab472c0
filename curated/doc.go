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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package: it takes a formatting pattern
// and placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. The Has() function is similar but checks
// whether the pattern occurs anywhere in the error chain.
//
//	e := curated.Errorf("invalid platform id: %d", id)
//
//	if curated.Is(e, "invalid platform id: %d") {
//		...
//	}
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, close to where the error is created.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised: the chain will not contain duplicate adjacent
// parts, which alleviates the problem of when and how to wrap errors. For
// the purposes of this package, chains are composed of parts separated by
// the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
