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

package logger_test

import (
	"testing"

	"github.com/m65832/m65832emu/logger"
	"github.com/m65832/m65832emu/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Log("test2", "this is another test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectedSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectedSuccess(t, tw.Compare(""))

	logger.Clear()
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log("tag", "detail")
	logger.Log("tag", "detail")
	logger.Log("tag", "detail")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("tag: detail (repeat x3)\n"))

	logger.Clear()
}

func TestLogf(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Logf("platform", "unknown platform '%s', using %s", "zx81", "de25")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("platform: unknown platform 'zx81', using de25\n"))

	logger.Clear()
}
