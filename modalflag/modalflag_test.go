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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/m65832/m65832emu/modalflag"
	"github.com/m65832/m65832emu/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}
	if md.Mode() != "" {
		t.Errorf("did not expect to see mode as result of Parse()")
	}
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}

	if *testFlag != true {
		t.Error("expected *testFlag to be true after Parse()")
	}

	if len(md.RemainingArgs()) != 2 {
		t.Error("expected number of RemainingArgs() to be 2 after Parse()")
	}
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	if p != modalflag.ParseHelp {
		t.Error("expected ParseHelp return value from Parse()")
	}

	if !tw.Compare("No help available\n") {
		t.Error("unexpected help message (wanted 'No help available')")
	}
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"show", "-platform", "kv260"})
	md.AddSubModes("PLATFORMS", "SHOW", "MEMMAP")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}

	// sub-mode comparison is case insensitive
	test.Equate(t, md.Mode(), "SHOW")

	md.NewMode()
	pl := md.AddString("platform", "", "platform to show")
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}
	test.Equate(t, *pl, "kv260")
	test.Equate(t, md.Path(), "SHOW")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})
	md.AddSubModes("PLATFORMS", "SHOW", "MEMMAP")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}

	// no argument means the first sub-mode in the list
	test.Equate(t, md.Mode(), "PLATFORMS")
}
