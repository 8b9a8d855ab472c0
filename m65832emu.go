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

package main

import (
	"fmt"
	"os"

	"github.com/m65832/m65832emu/curated"
	"github.com/m65832/m65832emu/hardware/memory/memorymap"
	"github.com/m65832/m65832emu/hardware/platform"
	"github.com/m65832/m65832emu/logger"
	"github.com/m65832/m65832emu/modalflag"
	"github.com/m65832/m65832emu/statsview"
)

// sentinel pattern for a platform ID that is not in the catalog
const invalidPlatformID = "invalid platform id: %d"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLATFORMS", "SHOW", "MEMMAP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLATFORMS":
		err = listPlatforms(md)

	case "SHOW":
		err = show(md)

	case "MEMMAP":
		err = memmap(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func listPlatforms(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	platform.List(md.Output)
	return nil
}

func show(md *modalflag.Modes) error {
	md.NewMode()

	name := md.AddString("platform", "", "platform to show, by name")
	id := md.AddInt("id", -1, "platform to show, by id (overrides -platform)")
	useLog := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *useLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	var cfg *platform.Config

	if *id >= 0 {
		cfg = platform.GetConfig(platform.ID(*id))
		if cfg == nil {
			return curated.Errorf(invalidPlatformID, *id)
		}
	} else if *name != "" {
		// GetByName never fails. unknown names resolve to the default
		// platform, with a note in the log
		cfg = platform.GetConfig(platform.GetByName(*name))
	} else {
		cfg = platform.GetConfig(platform.GetDefault())
	}

	fmt.Fprint(md.Output, cfg.String())
	return nil
}

func memmap(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprint(md.Output, memorymap.Summary())
	return nil
}
