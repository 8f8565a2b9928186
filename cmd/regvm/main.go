// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/regvm/config"
	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/translate"
)

func main() {
	var configPath string
	var speed int
	var entry string
	var verbose bool

	flag.StringVar(&configPath, "config", "", "YAML machine configuration")
	flag.IntVar(&speed, "speed", 0, "Steps per second (overrides config)")
	flag.StringVar(&entry, "e", "", "Entry label (overrides config)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [options] program.rvm", os.Args[0])
	}
	source := flag.Arg(0)

	conf := config.Default()
	if len(configPath) != 0 {
		var err error
		conf, err = config.Load(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	if speed != 0 {
		conf.Speed = speed
	}
	if len(entry) != 0 {
		conf.EntryLabel = entry
	}
	if verbose {
		conf.Verbose = true
	}

	err := conf.Validate()
	if err != nil {
		log.Fatal(err)
	}

	if len(conf.Language) != 0 {
		translate.SetLanguage(conf.Language)
	}

	emu := emulator.NewEmulator(conf.StackCells)
	defer emu.Close()

	emu.Verbose = conf.Verbose
	emu.LineEdit = conf.LineEdit
	emu.Defined = conf.Defines
	emu.Speed = conf.Speed
	emu.Console.Input = os.Stdin
	emu.Console.Output = os.Stdout

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{
		Verbose:    conf.Verbose,
		EntryLabel: conf.EntryLabel,
	}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	fmt.Printf("labels: %v\n", prog.Labels)

	emu.Program = prog
	err = emu.Run()
	if err != nil {
		emu.Close()
		log.Fatalf("%v: %v", source, err)
	}
}
