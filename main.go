package main

import (
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
)

const version = "dwm-go-1.0"

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dwm [-v] [-d address]")
	os.Exit(1)
}

func main() {
	verbose := false
	debugAddr := ""

	opts, optind, err := getopt.Getopts(os.Args, "vd:")
	if err != nil || optind < len(os.Args) {
		usage()
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			fmt.Println(version)
			os.Exit(0)
		case 'd':
			debugAddr = opt.Value
		}
	}
	_ = verbose

	log := initLogger(os.Getenv("DWM_DEBUG") != "")

	wm := newWM()
	wm.log = log

	if err := wm.setup(); err != nil {
		log.Error("setup failed", "err", err)
		os.Exit(1)
	}
	defer wm.cleanup()

	wm.scan()
	wm.runAutostart()
	wm.startDebugAPI(debugAddr)

	wm.run()
}
