//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/ksreyes/twopoints/internal/lnch"
	"github.com/ksreyes/twopoints/internal/pipe"
)

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string

func main() {
	// go tool pprof --pdf ./twopoints /tmp/profile1880749830/cpu.pprof > profile.pdf
	const (
		MSG1 = "library built: %d works, %d links"
	)

	lnch.GitCommit = GitCommit
	lnch.VersSuppl = VersSuppl
	lnch.BuildDate = BuildDate

	cfg, action := lnch.ConfigAtLaunch(os.Args[1:])
	msg := lnch.Msg

	switch action {
	case lnch.ShowHelp:
		h, err := lnch.HelpText(*cfg)
		msg.EF(err, "HelpText()")
		lnch.PrintVersion(*cfg)
		fmt.Println(h)
		return
	case lnch.ShowVersion:
		lnch.PrintVersion(*cfg)
		return
	case lnch.ShowFullVersion:
		lnch.PrintVersion(*cfg)
		lnch.PrintBuildInfo(*cfg)
		return
	default:
		lnch.PrintVersion(*cfg)
		lnch.PrintCopyright()
	}

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	p := pipe.New(*cfg, msg)
	r, err := p.Run(context.Background())
	if err != nil {
		// EC exits without running the deferred profile Stop()
		msg.Clone("Run()").EC(err)
		return
	}
	msg.MAND(fmt.Sprintf(MSG1, len(r.Stats), len(r.Network.Links)))
}
