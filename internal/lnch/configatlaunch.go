//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/ksreyes/twopoints/internal/mm"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

// Action - what main should do once the switches have been read
type Action int

const (
	RunPipeline Action = iota
	ShowHelp
	ShowVersion
	ShowFullVersion
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// ConfigAtLaunch - read the configuration values from JSON and then from the command line; problems are
// reported and the value in hand is kept
func ConfigAtLaunch(args []string) (*str.CurrentConfiguration, Action) {
	const (
		FAIL1 = "switch '%s' requires a value; ignoring it"
		FAIL2 = "switch '%s' could not parse '%s'; keeping %d"
		FAIL3 = "%s; using built-in defaults instead"
		LOAD  = "'%s' loaded"
		NOPE  = "no configuration file found; using built-in defaults"
	)

	value := func(i int) (string, bool) {
		if i+1 >= len(args) {
			Msg.CRIT(fmt.Sprintf(FAIL1, args[i]))
			return "", false
		}
		return args[i+1], true
	}

	setstring := func(i int, s *string) {
		if v, ok := value(i); ok {
			*s = v
		}
	}

	setint := func(i int, n *int) {
		v, ok := value(i)
		if !ok {
			return
		}
		x, err := strconv.Atoi(v)
		if err != nil {
			Msg.CRIT(fmt.Sprintf(FAIL2, args[i], v, *n))
			return
		}
		*n = x
	}

	cf := ""
	for i, a := range args {
		if a == "-c" {
			setstring(i, &cf)
		}
	}

	cfg := BuildDefaultConfig()
	search := ConfigSearchPath()
	if cf != "" {
		search = []string{cf}
	}

	found := false
	for _, p := range search {
		c, err := LoadConfigFile(p)
		if errors.Is(err, os.ErrNotExist) && cf == "" {
			continue
		}
		found = true
		if err != nil {
			Msg.CRIT(fmt.Sprintf(FAIL3, err.Error()))
			break
		}
		cfg = c
		Msg.TMI(fmt.Sprintf(LOAD, p))
		break
	}
	if !found {
		Msg.TMI(NOPE)
	}

	action := RunPipeline

	for i, a := range args {
		switch a {
		case "-vv":
			action = ShowFullVersion
		case "-v":
			if action == RunPipeline {
				action = ShowVersion
			}
		case "-h":
			action = ShowHelp
		case "-bw":
			cfg.BlackAndWhite = true
		case "-db":
			setstring(i, &cfg.CacheDB)
		case "-gl":
			setint(i, &cfg.LogLevel)
		case "-mr":
			setstring(i, &cfg.Mirror)
		case "-nh":
			cfg.WriteHTML = false
		case "-nq":
			cfg.WriteParquet = false
		case "-od":
			setstring(i, &cfg.OutDir)
		case "-pc":
			cfg.ProfileCPU = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-td":
			setstring(i, &cfg.TextDir)
		default:
			// values and unknown switches are ignored
		}
	}

	if cfg.LogLevel > mm.MSGTMI {
		cfg.LogLevel = mm.MSGTMI
	}
	if cfg.LogLevel < mm.MSGCRIT {
		cfg.LogLevel = mm.MSGCRIT
	}

	Config = cfg
	UpdateMessageMakerWithConfig(Msg)
	return cfg, action
}

// ConfigSearchPath - the places a configuration file might live, in the order they are tried
func ConfigSearchPath() []string {
	p := []string{filepath.Join(vv.CONFIGLOCATION, vv.CONFIGBASIC)}
	if uh, err := os.UserHomeDir(); err == nil {
		p = append(p, fmt.Sprintf(vv.CONFIGALTAPTH, uh)+vv.CONFIGBASIC)
	}
	return p
}

// LoadConfigFile - decode a JSON configuration on top of the defaults; absent keys keep their default values
func LoadConfigFile(path string) (*str.CurrentConfiguration, error) {
	const (
		FAIL1 = "could not parse the information in '%s': %w"
	)
	cfg := BuildDefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf(FAIL1, path, err)
	}
	return cfg, nil
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CacheDB = vv.DEFAULTCACHEDB
	c.EdgeMaxWeight = vv.EDGEMAXWEIGHT
	c.EdgeThreshold = vv.EDGETHRESHOLD
	c.EpubBase = vv.DEFAULTEPUBBASE
	c.LanguageID = vv.LANGENGLISH
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.MinDocFreq = vv.MINDOCFREQ
	c.Mirror = vv.DEFAULTMIRROR
	c.OutDir = vv.DEFAULTOUTDIR
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QueryLimit = vv.QUERYLIMIT
	c.RandomSeed = vv.RANDOMSEED
	c.TextDir = vv.DEFAULTTEXTDIR
	c.TitleSim = vv.TITLESIMILARITY
	c.TSNEIter = vv.TSNEMAXITER
	c.TSNELearn = vv.TSNELEARNRT
	c.TSNEPerplex = vv.TSNEPERPLEX
	c.TypeID = vv.TYPEBOOK
	c.WriteHTML = true
	c.WriteParquet = true
	return &c
}

// HelpText - the colorized "-h" output for the current configuration
func HelpText(cfg str.CurrentConfiguration) (string, error) {
	const (
		FAIL1 = "HelpText() failed to execute help text template: %w"
	)
	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	m := map[string]interface{}{
		"cachedb":  cfg.CacheDB,
		"conffile": vv.CONFIGBASIC,
		"home":     h,
		"html":     vv.NETWORKHTML,
		"libcsv":   vv.LIBRARYCSV,
		"ll":       cfg.LogLevel,
		"mirror":   cfg.Mirror,
		"netjson":  vv.NETWORKJSON,
		"outdir":   cfg.OutDir,
		"parquet":  vv.STATSPARQ,
		"statcsv":  vv.STATSCSV,
		"textdir":  cfg.TextDir,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if err := t.Execute(&b, m); err != nil {
		return "", fmt.Errorf(FAIL1, err)
	}
	return Msg.ColStyle(b.String()), nil
}
