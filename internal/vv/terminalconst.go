//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2025-26"
	PROJAUTH = "K. S. Reyes"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-cC0 C2{file}C0    read the configuration from this file instead of "C3{{.home}}{{.conffile}}C0"
   C1-dbC0 C2{file}C0   the gutenberg catalog cache [C6currentC0: C3{{.cachedb}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ll}}C0]
   C1-hC0           print this help information
   C1-mrC0 C2{url}C0    the text mirror [C6currentC0: C3{{.mirror}}C0]
   C1-nhC0          do not write "C3{{.html}}C0"
   C1-nqC0          do not write "C3{{.parquet}}C0"
   C1-odC0 C2{dir}C0    output directory [C6currentC0: C3{{.outdir}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-tdC0 C2{dir}C0    local cache of downloaded texts [C6currentC0: C3{{.textdir}}C0]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit

     S1NB:S0 the run writes "C3{{.libcsv}}C0", "C3{{.statcsv}}C0" and "C3{{.netjson}}C0" into the output directory.
         The roster, thresholds and random seed are compiled in.
`
)
