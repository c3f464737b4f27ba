package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/wiless/beamform"
	"github.com/wiless/beamform/array"
	"github.com/wiless/beamform/pathloss"
	"github.com/wiless/beamform/scenario"
	"github.com/wiless/vlib"
)

var matlab *vlib.Matlab

var scenarioName string
var catalogFile string
var CoverageOn bool

var SteeringDeg float64 = 0.0
var TxPowerDbm float64 = 46.0

var outdir string
var indir string
var defaultdir string
var currentdir string

func SwitchBack() {
	pwd, _ := os.Getwd()
	log.Printf("Switching to DEFAULT %s to %s ", pwd, currentdir)
	os.Chdir(currentdir)
}

func SwitchInput() {
	pwd, _ := os.Getwd()
	currentdir = pwd
	log.Printf("Switching to INPUT %s to %s ", pwd, indir)
	os.Chdir(indir)
}

func SwitchOutput() {
	pwd, _ := os.Getwd()
	currentdir = pwd
	log.Printf("Switching to OUTPUT %s to %s ", pwd, outdir)
	os.Chdir(outdir)
}

func ReadConfig() {
	defaultdir, _ = os.Getwd()
	currentdir = defaultdir
	if indir == "." {
		indir = defaultdir
	} else {
		finfo, err := os.Stat(indir)
		if err != nil {
			log.Println("Error Input Dir ", indir, err)
			os.Exit(-1)
		} else {
			if !finfo.IsDir() {
				log.Println("Error Input Dir is not a Directory ", indir)
				os.Exit(-1)
			}
		}
	}

	if outdir == "." {
		outdir = defaultdir
	} else {
		finfo, err := os.Stat(outdir)
		if err != nil {
			log.Print("Creating OUTPUT directory : ", outdir)
			err = os.Mkdir(outdir, os.ModeDir|os.ModePerm)
			if err != nil {
				log.Print("Error Creating Directory ", outdir, err)
				os.Exit(-1)
			}
		} else {
			if !finfo.IsDir() {
				log.Panicln("Error Output Dir is not a Directory ", outdir)
			}
		}
	}
	outdir, _ = filepath.Abs(outdir)
	indir, _ = filepath.Abs(indir)
	log.Printf("WORK directory : %s", defaultdir)
	log.Printf("INPUT directory :  %s", indir)
	log.Printf("OUTPUT directory :  %s", outdir)
}

func init() {
	flag.StringVar(&outdir, "outdir", ".", "Directory where all the output files are generated..")
	flag.StringVar(&indir, "indir", ".", "Directory where all the input files are read..")
	flag.StringVar(&scenarioName, "scenario", "", "Scenario preset to run, empty picks it from the config file")
	flag.StringVar(&catalogFile, "catalog", "", "Optional YAML catalog merged over the built-in presets")
	flag.Float64Var(&SteeringDeg, "steer", 0.0, "Beam steering angle in degrees")
	flag.BoolVar(&CoverageOn, "coverage", false, "Also evaluate a received-power map with the free space model")
	help := flag.Bool("help", false, "prints this help")
	verbose := flag.Bool("v", true, "Print logs verbose mode")
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		os.Exit(0)
		return
	}

	ReadConfig()
	log.Println("Current indir & outdir ", indir, outdir)
	ReadAppConfig()
	if scenarioName == "" {
		scenarioName = appcfg.Scenario
	}
	SteeringDeg = appcfg.SteeringDeg
	TxPowerDbm = appcfg.TxPowerDbm

	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
}

func main() {
	SwitchOutput()
	matlab = vlib.NewMatlab("beamsim")
	SwitchBack()
	matlab.Silent = true
	matlab.Json = false

	catalog := scenario.DefaultCatalog()
	if catalogFile != "" {
		if err := catalog.LoadYAML(catalogFile); err != nil {
			log.Print("Catalog ", err)
		}
	}

	freqHz, cfgs := resolveSetup(catalog)
	sim, err := beamform.NewSimulator(freqHz, SteeringDeg, cfgs...)
	if err != nil {
		log.Fatalln("beamsim ", err)
	}
	color.Cyan("Scenario %s : fc=%v GHz, steer=%v deg, %d array(s)", scenarioName, freqHz/1e9, SteeringDeg, len(cfgs))

	im, err := sim.SimulateGrid(beamform.DefaultGrid())
	if err != nil {
		log.Fatalln("simulate grid ", err)
	}
	bp, err := sim.ArrayFactor(array.DefaultSweep())
	if err != nil {
		log.Fatalln("array factor ", err)
	}

	SwitchOutput()
	im.ExportMatlab(matlab, "field")
	bp.ExportMatlab(matlab, "af")
	vlib.SaveStructure(im, "intensity.json", true)
	vlib.SaveStructure(bp, "profile.json", true)
	vlib.SaveStructure(cfgs, "arrays-used.json", true)

	if CoverageOn {
		cs := beamform.NewCoverageSetting()
		cs.TxPowerDBm = TxPowerDbm
		cvg, cerr := sim.SimulateCoverage(pathloss.NewFreeSpace(), *cs, beamform.DefaultGrid())
		if cerr != nil {
			log.Print("coverage ", cerr)
		} else {
			cvg.ExportMatlab(matlab, "rx")
			vlib.SaveStructure(cvg, "coverage.json", true)
		}
	}
	SwitchBack()
	matlab.Close()

	peakAng, peakGain := bp.Peak()
	color.Green("Main lobe %.2f dB at %+.2f deg", vlib.Db(peakGain), peakAng)
	fmt.Println("\n ============================")
}

// resolveSetup turns the scenario, config file and arrays.json inputs into
// constructor arguments. Precedence for the element layout is arrays.json,
// then the config file arrays, then the preset.
func resolveSetup(catalog *scenario.Catalog) (freqHz float64, cfgs []array.ArrayConfig) {
	preset, err := catalog.Lookup(scenarioName)
	if err != nil {
		log.Printf("Scenario %q not listed, running defaults", scenarioName)
		freqHz = appcfg.FrequencyHz
		cfgs = append(cfgs, scenario.Default())
	} else {
		var cfg array.ArrayConfig
		freqHz, cfg = preset.Configure()
		cfgs = append(cfgs, cfg)
	}

	if len(appcfg.Arrays) > 0 {
		cfgs = appcfg.Arrays
	}

	SwitchInput()
	if _, serr := os.Stat("arrays.json"); serr == nil {
		var fromjson []array.ArrayConfig
		vlib.LoadStructure("arrays.json", &fromjson)
		if len(fromjson) > 0 {
			log.Println("Loaded arrays.json : ", len(fromjson), " arrays")
			cfgs = fromjson
		}
	}
	SwitchBack()
	return freqHz, cfgs
}
